// Package postgres implements the persistence interfaces from internal/store
// on PostgreSQL. It owns the SQL for the user, lexicon, corpus, and task
// tables, the goose migrations that create them, and the mapping between
// driver errors and the store package's sentinel errors.
package postgres
