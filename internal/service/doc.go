// Package service holds the application's use cases: serving quiz games from
// the generated corpora, regenerating those corpora from the reference
// lexicon, and managing user accounts and scores. Services are constructed
// with their store interfaces and domain collaborators injected, wrap
// multi-table writes in transactions, and translate store errors into the
// errors the API layer maps to HTTP status codes. Nothing in this package
// touches SQL or HTTP directly.
package service
