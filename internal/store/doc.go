// Package store declares the persistence interfaces the application is
// written against: user accounts, the reference lexicon, the generated
// corpora, and shared transaction plumbing. Concrete implementations live in
// internal/platform/postgres; everything above this package depends only on
// these interfaces and the sentinel errors defined here.
package store
