// Package storage defines the persistence interfaces for the character
// dataset: symbols, collections, the day-symbol calendar, popular search
// queries, and blog posts.
//
// The SQLite implementation lives in the sqlite subpackage. Web handlers
// depend only on the Store interface so tests can swap in fakes.
package storage
