// Package sqlite provides the SQLite-backed activity journal.
package sqlite
