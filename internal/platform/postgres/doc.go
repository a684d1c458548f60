// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. All stores accept a store.DBTX so they can run
// against either a live connection pool or an open transaction, and
// map driver errors onto the shared store error taxonomy.
package postgres
