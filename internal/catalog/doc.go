// Package catalog exports the gallery model and the content links into a
// SQLite database so other tools can query them without rebuilding the
// gallery. Each export replaces the previous snapshot in a single
// transaction.
package catalog
