// Package seed produces the initial content of the store.
//
// Producer generates a deterministic mock data set whose identifiers are
// stable across restarts (clients "1".."15", TPP1..TPP5, ORG1..ORG5, ...).
// FileSeeder reads collections from a YAML document and falls back to a
// Producer for every kind the document leaves out.
package seed
