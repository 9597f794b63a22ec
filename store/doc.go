// Package store provides the in-memory Cache Store behind every DAO.
//
// The store is constructed once at startup and injected into the DAOs; there
// is no package-level singleton. Seeding is lazy and race-free: the first
// operation on any kind (or an explicit Initialize) runs the Seeder, and
// concurrent first callers wait for that single run.
package store
