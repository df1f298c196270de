// Package journal persists an export-run journal: one entry per batch item
// with its run ID, server, object identity, target, terminal status and
// timing. The journal backs the history command and is strictly best-effort
// from the pipeline's point of view; a journal failure never fails an export
// item.
//
// Two backends implement the Journal interface: SQLiteJournal for the
// embedded on-disk database and MemoryJournal for tests.
package journal
