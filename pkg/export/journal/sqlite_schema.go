package journal

// SchemaVersion is the current journal schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the journal schema.
const Schema = `
-- Export journal table
CREATE TABLE IF NOT EXISTS export_journal (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    server TEXT,
    object_name TEXT NOT NULL,
    object_kind TEXT NOT NULL,
    target TEXT,
    status TEXT NOT NULL,
    error TEXT,
    bytes_written INTEGER NOT NULL DEFAULT 0,
    started_time TIMESTAMP NOT NULL,
    finished_time TIMESTAMP NOT NULL
);

-- Indexes for the history command's common filters
CREATE INDEX IF NOT EXISTS idx_journal_run_id ON export_journal(run_id);
CREATE INDEX IF NOT EXISTS idx_journal_server ON export_journal(server);
CREATE INDEX IF NOT EXISTS idx_journal_status ON export_journal(status);
CREATE INDEX IF NOT EXISTS idx_journal_started ON export_journal(started_time);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_time TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
