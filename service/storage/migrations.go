package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id              INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid            TEXT UNIQUE NOT NULL,
    input_path          TEXT NOT NULL,
    output_dir          TEXT,
    run_timestamp       DATETIME DEFAULT CURRENT_TIMESTAMP,
    duration_ms         INTEGER,
    configuration_count INTEGER DEFAULT 0,
    source_file_count   INTEGER DEFAULT 0,
    definition_count    INTEGER DEFAULT 0,
    bytes_written       INTEGER DEFAULT 0,
    dry_run             INTEGER DEFAULT 0,
    tool_version        TEXT,
    run_flags           TEXT,
    created_at          DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp
    ON runs(run_timestamp DESC);

CREATE TABLE IF NOT EXISTS run_configurations (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id           INTEGER NOT NULL,
    model_identifier TEXT NOT NULL,
    platform         TEXT,
    c_standard       TEXT,
    cxx_standard     TEXT,
    source_files     INTEGER DEFAULT 0,
    definitions      INTEGER DEFAULT 0,
    include_dirs     INTEGER DEFAULT 0,
    libraries        INTEGER DEFAULT 0,
    output_path      TEXT,
    bytes_written    INTEGER DEFAULT 0,
    FOREIGN KEY(run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_run_configurations_run
    ON run_configurations(run_id);
CREATE INDEX IF NOT EXISTS idx_run_configurations_model
    ON run_configurations(model_identifier);
`
