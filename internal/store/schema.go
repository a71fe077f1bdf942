package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id          TEXT PRIMARY KEY,
    label                TEXT NOT NULL,
    user_email           TEXT NOT NULL,
    currency             TEXT NOT NULL,
    total_deposit        REAL NOT NULL,
    remaining_amount     REAL NOT NULL,
    total_planned        REAL NOT NULL,
    total_allocated      REAL NOT NULL,
    total_actual         REAL NOT NULL,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshot_expenses (
    snapshot_id          TEXT NOT NULL REFERENCES snapshots(snapshot_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    expense_id           TEXT NOT NULL,
    name                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    priority             TEXT NOT NULL,
    planned_amount       REAL NOT NULL,
    allocated_amount     REAL NOT NULL,
    actual_amount        REAL NOT NULL,
    due_date             TEXT,
    PRIMARY KEY (snapshot_id, position)
);

CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
`
