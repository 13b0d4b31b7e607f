package export

const (
	schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
    id          TEXT PRIMARY KEY,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    row_count   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS samples (
    session_id      TEXT NOT NULL REFERENCES sessions (id),
    seq             INTEGER NOT NULL,
    time_s          REAL NOT NULL,
    pressure        REAL NOT NULL,
    beam_angle_deg  REAL NOT NULL,
    frequency_hz    REAL NOT NULL,
    range_m         REAL NOT NULL,
    boat_x_m        REAL NOT NULL,
    PRIMARY KEY (session_id, seq)
);`

	insertSessionSQL = `
INSERT INTO sessions (id, row_count)
VALUES (?, ?)`

	insertSampleSQL = `
INSERT INTO samples (session_id,
                     seq,
                     time_s,
                     pressure,
                     beam_angle_deg,
                     frequency_hz,
                     range_m,
                     boat_x_m)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
)
