package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"sonar-sim.klederson.com/internal/samplelog"
)

// SQLiteExporter writes the log into a fresh SQLite database: one sessions
// row keyed by a random UUID and one samples row per entry.
type SQLiteExporter struct {
	// SessionID overrides the generated session id when set.
	SessionID string
}

func (x SQLiteExporter) Export(ctx context.Context, path string, entries []samplelog.Entry) (err error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing existing database: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=DELETE", path))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer closeWithError(db, &err)

	if _, err = db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	id := x.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, insertSessionSQL, id, len(entries)); err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSampleSQL)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer closeWithError(stmt, &err)

	for i, e := range entries {
		if _, err = stmt.ExecContext(ctx, id, i, e.Time, e.Pressure, e.BearingDeg, e.Frequency, e.Range, e.BoatX); err != nil {
			return fmt.Errorf("inserting sample %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

func closeWithError(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
