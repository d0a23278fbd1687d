// Package index persists classification results in SQLite so repeated scans
// can skip files that have not changed since they were last classified.
// A file is considered unchanged when its size and modification time match
// the stored row.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/ostafen/sniff/pkg/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	path           TEXT PRIMARY KEY,
	size           INTEGER NOT NULL,
	mtime          INTEGER NOT NULL,
	category       TEXT NOT NULL DEFAULT '',
	mime           TEXT NOT NULL DEFAULT '',
	extension      TEXT NOT NULL DEFAULT '',
	inner_category TEXT NOT NULL DEFAULT '',
	inner_mime     TEXT NOT NULL DEFAULT '',
	inner_ext      TEXT NOT NULL DEFAULT '',
	digest         TEXT NOT NULL DEFAULT '',
	inner_checked  INTEGER NOT NULL DEFAULT 0
);
`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
}

const poolSize = 4

// Record is a stored entry together with the work done to produce it.
type Record struct {
	Entry report.Entry

	// InnerChecked is set when the payload of compressed files was
	// inspected, even if nothing was recognized.
	InnerChecked bool
}

// Covers reports whether r holds everything a scan computing digests
// (hash) and payload types (inner) would produce.
func (r Record) Covers(hash, inner bool) bool {
	if hash && r.Entry.Digest == "" {
		return false
	}
	return !inner || r.InnerChecked
}

type Index struct {
	pool   *sqlitex.Pool
	logger *slog.Logger
	path   string
}

// Open opens or creates the index database at path.
func Open(path string, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    poolSize,
		PrepareConn: prepareConn,
	})
	if err != nil {
		return nil, fmt.Errorf("index: opening %s: %w", path, err)
	}

	logger.Debug("index opened", "path", path)
	return &Index{pool: pool, logger: logger, path: path}, nil
}

func prepareConn(conn *sqlite.Conn) error {
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("index: %s: %w", pragma, err)
		}
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return fmt.Errorf("index: creating schema: %w", err)
	}
	return nil
}

// Lookup returns the stored record for path if its size and modification
// time still match.
func (idx *Index) Lookup(ctx context.Context, path string, size int64, modTime time.Time) (rec Record, found bool, err error) {
	conn, err := idx.pool.Take(ctx)
	if err != nil {
		return Record{}, false, fmt.Errorf("index: take: %w", err)
	}
	defer idx.pool.Put(conn)

	err = sqlitex.Execute(conn, `
		SELECT category, mime, extension, inner_category, inner_mime, inner_ext, digest, inner_checked
		FROM entries WHERE path = ? AND size = ? AND mtime = ?`,
		&sqlitex.ExecOptions{
			Args: []any{path, size, modTime.UnixNano()},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				e := report.Entry{
					Path:      path,
					Size:      size,
					Category:  stmt.ColumnText(0),
					MIME:      stmt.ColumnText(1),
					Extension: stmt.ColumnText(2),
					Digest:    stmt.ColumnText(6),
				}
				if mime := stmt.ColumnText(4); mime != "" {
					e.Inner = &report.Inner{
						Category:  stmt.ColumnText(3),
						MIME:      mime,
						Extension: stmt.ColumnText(5),
					}
				}
				rec = Record{Entry: e, InnerChecked: stmt.ColumnBool(7)}
				found = true
				return nil
			},
		})
	if err != nil {
		return Record{}, false, fmt.Errorf("index: lookup %s: %w", path, err)
	}
	return rec, found, nil
}

// Store records rec, replacing any previous row for the same path. Entries
// carrying an error are not stored.
func (idx *Index) Store(ctx context.Context, rec Record, modTime time.Time) (err error) {
	e := rec.Entry
	if e.Error != "" {
		return nil
	}

	conn, err := idx.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("index: take: %w", err)
	}
	defer idx.pool.Put(conn)

	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("index: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	var inner report.Inner
	if e.Inner != nil {
		inner = *e.Inner
	}

	return sqlitex.Execute(conn, `
		INSERT OR REPLACE INTO entries
		(path, size, mtime, category, mime, extension, inner_category, inner_mime, inner_ext, digest, inner_checked)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		&sqlitex.ExecOptions{
			Args: []any{
				e.Path, e.Size, modTime.UnixNano(),
				e.Category, e.MIME, e.Extension,
				inner.Category, inner.MIME, inner.Extension,
				e.Digest, rec.InnerChecked,
			},
		})
}

// Prune removes rows whose path is not in keep.
func (idx *Index) Prune(ctx context.Context, keep map[string]struct{}) (removed int, err error) {
	conn, err := idx.pool.Take(ctx)
	if err != nil {
		return 0, fmt.Errorf("index: take: %w", err)
	}
	defer idx.pool.Put(conn)

	var stale []string
	err = sqlitex.Execute(conn, "SELECT path FROM entries", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if _, ok := keep[stmt.ColumnText(0)]; !ok {
				stale = append(stale, stmt.ColumnText(0))
			}
			return nil
		},
	})
	if err != nil {
		return 0, fmt.Errorf("index: prune: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	endTransaction, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return 0, fmt.Errorf("index: begin transaction: %w", err)
	}
	defer endTransaction(&err)

	for _, path := range stale {
		if err := sqlitex.Execute(conn, "DELETE FROM entries WHERE path = ?", &sqlitex.ExecOptions{
			Args: []any{path},
		}); err != nil {
			return 0, fmt.Errorf("index: prune %s: %w", path, err)
		}
	}
	idx.logger.Debug("index pruned", "removed", len(stale))
	return len(stale), nil
}

func (idx *Index) Close() error {
	if err := idx.pool.Close(); err != nil {
		return fmt.Errorf("index: closing %s: %w", idx.path, err)
	}
	return nil
}
