// Package sessiondb persists label assignments between CLI invocations of the
// same editing session. Each session key maps to the current label per record
// identifier; last write wins, matching the engine's overwrite semantics.
package sessiondb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// tableName is the session assignment table.
const tableName = "tslabel_assignments"

// SessionStoreImpl handles durable session storage using various database backends.
type SessionStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	dbPath  string // Only set for the sqlite backend
}

var _ contract.SessionStore = &SessionStoreImpl{} // Compile-time check

// GetDBFilePath returns the default sqlite database location under the user
// cache directory.
func GetDBFilePath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = "."
	}
	dir := filepath.Join(cacheDir, "tslabel")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "sessions.db")
}

// NewSessionStore initializes and returns a new SessionStore based on the backend type.
func NewSessionStore(backend schema.DatabaseBackend, connStr string) (contract.SessionStore, error) {
	var db *sql.DB
	var err error
	var dbPath string

	switch backend {
	case schema.SQLiteBackend:
		dbPath = connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite session store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL session store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL session store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// Return a no-op store for disabled persistence
		return &SessionStoreImpl{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported session backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	// Create the table schema for stores that have not been migrated yet
	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &SessionStoreImpl{db: db, backend: backend, dbPath: dbPath}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				session_key VARCHAR(255) NOT NULL,
				row_index INT NOT NULL,
				label VARCHAR(255) NOT NULL,
				updated_at BIGINT NOT NULL,
				PRIMARY KEY (session_key, row_index)
			);
		`, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				session_key TEXT NOT NULL,
				row_index INTEGER NOT NULL,
				label TEXT NOT NULL,
				updated_at BIGINT NOT NULL,
				PRIMARY KEY (session_key, row_index)
			);
		`, tableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				session_key TEXT NOT NULL,
				row_index INTEGER NOT NULL,
				label TEXT NOT NULL,
				updated_at INTEGER NOT NULL,
				PRIMARY KEY (session_key, row_index)
			);
		`, tableName)
	}
}

// getUpsertQuery returns the last-write-wins UPSERT query for the backend.
func (ss *SessionStoreImpl) getUpsertQuery() string {
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (session_key, row_index, label, updated_at) VALUES (?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE label = new.label, updated_at = new.updated_at`, tableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (session_key, row_index, label, updated_at) VALUES ($1, $2, $3, $4)
			ON CONFLICT (session_key, row_index) DO UPDATE SET label = EXCLUDED.label, updated_at = EXCLUDED.updated_at`, tableName)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (session_key, row_index, label, updated_at) VALUES (?, ?, ?, ?)`, tableName)
	}
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ss *SessionStoreImpl) getPlaceholder() string {
	switch ss.backend {
	case schema.PostgreSQLBackend:
		return "$1"
	default: // SQLite and MySQL
		return "?"
	}
}

// SaveAssignments upserts the assignments for a session in one transaction.
func (ss *SessionStoreImpl) SaveAssignments(session string, assignments []schema.LabelAssignment) error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	if len(assignments) == 0 {
		return nil
	}

	tx, err := ss.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin session transaction: %w", err)
	}

	query := ss.getUpsertQuery()
	for _, a := range assignments {
		if _, err := tx.Exec(query, session, a.RowIndex, string(a.Label), a.UpdatedAt.Unix()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save assignment for row %d: %w", a.RowIndex, err)
		}
	}
	return tx.Commit()
}

// LoadAssignments returns every current assignment for a session key, ordered
// by record identifier.
func (ss *SessionStoreImpl) LoadAssignments(session string) ([]schema.LabelAssignment, error) {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT row_index, label, updated_at FROM %s WHERE session_key = %s ORDER BY row_index`,
		tableName, ss.getPlaceholder())
	rows, err := ss.db.Query(query, session)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %q: %w", session, err)
	}
	defer func() { _ = rows.Close() }()

	var assignments []schema.LabelAssignment
	for rows.Next() {
		var rowIndex int
		var label string
		var updated int64
		if err := rows.Scan(&rowIndex, &label, &updated); err != nil {
			return nil, err
		}
		assignments = append(assignments, schema.LabelAssignment{
			RowIndex:  rowIndex,
			Label:     schema.LabelValue(label),
			UpdatedAt: time.Unix(updated, 0).UTC(),
		})
	}
	return assignments, rows.Err()
}

// ClearSession removes all assignments for a session key.
func (ss *SessionStoreImpl) ClearSession(session string) error {
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return nil
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE session_key = %s`, tableName, ss.getPlaceholder())
	_, err := ss.db.Exec(query, session)
	return err
}

// GetStatus returns status information about the session store.
func (ss *SessionStoreImpl) GetStatus() (schema.SessionStatus, error) {
	status := schema.SessionStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
		DBPath:    ss.dbPath,
	}
	if ss.backend == schema.NoneBackend || ss.db == nil {
		return status, nil
	}

	query := fmt.Sprintf(`SELECT COUNT(DISTINCT session_key), COUNT(*) FROM %s`, tableName)
	if err := ss.db.QueryRow(query).Scan(&status.Sessions, &status.TotalAssignments); err != nil {
		return status, fmt.Errorf("failed to read session store status: %w", err)
	}
	return status, nil
}

// Close closes the underlying DB connection.
func (ss *SessionStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}
