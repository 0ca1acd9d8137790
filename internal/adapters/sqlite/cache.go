package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"figlens/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// DefaultTTL is how long a cached file payload stays fresh. Design files
// change often; an hour keeps repeat analyses cheap without going stale.
const DefaultTTL = time.Hour

// Cache implements ports.DocumentCache using SQLite
type Cache struct {
	db     *sql.DB
	dbPath string

	// TTL for cached payloads; rows older than this read as misses.
	TTL time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// Ensure Cache implements DocumentCache
var _ ports.DocumentCache = (*Cache)(nil)

// NewCache creates a new SQLite document cache
func NewCache() *Cache {
	return &Cache{TTL: DefaultTTL, now: time.Now}
}

// Open initializes the cache database at the given path
func (c *Cache) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	c.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS files (
			file_key TEXT PRIMARY KEY,
			version TEXT,
			fetched_at INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := c.checkSchema(); err != nil {
		db.Close()
		return err
	}
	return nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// checkSchema drops all cached rows when the schema version changed.
func (c *Cache) checkSchema() error {
	var version string
	c.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)

	if version != schemaVersion {
		if _, err := c.db.Exec("DELETE FROM files"); err != nil {
			return fmt.Errorf("failed to reset cache: %w", err)
		}
	}
	_, err := c.db.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)",
		schemaVersion,
	)
	return err
}

// Get returns the cached payload and version for a file key. Misses and
// expired rows return a nil payload with no error.
func (c *Cache) Get(fileKey string) ([]byte, string, error) {
	var payload []byte
	var version sql.NullString
	var fetchedAt int64

	err := c.db.QueryRow(`
		SELECT payload, version, fetched_at
		FROM files WHERE file_key = ?
	`, fileKey).Scan(&payload, &version, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	if c.TTL > 0 && c.now().Sub(time.Unix(fetchedAt, 0)) > c.TTL {
		return nil, "", nil
	}
	return payload, version.String, nil
}

// Put stores a fetched payload, replacing any previous entry for the key.
func (c *Cache) Put(fileKey, version string, payload []byte) error {
	_, err := c.db.Exec(`
		INSERT OR REPLACE INTO files (file_key, version, fetched_at, payload)
		VALUES (?, ?, ?, ?)
	`, fileKey, version, c.now().Unix(), payload)
	return err
}

// Evict removes a cached entry.
func (c *Cache) Evict(fileKey string) error {
	_, err := c.db.Exec("DELETE FROM files WHERE file_key = ?", fileKey)
	return err
}
