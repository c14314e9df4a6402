package storage

import (
	"database/sql"

	"github.com/adamspd/InterviewPrep/models"
	"github.com/adamspd/InterviewPrep/utils"
	_ "github.com/mattn/go-sqlite3"
)

// KV is the generic persistent key-value store the rest of the system
// writes through.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

type DB struct {
	*sql.DB
}

func InitDB(dbPath string) (*DB, error) {
	utils.LogStartup("Initializing database at: %s", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		utils.LogError("Failed to open database: %v", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		utils.LogError("Failed to ping database: %v", err)
		return nil, err
	}

	utils.LogStartup("Database connection established")

	query := `CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(query); err != nil {
		utils.LogError("Failed to create kv_store table: %v", err)
		return nil, err
	}

	utils.LogStartup("Database tables initialized successfully")
	return &DB{db}, nil
}

// Get returns the stored value and whether the key exists.
func (db *DB) Get(key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &models.StorageError{Op: "read", Err: err}
	}
	return value, true, nil
}

// Set writes the value, overwriting any previous one.
func (db *DB) Set(key, value string) error {
	_, err := db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`, key, value)
	if err != nil {
		return &models.StorageError{Op: "write", Err: err}
	}
	return nil
}

// Remove deletes the key. Removing a missing key is not an error.
func (db *DB) Remove(key string) error {
	if _, err := db.Exec("DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return &models.StorageError{Op: "delete", Err: err}
	}
	return nil
}
