package db

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens the record store at path, creating the file and its
// directory when missing, and brings the schema up to date.
func OpenSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", dir, err)
		}
	}

	database, err := gorm.Open(sqlite.Open(sqliteDSN(path)), &gorm.Config{
		Logger:  storeLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open record store %s: %w", path, err)
	}

	if err := migrateSchema(database); err != nil {
		return nil, err
	}
	return database, nil
}

func sqliteDSN(path string) string {
	pragmas := url.Values{"_pragma": {"foreign_keys(1)", "busy_timeout(5000)"}}
	return path + "?" + pragmas.Encode()
}

// storeLogger reports slow queries and errors only; a missing record is an
// expected lookup result here.
func storeLogger() gormlogger.Interface {
	return gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
