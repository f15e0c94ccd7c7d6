package db

import (
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	embeddedmigrations "github.com/terraincognita07/cyclecal/migrations"
	"gorm.io/gorm"
)

// Migration files are named NNNN_description.sql. Each one runs exactly once,
// in version order, inside its own transaction.
type migration struct {
	Version    int
	Name       string
	Statements []string
}

// schemaVersion is the bookkeeping row written after a migration commits.
type schemaVersion struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (schemaVersion) TableName() string {
	return "schema_migrations"
}

func migrateSchema(database *gorm.DB) error {
	return migrate(database, embeddedmigrations.Files)
}

func migrate(database *gorm.DB, files fs.FS) error {
	if err := database.AutoMigrate(&schemaVersion{}); err != nil {
		return fmt.Errorf("prepare schema_migrations: %w", err)
	}

	pending, err := readMigrations(files)
	if err != nil {
		return err
	}

	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, next := range pending {
		if applied[next.Version] {
			continue
		}
		if err := database.Transaction(func(tx *gorm.DB) error {
			for _, statement := range next.Statements {
				if err := tx.Exec(statement).Error; err != nil {
					return err
				}
			}
			return tx.Create(&schemaVersion{
				Version:   next.Version,
				Name:      next.Name,
				AppliedAt: time.Now().UTC(),
			}).Error
		}); err != nil {
			return fmt.Errorf("apply migration %s: %w", next.Name, err)
		}
	}
	return nil
}

func readMigrations(files fs.FS) ([]migration, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	migrations := make([]migration, 0, len(names))
	byVersion := make(map[int]string, len(names))
	for _, name := range names {
		prefix, _, found := strings.Cut(name, "_")
		version, err := strconv.Atoi(prefix)
		if !found || err != nil || version <= 0 {
			return nil, fmt.Errorf("migration %s: name must start with a positive version number", name)
		}
		if other, taken := byVersion[version]; taken {
			return nil, fmt.Errorf("migrations %s and %s share version %d", other, name, version)
		}
		byVersion[version] = name

		raw, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		statements := sqlStatements(string(raw))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s has no statements", name)
		}

		migrations = append(migrations, migration{Version: version, Name: name, Statements: statements})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func appliedVersions(database *gorm.DB) (map[int]bool, error) {
	versions := make([]int, 0)
	if err := database.Model(&schemaVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	applied := make(map[int]bool, len(versions))
	for _, version := range versions {
		applied[version] = true
	}
	return applied, nil
}

// sqlStatements drops "--" comment lines and splits the rest on semicolons.
// Migrations must not put semicolons inside string literals.
func sqlStatements(text string) []string {
	var body strings.Builder
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}

	statements := make([]string, 0)
	for _, part := range strings.Split(body.String(), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
