package migration

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const upHeader = "-- Migration: %s\n-- Description: %s\n\n"
const downHeader = "-- Migration: %s (Rollback)\n\n"

// MigrationFile describes a freshly created up/down pair
type MigrationFile struct {
	Version  string
	UpPath   string
	DownPath string
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// CreateMigration writes an empty up/down pair named
// <YYYYMMDDHHMMSS>_<name>.{up,down}.sql into dir
func CreateMigration(dir, name, description string, now time.Time) (*MigrationFile, error) {
	slug := sanitizeName(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	version := now.UTC().Format("20060102150405")
	base := filepath.Join(dir, version+"_"+slug)
	mf := &MigrationFile{Version: version, UpPath: base + ".up.sql", DownPath: base + ".down.sql"}

	if err := os.WriteFile(mf.UpPath, []byte(fmt.Sprintf(upHeader, name, description)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create up migration: %w", err)
	}
	if err := os.WriteFile(mf.DownPath, []byte(fmt.Sprintf(downHeader, name)), 0o644); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("failed to create down migration: %w", err)
	}
	return mf, nil
}

// sanitizeName lowercases name and joins its alphanumeric runs with underscores
func sanitizeName(name string) string {
	return strings.Trim(nonWord.ReplaceAllString(strings.ToLower(name), "_"), "_")
}

// ListMigrations returns the base names of every up migration in source, sorted
func ListMigrations(source fs.FS) ([]string, error) {
	matches, err := fs.Glob(source, "*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(m, ".up.sql")
	}
	sort.Strings(names)
	return names, nil
}
