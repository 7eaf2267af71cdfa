// Package store opens the repository backend named by a DATABASE_URL.
package store

import (
	"fmt"
	"io"
	"strings"

	"fitness/internal/adapter/memory"
	"fitness/internal/adapter/postgres"
	"fitness/internal/adapter/sqlite"
	"fitness/internal/domain"
)

// Store is the union of the repository ports every backend implements.
type Store interface {
	domain.UserRepository
	domain.CatalogRepository
	domain.WorkoutRepository
	domain.MealRepository
	domain.LogReader
	io.Closer
}

// Kind names a backend.
type Kind string

const (
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
	KindMemory   Kind = "memory"
)

// Parse splits a database URL into its backend kind and the string that
// backend's Open expects.
//
//	postgres://... or postgresql://...  -> postgres, the full URL
//	sqlite:<path>                       -> sqlite, <path>
//	memory:                             -> memory
func Parse(url string) (Kind, string, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return KindPostgres, url, nil
	case strings.HasPrefix(url, "sqlite:"):
		path := strings.TrimPrefix(url, "sqlite:")
		path = strings.TrimPrefix(path, "//")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url %q has no path", url)
		}
		return KindSQLite, path, nil
	case url == "memory:" || url == "memory://":
		return KindMemory, "", nil
	}
	return "", "", fmt.Errorf("unsupported database url %q", url)
}

// Open connects to the backend named by url and prepares its schema.
func Open(url string) (Store, error) {
	kind, target, err := Parse(url)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindPostgres:
		db, err := postgres.Open(target)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil
	case KindSQLite:
		db, err := sqlite.Open(target)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", target, err)
		}
		return db, nil
	case KindMemory:
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unsupported backend %q", kind)
}
