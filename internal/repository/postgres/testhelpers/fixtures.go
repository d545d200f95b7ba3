package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures executes each SQL fixture file from fixturesPath in order
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetBusinessIDByExternalID resolves a fixture business by its external place ID,
// so tests do not depend on sequence values
func GetBusinessIDByExternalID(db *sql.DB, externalPlaceID string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM businesses WHERE external_place_id = $1", externalPlaceID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get business ID by external ID %s: %w", externalPlaceID, err)
	}
	return id, nil
}
