package database

import (
	"io/fs"
	"strings"
	"testing"

	"sialkot-shop/migrations"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	content, err := fs.ReadFile(migrations.FS, name)
	if err != nil {
		t.Fatalf("Failed to read migration file %s: %v", name, err)
	}
	return string(content)
}

func TestMigrationFilesExist(t *testing.T) {
	expectedMigrations := []string{
		"00001_create_categories_table.sql",
		"00002_create_products_table.sql",
		"00003_create_reviews_table.sql",
	}

	for _, migration := range expectedMigrations {
		if _, err := fs.Stat(migrations.FS, migration); err != nil {
			t.Errorf("Migration file %s does not exist", migration)
		}
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	files, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	sqlFileCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		contentStr := readMigration(t, file.Name())

		for _, directive := range []string{
			"-- +goose Up",
			"-- +goose Down",
			"-- +goose StatementBegin",
			"-- +goose StatementEnd",
		} {
			if !strings.Contains(contentStr, directive) {
				t.Errorf("Migration file %s missing '%s' directive", file.Name(), directive)
			}
		}
	}

	if sqlFileCount == 0 {
		t.Error("No SQL migration files found")
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	expectedTables := map[string]string{
		"categories": "00001_create_categories_table.sql",
		"products":   "00002_create_products_table.sql",
		"reviews":    "00003_create_reviews_table.sql",
	}

	for tableName, migrationFile := range expectedTables {
		contentStr := readMigration(t, migrationFile)

		if !strings.Contains(contentStr, "CREATE TABLE IF NOT EXISTS "+tableName) {
			t.Errorf("Migration file %s does not create table %s", migrationFile, tableName)
		}

		if !strings.Contains(contentStr, "DROP TABLE IF EXISTS "+tableName) {
			t.Errorf("Migration file %s does not drop table %s in down section", migrationFile, tableName)
		}
	}
}

func TestProductsTableHasRequiredColumns(t *testing.T) {
	contentStr := readMigration(t, "00002_create_products_table.sql")

	requiredColumns := []string{
		"id VARCHAR(64) PRIMARY KEY",
		"name VARCHAR",
		"category VARCHAR",
		"description TEXT",
		"image_url TEXT",
		"price VARCHAR",
		"customization JSONB",
		"position BIGINT",
		"created_at TIMESTAMP",
		"updated_at TIMESTAMP",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Products table missing required column definition: %s", column)
		}
	}
}

func TestReviewsTableConstrainsRating(t *testing.T) {
	contentStr := readMigration(t, "00003_create_reviews_table.sql")

	if !strings.Contains(contentStr, "CHECK (rating BETWEEN 1 AND 5)") {
		t.Error("Reviews table missing rating range constraint")
	}

	if !strings.Contains(contentStr, "FOREIGN KEY (product_id) REFERENCES products(id)") {
		t.Error("Reviews table missing foreign key constraint to products")
	}
}
