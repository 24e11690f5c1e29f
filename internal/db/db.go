package db

import (
	"fmt"

	"whiteboard/internal/note"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&note.Note{}); err != nil {
		return err
	}

	stmts := []string{
		// tag filter (GIN for text[])
		`create index if not exists idx_notes_tags on notes using gin (tags);`,
		`create index if not exists idx_notes_created on notes(created_at desc, id);`,
		`create index if not exists idx_notes_fts on notes using gin (to_tsvector('simple', content));`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
