// database/bootstrap.go
package database

import (
	"fmt"
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmassist/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Dedupe notes BEFORE AutoMigrate: the unique index on
	// (selection_id, week) cannot land while duplicate rows exist.
	if err := migrateNotesDedupe(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.State{},
		&entities.Crop{},
		&entities.Product{},
		&entities.TimelineTask{},
		&entities.User{},
		&entities.Selection{},
		&entities.IssueTemplate{},
		&entities.WeeklySolution{},
		&entities.Issue{},
		&entities.Note{},
		&entities.KBDocument{},
		&entities.KBChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateNotesDedupe keeps only the newest note per (selection_id, week).
// Older deployments saved notes with read-then-write and could race in
// duplicate rows; the key is now enforced by a unique index.
func migrateNotesDedupe(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='notes'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	var dupes int64
	if err := db.Raw(`
SELECT COUNT(*) FROM notes n
WHERE EXISTS (
    SELECT 1 FROM notes m
    WHERE m.selection_id = n.selection_id AND m.week = n.week AND m.note_id > n.note_id
)`).Scan(&dupes).Error; err != nil {
		return fmt.Errorf("count dupes: %w", err)
	}
	if dupes == 0 {
		return nil
	}

	log.Printf("[db] removing %d duplicate note rows before unique index", dupes)
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Exec(`
DELETE FROM notes
WHERE note_id NOT IN (
    SELECT MAX(note_id) FROM notes GROUP BY selection_id, week
)`).Error
	})
}
