package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Bookmark{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM bookmarks")
	})
	return db
}

func TestUpsertCreatesThenOverwrites(t *testing.T) {
	svc := NewBookmarkService(testDB(t))
	ctx := context.Background()

	created, err := svc.Upsert(ctx, "https://jobs/1", "interested", "looks good")
	if err != nil {
		t.Fatalf("upsert create: %v", err)
	}
	if created.Status != "interested" || created.Notes != "looks good" {
		t.Fatalf("unexpected record: %+v", created)
	}

	updated, err := svc.Upsert(ctx, "https://jobs/1", "applied", "sent resume")
	if err != nil {
		t.Fatalf("upsert overwrite: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatal("upsert created a second record for the same url")
	}
	if updated.Status != "applied" || updated.Notes != "sent resume" {
		t.Fatalf("overwrite not applied: %+v", updated)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d bookmarks, want 1", len(all))
	}
}

func TestUpdateMissingBookmark(t *testing.T) {
	svc := NewBookmarkService(testDB(t))

	_, err := svc.Update(context.Background(), "https://jobs/none", "applied", "")
	if !errors.Is(err, ErrBookmarkNotFound) {
		t.Fatalf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestUpdateExistingBookmark(t *testing.T) {
	svc := NewBookmarkService(testDB(t))
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, "https://jobs/2", "interested", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := svc.Update(ctx, "https://jobs/2", "interviewing", "phone screen friday")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != "interviewing" || got.Notes != "phone screen friday" {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestByURL(t *testing.T) {
	svc := NewBookmarkService(testDB(t))
	ctx := context.Background()

	svc.Upsert(ctx, "https://jobs/a", "applied", "")
	svc.Upsert(ctx, "https://jobs/b", "rejected", "no clearance")

	byURL, err := svc.ByURL(ctx)
	if err != nil {
		t.Fatalf("byURL: %v", err)
	}
	if len(byURL) != 2 {
		t.Fatalf("got %d entries, want 2", len(byURL))
	}
	if byURL["https://jobs/b"].Notes != "no clearance" {
		t.Fatalf("wrong record for b: %+v", byURL["https://jobs/b"])
	}
}
