package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

// ErrBookmarkNotFound signals a PATCH against a URL that was never
// bookmarked; the handler maps it to 404 so clients can fall back to create.
var ErrBookmarkNotFound = errors.New("bookmark not found")

type BookmarkService struct {
	DB *gorm.DB
}

func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{DB: db}
}

// List returns all bookmarks, most recently updated first.
func (s *BookmarkService) List(ctx context.Context) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := s.DB.WithContext(ctx).Order("updated_at DESC").Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

// ByURL returns the stored bookmarks keyed by listing URL, used to echo
// status/notes onto search results.
func (s *BookmarkService) ByURL(ctx context.Context) (map[string]models.Bookmark, error) {
	bookmarks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	byURL := make(map[string]models.Bookmark, len(bookmarks))
	for _, bm := range bookmarks {
		byURL[bm.URL] = bm
	}
	return byURL, nil
}

// Upsert creates the bookmark for url or overwrites its status and notes.
func (s *BookmarkService) Upsert(ctx context.Context, url, status, notes string) (*models.Bookmark, error) {
	var bm models.Bookmark
	err := s.DB.WithContext(ctx).Where(models.Bookmark{URL: url}).FirstOrCreate(&bm).Error
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Model(&bm).Updates(map[string]interface{}{
		"status": status,
		"notes":  notes,
	}).Error
	if err != nil {
		return nil, err
	}
	bm.Status = status
	bm.Notes = notes
	return &bm, nil
}

// Update modifies an existing bookmark only.
func (s *BookmarkService) Update(ctx context.Context, url, status, notes string) (*models.Bookmark, error) {
	var bm models.Bookmark
	err := s.DB.WithContext(ctx).Where("url = ?", url).First(&bm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookmarkNotFound
	}
	if err != nil {
		return nil, err
	}
	err = s.DB.WithContext(ctx).Model(&bm).Updates(map[string]interface{}{
		"status": status,
		"notes":  notes,
	}).Error
	if err != nil {
		return nil, err
	}
	bm.Status = status
	bm.Notes = notes
	return &bm, nil
}
