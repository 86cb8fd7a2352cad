package services

import (
	"database/sql"
	"fmt"
	"path"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"
	"huduma-portal/internal/utils"
)

// GuideService resolves downloads for published guides and keeps the view
// and download counters moving.
type GuideService struct {
	DB             *sql.DB
	StorageBaseURL string
	RequestID      string
}

func (s GuideService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// GetActive loads one active guide and bumps its view counter.
func (s GuideService) GetActive(id int64) (models.Guide, error) {
	g, err := s.getByID(id)
	if err != nil {
		return models.Guide{}, err
	}
	if !g.IsActive {
		return models.Guide{}, domain.NotFoundError{Resource: "guide"}
	}
	if _, err := s.db().Exec(`UPDATE guides SET view_count = view_count + 1 WHERE id = ?`, id); err == nil {
		g.ViewCount++
	}
	return g, nil
}

// ResolveDownload bumps the download counter and returns the URL to serve.
// An API-managed file path wins; otherwise the static storage base is the
// fallback, mirroring the portal's authenticated-then-static download chain.
func (s GuideService) ResolveDownload(id int64) (string, string, error) {
	g, err := s.getByID(id)
	if err != nil {
		return "", "", err
	}
	if !g.IsActive {
		return "", "", domain.NotFoundError{Resource: "guide"}
	}

	url := s.downloadURL(g)
	if url == "" {
		return "", "", domain.NotFoundError{Resource: "guide file"}
	}

	if _, err := s.db().Exec(`UPDATE guides SET download_count = download_count + 1 WHERE id = ?`, id); err != nil {
		utils.LogEvent(s.RequestID, "guides", "count_failed", fmt.Sprintf("guide_id=%d err=%v", id, err))
	}
	filename := utils.FirstNonEmpty(g.FileName, path.Base(g.FilePath))
	return url, filename, nil
}

func (s GuideService) downloadURL(g models.Guide) string {
	path := strings.TrimSpace(g.FilePath)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	base := strings.TrimRight(s.StorageBaseURL, "/")
	return base + "/" + strings.TrimLeft(path, "/")
}

func (s GuideService) getByID(id int64) (models.Guide, error) {
	if id <= 0 {
		return models.Guide{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}

	query := `
		SELECT id,
		       title,
		       COALESCE(category,''),
		       COALESCE(description,''),
		       COALESCE(file_path,''),
		       COALESCE(file_name,''),
		       featured,
		       is_active,
		       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d'), ''),
		       view_count,
		       download_count
		FROM guides
		WHERE id = ?
		LIMIT 1`

	var g models.Guide
	err := s.db().QueryRow(query, id).Scan(
		&g.ID,
		&g.Title,
		&g.Category,
		&g.Description,
		&g.FilePath,
		&g.FileName,
		&g.Featured,
		&g.IsActive,
		&g.CreatedAt,
		&g.ViewCount,
		&g.DownloadCount,
	)
	if err == sql.ErrNoRows {
		return models.Guide{}, domain.NotFoundError{Resource: "guide"}
	}
	if err != nil {
		return models.Guide{}, err
	}
	return g, nil
}
