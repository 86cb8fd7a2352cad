package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain/models"
	"huduma-portal/internal/http/middleware"
	"huduma-portal/internal/services"

	"github.com/gin-gonic/gin"
)

const guideSelect = `
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
	FROM guides`

func scanGuides(c *gin.Context, query string, args ...any) ([]models.Guide, bool) {
	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list guides: " + err.Error()})
		return nil, false
	}
	defer rows.Close()

	list := []models.Guide{}
	for rows.Next() {
		var g models.Guide
		if err := rows.Scan(&g.ID, &g.Title, &g.Category, &g.Description, &g.FilePath, &g.FileName,
			&g.Featured, &g.IsActive, &g.CreatedAt, &g.ViewCount, &g.DownloadCount); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan guide: " + err.Error()})
			return nil, false
		}
		list = append(list, g)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return nil, false
	}
	return list, true
}

// GET /api/guides?category=Civil&featured=1 — public, active only
func GetGuides(c *gin.Context) {
	query := guideSelect + ` WHERE is_active = 1`
	args := []any{}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		query += ` AND category = ?`
		args = append(args, cat)
	}
	if c.Query("featured") == "1" {
		query += ` AND featured = 1`
	}
	query += ` ORDER BY featured DESC, title`

	list, ok := scanGuides(c, query, args...)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/guides/:id — public; bumps the view counter
func GetGuideByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.GuideService{StorageBaseURL: storageBaseURL, RequestID: middleware.GetRequestID(c)}
	guide, err := svc.GetActive(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, guide)
}

// GET /api/guides/:id/download — bumps the counter and redirects to the
// file, API path first with the static storage base as fallback.
func DownloadGuide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	svc := services.GuideService{StorageBaseURL: storageBaseURL, RequestID: middleware.GetRequestID(c)}
	url, filename, err := svc.ResolveDownload(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Redirect(http.StatusFound, url)
}

// GET /api/admin/guides — back office, everything
func GetAllGuides(c *gin.Context) {
	list, ok := scanGuides(c, guideSelect+` ORDER BY id DESC`)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, list)
}

type guidePayload struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	FilePath    string `json:"file_path" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	Featured    bool   `json:"featured"`
	IsActive    *bool  `json:"isActive"`
}

// POST /api/admin/guides
func CreateGuide(c *gin.Context) {
	var payload guidePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" || strings.TrimSpace(payload.FilePath) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and file_path are required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO guides (title, category, description, file_path, file_name, featured, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`, title, nullIfEmpty(payload.Category), nullIfEmpty(payload.Description),
		strings.TrimSpace(payload.FilePath), strings.TrimSpace(payload.FileName), payload.Featured, active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create guide: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "guide created", "id": id})
}

// PUT /api/admin/guides/:id
func UpdateGuide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload guidePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" || strings.TrimSpace(payload.FilePath) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and file_path are required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		UPDATE guides
		SET title = ?, category = ?, description = ?, file_path = ?, file_name = ?, featured = ?, is_active = ?
		WHERE id = ?
	`, title, nullIfEmpty(payload.Category), nullIfEmpty(payload.Description),
		strings.TrimSpace(payload.FilePath), strings.TrimSpace(payload.FileName), payload.Featured, active, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update guide: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "guide not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guide updated"})
}

// DELETE /api/admin/guides/:id
func DeleteGuide(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM guides WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete guide: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "guide not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "guide deleted"})
}
