package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain/models"
	"huduma-portal/internal/utils"

	"github.com/gin-gonic/gin"
)

// The "muhimu" board groups announcements, videos and downloads; the three
// share one table discriminated by kind.
var muhimuKinds = map[string]bool{
	"announcement": true,
	"video":        true,
	"download":     true,
}

func muhimuKind(c *gin.Context) (string, bool) {
	kind := strings.ToLower(strings.TrimSpace(c.Param("kind")))
	// accept plural route segments the way the portal frontend names them
	kind = strings.TrimSuffix(kind, "s")
	if !muhimuKinds[kind] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown muhimu kind"})
		return "", false
	}
	return kind, true
}

// GET /api/muhimu/:kind — public, active only
func GetMuhimuItems(c *gin.Context) {
	kind, ok := muhimuKind(c)
	if !ok {
		return
	}

	rows, err := intconfig.DB.Query(`
		SELECT id, kind, title, COALESCE(body,''), COALESCE(media_url,''), COALESCE(file_path,''),
		       is_active, COALESCE(DATE_FORMAT(published_at, '%Y-%m-%d'), '')
		FROM muhimu_items
		WHERE kind = ? AND is_active = 1
		ORDER BY published_at DESC, id DESC`, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list muhimu items: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.MuhimuItem{}
	for rows.Next() {
		var m models.MuhimuItem
		if err := rows.Scan(&m.ID, &m.Kind, &m.Title, &m.Body, &m.MediaURL, &m.FilePath, &m.IsActive, &m.PublishedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan muhimu item: " + err.Error()})
			return
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type muhimuPayload struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body"`
	MediaURL    string `json:"mediaUrl"`
	FilePath    string `json:"filePath"`
	PublishedAt string `json:"publishedAt"`
	IsActive    *bool  `json:"isActive"`
}

// POST /api/admin/muhimu/:kind
func CreateMuhimuItem(c *gin.Context) {
	kind, ok := muhimuKind(c)
	if !ok {
		return
	}

	var payload muhimuPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := utils.NormalizeSpace(payload.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO muhimu_items (kind, title, body, media_url, file_path, is_active, published_at)
		VALUES (?, ?, ?, ?, ?, ?, COALESCE(NULLIF(?, ''), NOW()))
	`, kind, title, nullIfEmpty(payload.Body), nullIfEmpty(payload.MediaURL),
		nullIfEmpty(payload.FilePath), active, strings.TrimSpace(payload.PublishedAt))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create muhimu item: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "muhimu item created", "id": id})
}

// PUT /api/admin/muhimu/:kind/:id
func UpdateMuhimuItem(c *gin.Context) {
	kind, ok := muhimuKind(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload muhimuPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := utils.NormalizeSpace(payload.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		UPDATE muhimu_items
		SET title = ?, body = ?, media_url = ?, file_path = ?, is_active = ?
		WHERE id = ? AND kind = ?
	`, title, nullIfEmpty(payload.Body), nullIfEmpty(payload.MediaURL),
		nullIfEmpty(payload.FilePath), active, id, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update muhimu item: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "muhimu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "muhimu item updated"})
}

// DELETE /api/admin/muhimu/:kind/:id
func DeleteMuhimuItem(c *gin.Context) {
	kind, ok := muhimuKind(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM muhimu_items WHERE id = ? AND kind = ?`, id, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete muhimu item: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "muhimu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "muhimu item deleted"})
}
