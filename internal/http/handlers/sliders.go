package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/sliders — public, active only, in display order
func GetSliders(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, title, COALESCE(caption,''), image_path, sort_order, is_active
		FROM sliders
		WHERE is_active = 1
		ORDER BY sort_order, id`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list sliders: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Slider{}
	for rows.Next() {
		var s models.Slider
		if err := rows.Scan(&s.ID, &s.Title, &s.Caption, &s.ImagePath, &s.SortOrder, &s.IsActive); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan slider: " + err.Error()})
			return
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type sliderPayload struct {
	Title     string `json:"title" binding:"required"`
	Caption   string `json:"caption"`
	ImagePath string `json:"imagePath" binding:"required"`
	SortOrder int    `json:"sortOrder"`
	IsActive  *bool  `json:"isActive"`
}

// POST /api/admin/sliders
func CreateSlider(c *gin.Context) {
	var payload sliderPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := strings.TrimSpace(payload.Title)
	image := strings.TrimSpace(payload.ImagePath)
	if title == "" || image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and imagePath are required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO sliders (title, caption, image_path, sort_order, is_active)
		VALUES (?, ?, ?, ?, ?)
	`, title, nullIfEmpty(payload.Caption), image, payload.SortOrder, active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create slider: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "slider created", "id": id})
}

// PUT /api/admin/sliders/:id
func UpdateSlider(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload sliderPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	title := strings.TrimSpace(payload.Title)
	image := strings.TrimSpace(payload.ImagePath)
	if title == "" || image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and imagePath are required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		UPDATE sliders
		SET title = ?, caption = ?, image_path = ?, sort_order = ?, is_active = ?
		WHERE id = ?
	`, title, nullIfEmpty(payload.Caption), image, payload.SortOrder, active, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update slider: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "slider not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slider updated"})
}

// DELETE /api/admin/sliders/:id
func DeleteSlider(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM sliders WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete slider: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "slider not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "slider deleted"})
}
