package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const faqSelect = `
	SELECT id,
	       question,
	       answer,
	       COALESCE(category,''),
	       is_active,
	       COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i'), ''),
	       COALESCE(DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i'), '')
	FROM faqs`

func scanFAQs(c *gin.Context, query string, args ...any) ([]models.FAQ, bool) {
	rows, err := intconfig.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list FAQs: " + err.Error()})
		return nil, false
	}
	defer rows.Close()

	list := []models.FAQ{}
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan FAQ: " + err.Error()})
			return nil, false
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return nil, false
	}
	return list, true
}

// GET /api/faqs — public, active only
func GetFAQs(c *gin.Context) {
	query := faqSelect + ` WHERE is_active = 1`
	args := []any{}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		query += ` AND category = ?`
		args = append(args, cat)
	}
	query += ` ORDER BY id`

	list, ok := scanFAQs(c, query, args...)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/faqs — back office, everything
func GetAllFAQs(c *gin.Context) {
	list, ok := scanFAQs(c, faqSelect+` ORDER BY id`)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, list)
}

type faqPayload struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Category string `json:"category"`
	IsActive *bool  `json:"isActive"`
}

// POST /api/admin/faqs
func CreateFAQ(c *gin.Context) {
	var payload faqPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	question := strings.TrimSpace(payload.Question)
	answer := strings.TrimSpace(payload.Answer)
	if question == "" || answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer are required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO faqs (question, answer, category, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
	`, question, answer, nullIfEmpty(payload.Category), active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create FAQ: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "FAQ created", "id": id})
}

// PUT /api/admin/faqs/:id
func UpdateFAQ(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload faqPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	question := strings.TrimSpace(payload.Question)
	answer := strings.TrimSpace(payload.Answer)
	if question == "" || answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer are required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		UPDATE faqs
		SET question = ?, answer = ?, category = ?, is_active = ?, updated_at = NOW()
		WHERE id = ?
	`, question, answer, nullIfEmpty(payload.Category), active, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update FAQ: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ updated"})
}

// DELETE /api/admin/faqs/:id
func DeleteFAQ(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM faqs WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete FAQ: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted"})
}
