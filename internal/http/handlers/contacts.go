package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/contacts — public office directory, active only
func GetContacts(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, office, COALESCE(address,''), COALESCE(phone,''), COALESCE(email,''), is_active
		FROM contacts
		WHERE is_active = 1
		ORDER BY office`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contacts: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Contact{}
	for rows.Next() {
		var ct models.Contact
		if err := rows.Scan(&ct.ID, &ct.Office, &ct.Address, &ct.Phone, &ct.Email, &ct.IsActive); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan contact: " + err.Error()})
			return
		}
		list = append(list, ct)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type contactPayload struct {
	Office   string `json:"office" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IsActive *bool  `json:"isActive"`
}

// POST /api/admin/contacts
func CreateContact(c *gin.Context) {
	var payload contactPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	office := strings.TrimSpace(payload.Office)
	if office == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "office is required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO contacts (office, address, phone, email, is_active)
		VALUES (?, ?, ?, ?, ?)
	`, office, nullIfEmpty(payload.Address), nullIfEmpty(payload.Phone), nullIfEmpty(payload.Email), active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create contact: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "contact created", "id": id})
}

// PUT /api/admin/contacts/:id
func UpdateContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload contactPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	office := strings.TrimSpace(payload.Office)
	if office == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "office is required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		UPDATE contacts
		SET office = ?, address = ?, phone = ?, email = ?, is_active = ?
		WHERE id = ?
	`, office, nullIfEmpty(payload.Address), nullIfEmpty(payload.Phone), nullIfEmpty(payload.Email), active, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update contact: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact updated"})
}

// DELETE /api/admin/contacts/:id
func DeleteContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete contact: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "contact not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "contact deleted"})
}
