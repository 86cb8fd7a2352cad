package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// GET /api/institutions
func GetInstitutions(c *gin.Context) {
	repo := repositories.InstitutionRepository{}
	list, err := repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list institutions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

type institutionPayload struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

// POST /api/admin/institutions
func CreateInstitution(c *gin.Context) {
	var payload institutionPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`INSERT INTO institutions (name, is_active) VALUES (?, ?)`, name, active)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "institution already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create institution: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "institution created", "id": id})
}

// PUT /api/admin/institutions/:id
func UpdateInstitution(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload institutionPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`UPDATE institutions SET name = ?, is_active = ? WHERE id = ?`, name, active, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update institution: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "institution not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "institution updated"})
}

// DELETE /api/admin/institutions/:id
func DeleteInstitution(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM institutions WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete institution: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "institution not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "institution deleted"})
}
