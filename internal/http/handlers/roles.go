package handlers

import (
	"net/http"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/roles
//
// Roles are display-only: each row carries the permission codes it grants
// as a comma separated list, exposed as an array.
func GetRoles(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, name, COALESCE(permissions,'')
		FROM roles
		ORDER BY id`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list roles: " + err.Error()})
		return
	}
	defer rows.Close()

	list := []models.Role{}
	for rows.Next() {
		var r models.Role
		var perms string
		if err := rows.Scan(&r.ID, &r.Name, &perms); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan role: " + err.Error()})
			return
		}
		r.Permissions = splitPermissions(perms)
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/admin/permissions
func GetPermissions(c *gin.Context) {
	rows, err := intconfig.DB.Query(`
		SELECT id, code, COALESCE(description,'')
		FROM permissions
		ORDER BY id`)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list permissions: " + err.Error()})
		return
	}
	defer rows.Close()

	type permission struct {
		ID          int64  `json:"id"`
		Code        string `json:"code"`
		Description string `json:"description,omitempty"`
	}

	list := []permission{}
	for rows.Next() {
		var p permission
		if err := rows.Scan(&p.ID, &p.Code, &p.Description); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to scan permission: " + err.Error()})
			return
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "row iteration error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func splitPermissions(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
