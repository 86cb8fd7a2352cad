package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "huduma-portal/internal/config"
	dbutil "huduma-portal/internal/db"
	"huduma-portal/internal/forms"
	"huduma-portal/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// GET /api/services?q=license
func GetServices(c *gin.Context) {
	repo := repositories.ServiceRepository{}
	list, err := repo.ListActive(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list services: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/services/:id
func GetServiceByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	repo := repositories.ServiceRepository{}
	svc, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// GET /api/services/:id/fields
func GetServiceFields(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	repo := repositories.ServiceRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	defs, err := repo.ListFieldDefinitions(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fields: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, defs)
}

type servicePayload struct {
	ServiceCode string `json:"serviceCode" binding:"required"`
	ServiceName string `json:"serviceName" binding:"required"`
	Description string `json:"description"`
	BillType    string `json:"billType"`
	GroupID     *int64 `json:"groupId"`
	IsActive    *bool  `json:"isActive"`
}

// POST /api/admin/services
func CreateService(c *gin.Context) {
	var payload servicePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	code := strings.TrimSpace(payload.ServiceCode)
	name := strings.TrimSpace(payload.ServiceName)
	if code == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceCode and serviceName are required"})
		return
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		INSERT INTO services (service_code, service_name, description, bill_type, group_id, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, code, name, nullIfEmpty(payload.Description), strings.ToUpper(strings.TrimSpace(payload.BillType)), payload.GroupID, active)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "service code already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "service created", "id": id})
}

// PUT /api/admin/services/:id
func UpdateService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload servicePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	code := strings.TrimSpace(payload.ServiceCode)
	name := strings.TrimSpace(payload.ServiceName)
	if code == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "serviceCode and serviceName are required"})
		return
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	res, err := intconfig.DB.Exec(`
		UPDATE services
		SET service_code = ?, service_name = ?, description = ?, bill_type = ?, group_id = ?, is_active = ?
		WHERE id = ?
	`, code, name, nullIfEmpty(payload.Description), strings.ToUpper(strings.TrimSpace(payload.BillType)), payload.GroupID, active, id)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "service code already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service updated"})
}

// DELETE /api/admin/services/:id
func DeleteService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

type fieldDefinitionPayload struct {
	FieldName  string `json:"fieldName" binding:"required"`
	FieldLabel string `json:"fieldLabel"`
	DataType   string `json:"dataType"`
	IsRequired bool   `json:"isRequired"`
	SortOrder  int    `json:"sortOrder"`
}

// POST /api/admin/services/:id/fields
func CreateServiceField(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || serviceID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	var payload fieldDefinitionPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	name := strings.TrimSpace(payload.FieldName)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fieldName is required"})
		return
	}
	// normalize through the same mapping the schema builder uses
	dataType := forms.ParseFieldType(payload.DataType).String()

	res, err := intconfig.DB.Exec(`
		INSERT INTO entry_definitions (service_id, field_name, field_label, data_type, is_required, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)
	`, serviceID, name, nullIfEmpty(strings.TrimSpace(payload.FieldLabel)), dataType, payload.IsRequired, payload.SortOrder)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "field name already exists for this service"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create field: " + err.Error()})
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{"message": "field created", "id": id})
}

// PUT /api/admin/fields/:id
func UpdateServiceField(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var payload fieldDefinitionPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	name := strings.TrimSpace(payload.FieldName)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fieldName is required"})
		return
	}
	dataType := forms.ParseFieldType(payload.DataType).String()

	res, err := intconfig.DB.Exec(`
		UPDATE entry_definitions
		SET field_name = ?, field_label = ?, data_type = ?, is_required = ?, sort_order = ?
		WHERE id = ?
	`, name, nullIfEmpty(strings.TrimSpace(payload.FieldLabel)), dataType, payload.IsRequired, payload.SortOrder, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update field: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "field not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "field updated"})
}

// DELETE /api/admin/fields/:id
func DeleteServiceField(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	res, err := intconfig.DB.Exec(`DELETE FROM entry_definitions WHERE id = ?`, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete field: " + err.Error()})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "field not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "field deleted"})
}

func nullIfEmpty(s string) any {
	return dbutil.NullIfEmpty(strings.TrimSpace(s))
}
