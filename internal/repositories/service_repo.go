package repositories

import (
	"database/sql"
	"strings"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"
)

type ServiceRepository struct {
	DB *sql.DB
}

func (r ServiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID fetches one service with its group.
func (r ServiceRepository) GetByID(id int64) (models.Service, error) {
	if id <= 0 {
		return models.Service{}, domain.ValidationError{Field: "serviceId", Msg: "must be positive"}
	}

	query := `
		SELECT s.id,
		       s.service_code,
		       s.service_name,
		       COALESCE(s.description,''),
		       COALESCE(s.bill_type,''),
		       s.is_active,
		       COALESCE(g.id,0),
		       COALESCE(g.group_name,'')
		FROM services s
		LEFT JOIN service_groups g ON g.id = s.group_id
		WHERE s.id = ?
		LIMIT 1`

	var svc models.Service
	err := r.db().QueryRow(query, id).Scan(
		&svc.ID,
		&svc.ServiceCode,
		&svc.ServiceName,
		&svc.Description,
		&svc.BillType,
		&svc.IsActive,
		&svc.Group.ID,
		&svc.Group.GroupName,
	)
	if err == sql.ErrNoRows {
		return models.Service{}, domain.NotFoundError{Resource: "service"}
	}
	if err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// ListActive returns active services, optionally filtered by a search term
// against code and name.
func (r ServiceRepository) ListActive(q string) ([]models.Service, error) {
	query := `
		SELECT s.id,
		       s.service_code,
		       s.service_name,
		       COALESCE(s.description,''),
		       COALESCE(s.bill_type,''),
		       s.is_active,
		       COALESCE(g.id,0),
		       COALESCE(g.group_name,'')
		FROM services s
		LEFT JOIN service_groups g ON g.id = s.group_id
		WHERE s.is_active = 1`

	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += ` AND (s.service_code LIKE ? OR s.service_name LIKE ?)`
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY g.group_name, s.service_name`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Service{}
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(
			&svc.ID,
			&svc.ServiceCode,
			&svc.ServiceName,
			&svc.Description,
			&svc.BillType,
			&svc.IsActive,
			&svc.Group.ID,
			&svc.Group.GroupName,
		); err != nil {
			return nil, err
		}
		list = append(list, svc)
	}
	return list, rows.Err()
}

// ListFieldDefinitions returns a service's dynamic field set in its
// configured order.
func (r ServiceRepository) ListFieldDefinitions(serviceID int64) ([]models.FieldDefinition, error) {
	query := `
		SELECT id,
		       field_name,
		       COALESCE(field_label,''),
		       COALESCE(data_type,'text'),
		       is_required
		FROM entry_definitions
		WHERE service_id = ?
		ORDER BY sort_order, id`

	rows, err := r.db().Query(query, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	defs := []models.FieldDefinition{}
	for rows.Next() {
		var d models.FieldDefinition
		if err := rows.Scan(&d.ID, &d.FieldName, &d.FieldLabel, &d.DataType, &d.IsRequired); err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, rows.Err()
}
