package repositories

import (
	"database/sql"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain/models"
)

type InstitutionRepository struct {
	DB *sql.DB
}

func (r InstitutionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r InstitutionRepository) List() ([]models.Institution, error) {
	rows, err := r.db().Query(`
		SELECT id, name
		FROM institutions
		WHERE is_active = 1
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Institution{}
	for rows.Next() {
		var inst models.Institution
		if err := rows.Scan(&inst.ID, &inst.Name); err != nil {
			return nil, err
		}
		list = append(list, inst)
	}
	return list, rows.Err()
}

// Exists reports whether an active institution with the id is registered.
// Used to reject submissions whose institutionId did not parse.
func (r InstitutionRepository) Exists(id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM institutions WHERE id = ? AND is_active = 1 LIMIT 1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
