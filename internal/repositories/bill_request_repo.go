package repositories

import (
	"database/sql"

	intconfig "huduma-portal/internal/config"
	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type BillRequestRepository struct {
	DB *sql.DB
}

func (r BillRequestRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert stores a submission and its entry values in one transaction and
// returns the new request id.
func (r BillRequestRepository) Insert(bill models.BillRequest, requestCode string) (int64, error) {
	if requestCode == "" {
		return 0, domain.ValidationError{Field: "requestCode", Msg: "must be assigned before insert"}
	}

	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.Exec(`
		INSERT INTO bill_requests (request_code, service_id, institute_id, submitted_at)
		VALUES (?, ?, ?, NOW())
	`, requestCode, bill.ServiceID, bill.InstituteID)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "request code", Err: err}
		}
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, entry := range bill.ServiceEntryValue {
		if _, err := tx.Exec(`
			INSERT INTO service_entry_values (bill_request_id, entry_definition_id, value_text)
			VALUES (?, ?, ?)
		`, id, entry.EntryDefinitionID, entry.ValueText); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return id, nil
}

// GetTracking loads the full read model for a request code: service item,
// entry values with their definitions, and control-number details when the
// gateway has priced the request (nil otherwise).
func (r BillRequestRepository) GetTracking(requestCode string) (models.TrackingRecord, error) {
	query := `
		SELECT b.id,
		       b.request_code,
		       COALESCE(DATE_FORMAT(b.submitted_at, '%Y-%m-%d %H:%i'), ''),
		       s.id,
		       s.service_code,
		       s.service_name,
		       COALESCE(s.description,''),
		       COALESCE(s.bill_type,''),
		       COALESCE(g.group_name,''),
		       c.control_number,
		       c.payment_status,
		       c.bill_amount,
		       c.bill_eqv_amount,
		       c.requested_date,
		       c.payer_name,
		       c.payer_phone,
		       c.bill_description
		FROM bill_requests b
		JOIN services s ON s.id = b.service_id
		LEFT JOIN service_groups g ON g.id = s.group_id
		LEFT JOIN control_numbers c ON c.bill_request_id = b.id
		WHERE b.request_code = ?
		LIMIT 1`

	var rec models.TrackingRecord
	var ctrl, status, amount, eqv, reqDate, payer, phone, desc sql.NullString
	err := r.db().QueryRow(query, requestCode).Scan(
		&rec.ID,
		&rec.RequestCode,
		&rec.SubmittedDate,
		&rec.ServiceItem.ID,
		&rec.ServiceItem.ServiceCode,
		&rec.ServiceItem.ServiceName,
		&rec.ServiceItem.Description,
		&rec.BillType,
		&rec.ServiceItem.Group.GroupName,
		&ctrl,
		&status,
		&amount,
		&eqv,
		&reqDate,
		&payer,
		&phone,
		&desc,
	)
	if err == sql.ErrNoRows {
		return models.TrackingRecord{}, domain.NotFoundError{Resource: "tracking record"}
	}
	if err != nil {
		return models.TrackingRecord{}, err
	}
	rec.ServiceItem.BillType = rec.BillType

	if ctrl.Valid && ctrl.String != "" {
		rec.ControlNumberDetails = &models.ControlNumberDetails{
			ControlNumber:   ctrl.String,
			PaymentStatus:   status.String,
			BillAmount:      amount.String,
			BillEqvAmount:   eqv.String,
			RequestedDate:   reqDate.String,
			PayerName:       payer.String,
			PayerPhone:      phone.String,
			BillDescription: desc.String,
		}
	}

	values, err := r.listEntryValues(rec.ID)
	if err != nil {
		return models.TrackingRecord{}, err
	}
	rec.ServiceEntryValues = values
	return rec, nil
}

func (r BillRequestRepository) listEntryValues(billRequestID int64) ([]models.ServiceEntryValueResponse, error) {
	rows, err := r.db().Query(`
		SELECT v.value_text,
		       d.id,
		       d.field_name,
		       COALESCE(d.field_label,''),
		       COALESCE(d.data_type,'text'),
		       d.is_required
		FROM service_entry_values v
		JOIN entry_definitions d ON d.id = v.entry_definition_id
		WHERE v.bill_request_id = ?
		ORDER BY d.sort_order, d.id`, billRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []models.ServiceEntryValueResponse{}
	for rows.Next() {
		var v models.ServiceEntryValueResponse
		if err := rows.Scan(
			&v.ValueText,
			&v.EntryDefinition.ID,
			&v.EntryDefinition.FieldName,
			&v.EntryDefinition.FieldLabel,
			&v.EntryDefinition.DataType,
			&v.EntryDefinition.IsRequired,
		); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// SaveControlNumber upserts the gateway's pricing details for a request.
func (r BillRequestRepository) SaveControlNumber(billRequestID int64, d models.ControlNumberDetails) error {
	_, err := r.db().Exec(`
		INSERT INTO control_numbers
			(bill_request_id, control_number, payment_status, bill_amount,
			 bill_eqv_amount, requested_date, payer_name, payer_phone, bill_description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			control_number = VALUES(control_number),
			payment_status = VALUES(payment_status),
			bill_amount = VALUES(bill_amount),
			bill_eqv_amount = VALUES(bill_eqv_amount),
			requested_date = VALUES(requested_date),
			payer_name = VALUES(payer_name),
			payer_phone = VALUES(payer_phone),
			bill_description = VALUES(bill_description)
	`, billRequestID, d.ControlNumber, d.PaymentStatus, d.BillAmount,
		d.BillEqvAmount, d.RequestedDate, d.PayerName, d.PayerPhone, d.BillDescription)
	return err
}

// UpdatePaymentStatus applies a gateway callback by control number.
func (r BillRequestRepository) UpdatePaymentStatus(controlNumber, paymentStatus string) error {
	res, err := r.db().Exec(`
		UPDATE control_numbers
		SET payment_status = ?
		WHERE control_number = ?
	`, paymentStatus, controlNumber)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "control number"}
	}
	return nil
}
