package repositories

import (
	"testing"

	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func trackingColumns() []string {
	return []string{
		"id", "request_code", "submitted_at",
		"service_id", "service_code", "service_name", "description", "bill_type", "group_name",
		"control_number", "payment_status", "bill_amount", "bill_eqv_amount",
		"requested_date", "payer_name", "payer_phone", "bill_description",
	}
}

func TestInsertStoresOneRowPerEntry(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	bill := models.BillRequest{
		ServiceID:   5,
		InstituteID: 2,
		ServiceEntryValue: []models.ServiceEntryValue{
			{ValueText: "Asha Juma", EntryDefinitionID: 11},
			{ValueText: "", EntryDefinitionID: 12},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bill_requests").
		WithArgs("HP-42", int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(99, 1))
	mock.ExpectExec("INSERT INTO service_entry_values").
		WithArgs(int64(99), int64(11), "Asha Juma").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO service_entry_values").
		WithArgs(int64(99), int64(12), "").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	repo := BillRequestRepository{DB: db}
	id, err := repo.Insert(bill, "HP-42")
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertDuplicateCodeConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bill_requests").
		WithArgs("HP-42", int64(5), int64(2)).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	repo := BillRequestRepository{DB: db}
	_, err = repo.Insert(models.BillRequest{ServiceID: 5, InstituteID: 2}, "HP-42")
	if !domain.IsConflict(err) {
		t.Fatalf("duplicate request code must map to conflict, got %v", err)
	}
}

func TestInsertWithoutCodeRejected(t *testing.T) {
	repo := BillRequestRepository{}
	if _, err := repo.Insert(models.BillRequest{}, ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetTrackingUnknownCode(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT b.id").
		WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows(trackingColumns()))

	repo := BillRequestRepository{DB: db}
	_, err = repo.GetTracking("NOPE")
	if !domain.IsNotFound(err) {
		t.Fatalf("unknown code must yield not-found, got %v", err)
	}
}

func TestGetTrackingPendingControlNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(trackingColumns()).AddRow(
		7, "HP-7", "2026-08-01 10:00",
		5, "SVC-01", "Business License", "Apply for a license", "FIXED", "Trade",
		nil, nil, nil, nil, nil, nil, nil, nil,
	)
	mock.ExpectQuery("SELECT b.id").WithArgs("HP-7").WillReturnRows(rows)
	mock.ExpectQuery("SELECT v.value_text").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"value_text", "id", "field_name", "field_label", "data_type", "is_required",
		}).AddRow("Asha Juma", 11, "fullName", "Full Name", "text", true))

	repo := BillRequestRepository{DB: db}
	rec, err := repo.GetTracking("HP-7")
	if err != nil {
		t.Fatalf("GetTracking returned error: %v", err)
	}
	if rec.ControlNumberDetails != nil {
		t.Fatalf("unpriced request must have nil control number details")
	}
	if rec.BillType != "FIXED" || rec.ServiceItem.Group.GroupName != "Trade" {
		t.Fatalf("service item not loaded: %+v", rec)
	}
	if len(rec.ServiceEntryValues) != 1 || rec.ServiceEntryValues[0].EntryDefinition.FieldName != "fullName" {
		t.Fatalf("entry values not loaded: %+v", rec.ServiceEntryValues)
	}
}

func TestGetTrackingWithControlNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(trackingColumns()).AddRow(
		8, "HP-8", "2026-08-02 09:30",
		5, "SVC-01", "Business License", "", "FIXED", "Trade",
		"998877", "PENDING", "15000", "15000 TZS",
		"2026-08-02", "Asha Juma", "0712000000", "Business License fee",
	)
	mock.ExpectQuery("SELECT b.id").WithArgs("HP-8").WillReturnRows(rows)
	mock.ExpectQuery("SELECT v.value_text").
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{
			"value_text", "id", "field_name", "field_label", "data_type", "is_required",
		}))

	repo := BillRequestRepository{DB: db}
	rec, err := repo.GetTracking("HP-8")
	if err != nil {
		t.Fatalf("GetTracking returned error: %v", err)
	}
	if rec.ControlNumberDetails == nil {
		t.Fatalf("priced request must include control number details")
	}
	if rec.ControlNumberDetails.ControlNumber != "998877" || rec.ControlNumberDetails.PaymentStatus != "PENDING" {
		t.Fatalf("control details wrong: %+v", rec.ControlNumberDetails)
	}
}

func TestUpdatePaymentStatusUnknownControlNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE control_numbers").
		WithArgs("PAID", "000000").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := BillRequestRepository{DB: db}
	if err := repo.UpdatePaymentStatus("000000", "PAID"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
