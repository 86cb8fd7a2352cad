package repositories

import (
	"testing"

	"huduma-portal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestListFieldDefinitionsKeepsConfiguredOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "field_name", "field_label", "data_type", "is_required"}).
		AddRow(11, "fullName", "Full Name", "text", true).
		AddRow(12, "applicantEmail", "", "email", false).
		AddRow(13, "attachment", "Attachment", "file", true)
	mock.ExpectQuery("SELECT id,").WithArgs(int64(5)).WillReturnRows(rows)

	repo := ServiceRepository{DB: db}
	defs, err := repo.ListFieldDefinitions(5)
	if err != nil {
		t.Fatalf("ListFieldDefinitions returned error: %v", err)
	}
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions, got %d", len(defs))
	}
	if defs[0].ID != 11 || defs[1].ID != 12 || defs[2].ID != 13 {
		t.Fatalf("definition order not preserved: %+v", defs)
	}
	if defs[1].Label() != "applicantEmail" {
		t.Fatalf("label fallback broken: %q", defs[1].Label())
	}
}

func TestGetServiceByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT s.id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "service_code", "service_name", "description", "bill_type",
			"is_active", "group_id", "group_name",
		}))

	repo := ServiceRepository{DB: db}
	if _, err := repo.GetByID(404); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
