package services

import (
	"testing"

	"huduma-portal/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func guideColumns() []string {
	return []string{
		"id", "title", "category", "description", "file_path", "file_name",
		"featured", "is_active", "created_at", "view_count", "download_count",
	}
}

func TestResolveDownloadFallsBackToStorageBase(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id,").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(guideColumns()).
			AddRow(4, "Birth Certificate Form", "Civil", "", "/guides/birth.pdf", "birth.pdf", true, true, "2026-01-01", 10, 3))
	mock.ExpectExec("UPDATE guides SET download_count").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := GuideService{DB: db, StorageBaseURL: "https://files.example.go.tz/storage/"}
	url, name, err := svc.ResolveDownload(4)
	if err != nil {
		t.Fatalf("ResolveDownload returned error: %v", err)
	}
	if url != "https://files.example.go.tz/storage/guides/birth.pdf" {
		t.Fatalf("fallback URL wrong: %q", url)
	}
	if name != "birth.pdf" {
		t.Fatalf("file name wrong: %q", name)
	}
}

func TestResolveDownloadKeepsAbsoluteURL(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id,").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(guideColumns()).
			AddRow(5, "Guide", "", "", "https://api.example.go.tz/files/5", "guide.pdf", false, true, "2026-01-01", 0, 0))
	mock.ExpectExec("UPDATE guides SET download_count").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := GuideService{DB: db, StorageBaseURL: "https://files.example.go.tz/storage"}
	url, _, err := svc.ResolveDownload(5)
	if err != nil {
		t.Fatalf("ResolveDownload returned error: %v", err)
	}
	if url != "https://api.example.go.tz/files/5" {
		t.Fatalf("api URL must win over storage fallback, got %q", url)
	}
}

func TestResolveDownloadFileNameFallsBackToPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id,").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(guideColumns()).
			AddRow(7, "Guide", "", "", "/guides/water-permit.pdf", "", false, true, "2026-01-01", 0, 0))
	mock.ExpectExec("UPDATE guides SET download_count").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := GuideService{DB: db, StorageBaseURL: "https://files.example.go.tz"}
	_, name, err := svc.ResolveDownload(7)
	if err != nil {
		t.Fatalf("ResolveDownload returned error: %v", err)
	}
	if name != "water-permit.pdf" {
		t.Fatalf("file name should derive from path, got %q", name)
	}
}

func TestInactiveGuideHiddenFromPublic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id,").
		WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows(guideColumns()).
			AddRow(6, "Draft", "", "", "/guides/draft.pdf", "draft.pdf", false, false, "2026-01-01", 0, 0))

	svc := GuideService{DB: db, StorageBaseURL: "https://files.example.go.tz"}
	if _, _, err := svc.ResolveDownload(6); !domain.IsNotFound(err) {
		t.Fatalf("inactive guide must be not-found, got %v", err)
	}
}
