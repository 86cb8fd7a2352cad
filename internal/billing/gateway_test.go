package billing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"
)

func TestRequestControlNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/bills" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "k1" {
			t.Fatalf("api key header missing")
		}
		var req PricingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if req.RequestCode != "HP-123" {
			t.Fatalf("request code not forwarded, got %q", req.RequestCode)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.ControlNumberDetails{
			ControlNumber: "998877",
			PaymentStatus: "PENDING",
			BillAmount:    "15000",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k1")
	details, err := client.RequestControlNumber(context.Background(), PricingRequest{
		RequestCode: "HP-123",
		ServiceCode: "SVC-01",
	})
	if err != nil {
		t.Fatalf("RequestControlNumber returned error: %v", err)
	}
	if details.ControlNumber != "998877" || details.BillAmount != "15000" {
		t.Fatalf("unexpected details %+v", details)
	}
}

func TestFetchStatusNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchStatus(context.Background(), "000")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGatewayErrorsMapToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchStatus(context.Background(), "998877")
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}

	// transport failure (server closed) also maps to unavailable
	srv.Close()
	_, err = client.FetchStatus(context.Background(), "998877")
	if !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable on transport error, got %v", err)
	}
}

func TestFetchStatusEscapesControlNumber(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(models.ControlNumberDetails{ControlNumber: "1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	if _, err := client.FetchStatus(context.Background(), "a/b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/bills/a%2Fb/status" {
		t.Fatalf("control number not escaped: %s", gotPath)
	}
}
