package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"huduma-portal/internal/domain"
	"huduma-portal/internal/forms"

	"github.com/gin-gonic/gin"
)

func TestRespondDomainErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.ValidationError{Field: "serviceId", Msg: "must be positive"}, 400, "validation_error"},
		{"not found", domain.NotFoundError{Resource: "tracking record"}, 404, "not_found"},
		{"conflict", domain.ConflictError{Resource: "receipt"}, 409, "conflict"},
		{"gateway down", domain.UnavailableError{System: "billing gateway"}, 502, "upstream_unavailable"},
		{"internal", domain.InternalError{Msg: "boom"}, 500, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		RespondDomainError(c, tc.err)

		if w.Code != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.name, w.Code, tc.wantStatus)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: bad body: %v", tc.name, err)
		}
		if body["code"] != tc.wantCode {
			t.Fatalf("%s: code = %v, want %q", tc.name, body["code"], tc.wantCode)
		}
	}
}

func TestRespondDomainErrorPayloadKeys(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Set("request_id", "req-1")

	RespondDomainError(c, domain.NotFoundError{Resource: "tracking record"})

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["error"] == "" || body["request_id"] != "req-1" {
		t.Fatalf("payload missing error/request_id: %v", body)
	}
	if _, dup := body["message"]; dup {
		t.Fatalf("payload must not duplicate the error under a message key: %v", body)
	}
}

func TestRespondDomainErrorCarriesFieldDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", nil)

	RespondDomainError(c, forms.ValidationErrors{
		{Field: "nida", Message: "NIDA Number must contain digits only"},
		{Field: "institutionId", Message: "Institution must not be empty"},
	})

	if w.Code != 400 {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body struct {
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(body.Details) != 2 || body.Details[0].Field != "nida" {
		t.Fatalf("per-field details missing: %+v", body.Details)
	}
}
