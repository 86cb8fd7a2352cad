package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"
)

// PricingRequest asks the gateway to price a submitted request and issue a
// control number for it.
type PricingRequest struct {
	RequestCode string `json:"requestCode"`
	ServiceCode string `json:"serviceCode"`
	ServiceName string `json:"serviceName"`
	InstituteID int64  `json:"instituteId"`
	PayerName   string `json:"payerName,omitempty"`
	PayerPhone  string `json:"payerPhone,omitempty"`
	Description string `json:"description,omitempty"`
}

// ControlNumberIssuer is what the application flow needs from the gateway;
// Client is the HTTP implementation, tests inject fakes.
type ControlNumberIssuer interface {
	RequestControlNumber(ctx context.Context, req PricingRequest) (models.ControlNumberDetails, error)
	FetchStatus(ctx context.Context, controlNumber string) (models.ControlNumberDetails, error)
}

// Client talks to the downstream billing gateway over HTTP.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// RequestControlNumber submits a pricing request. The gateway may respond
// immediately with a priced bill or with a pending status; either way the
// returned details are stored as-is.
func (c *Client) RequestControlNumber(ctx context.Context, req PricingRequest) (models.ControlNumberDetails, error) {
	if req.RequestCode == "" {
		return models.ControlNumberDetails{}, domain.ValidationError{Field: "requestCode", Msg: "must not be empty"}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.ControlNumberDetails{}, domain.InternalError{Msg: "failed to encode pricing request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/bills", bytes.NewReader(body))
	if err != nil {
		return models.ControlNumberDetails{}, domain.InternalError{Err: err}
	}
	return c.do(httpReq)
}

// FetchStatus re-reads the bill for a control number. Idempotent; callers
// decide the refetch cadence.
func (c *Client) FetchStatus(ctx context.Context, controlNumber string) (models.ControlNumberDetails, error) {
	if controlNumber == "" {
		return models.ControlNumberDetails{}, domain.ValidationError{Field: "controlNumber", Msg: "must not be empty"}
	}

	endpoint := c.BaseURL + "/api/bills/" + url.PathEscape(controlNumber) + "/status"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.ControlNumberDetails{}, domain.InternalError{Err: err}
	}
	return c.do(httpReq)
}

func (c *Client) do(req *http.Request) (models.ControlNumberDetails, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.APIKey != "" {
		req.Header.Set("X-Api-Key", c.APIKey)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return models.ControlNumberDetails{}, domain.UnavailableError{System: "billing gateway", Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.ControlNumberDetails{}, domain.NotFoundError{Resource: "bill"}
	case resp.StatusCode >= 500:
		return models.ControlNumberDetails{}, domain.UnavailableError{
			System: "billing gateway",
			Err:    fmt.Errorf("gateway returned %d", resp.StatusCode),
		}
	case resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated:
		return models.ControlNumberDetails{}, domain.InternalError{
			Msg: fmt.Sprintf("unexpected gateway response %d", resp.StatusCode),
		}
	}

	var details models.ControlNumberDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return models.ControlNumberDetails{}, domain.InternalError{Msg: "failed to decode gateway response", Err: err}
	}
	return details, nil
}
