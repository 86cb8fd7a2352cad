package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"huduma-portal/internal/billing"
	"huduma-portal/internal/domain"
	"huduma-portal/internal/domain/models"
	"huduma-portal/internal/forms"
	"huduma-portal/internal/repositories"
	"huduma-portal/internal/utils"
)

// MinTrackingCodeLength guards the lookup form; anything shorter is rejected
// before touching storage.
const MinTrackingCodeLength = 3

// ApplicationService runs the service-application lifecycle: validate a
// dynamic-form submission, persist it under a fresh request code, and keep
// its control-number/payment view current against the billing gateway.
type ApplicationService struct {
	Services     repositories.ServiceRepository
	Institutions repositories.InstitutionRepository
	Bills        repositories.BillRequestRepository
	Gateway      billing.ControlNumberIssuer
	RequestID    string
}

// SubmitForm validates raw form values against the service's field
// definitions, transforms them into a bill request and persists it.
// Validation failures abort before anything is written or sent out.
func (s ApplicationService) SubmitForm(ctx context.Context, serviceID int64, values forms.FormValues) (models.BillResponse, error) {
	svc, err := s.Services.GetByID(serviceID)
	if err != nil {
		return models.BillResponse{}, err
	}
	if !svc.IsActive {
		return models.BillResponse{}, domain.ValidationError{Field: "serviceId", Msg: "service is not accepting applications"}
	}

	defs, err := s.Services.ListFieldDefinitions(serviceID)
	if err != nil {
		return models.BillResponse{}, err
	}

	schema := forms.BuildSchema(defs)
	if errs := schema.Validate(values); len(errs) > 0 {
		return models.BillResponse{}, errs
	}

	bill := forms.BuildBillRequest(serviceID, values, defs)
	return s.submit(ctx, svc, bill)
}

// SubmitBill accepts an already-shaped bill request (the wire contract) and
// re-validates its values against the stored definitions before persisting.
func (s ApplicationService) SubmitBill(ctx context.Context, bill models.BillRequest) (models.BillResponse, error) {
	svc, err := s.Services.GetByID(bill.ServiceID)
	if err != nil {
		return models.BillResponse{}, err
	}
	if !svc.IsActive {
		return models.BillResponse{}, domain.ValidationError{Field: "serviceId", Msg: "service is not accepting applications"}
	}

	defs, err := s.Services.ListFieldDefinitions(bill.ServiceID)
	if err != nil {
		return models.BillResponse{}, err
	}

	// rebuild form values so the schema sees the same shape either way
	byDefinition := make(map[int64]string, len(bill.ServiceEntryValue))
	for _, entry := range bill.ServiceEntryValue {
		byDefinition[entry.EntryDefinitionID] = entry.ValueText
	}
	values := forms.FormValues{}
	if bill.InstituteID > 0 {
		values[forms.InstitutionField] = strconv.FormatInt(bill.InstituteID, 10)
	}
	for _, def := range defs {
		values[def.FieldName] = byDefinition[def.ID]
	}

	schema := forms.BuildSchema(defs)
	if errs := schema.Validate(values); len(errs) > 0 {
		return models.BillResponse{}, errs
	}

	// re-transform to enforce one entry per definition in definition order
	normalized := forms.BuildBillRequest(bill.ServiceID, values, defs)
	return s.submit(ctx, svc, normalized)
}

func (s ApplicationService) submit(ctx context.Context, svc models.Service, bill models.BillRequest) (models.BillResponse, error) {
	ok, err := s.Institutions.Exists(bill.InstituteID)
	if err != nil {
		return models.BillResponse{}, err
	}
	if !ok {
		return models.BillResponse{}, domain.ValidationError{Field: forms.InstitutionField, Msg: "unknown institution"}
	}

	// a duplicate request code means a rare uuid-slice collision; mint a
	// fresh one and try again instead of surfacing the conflict
	var code string
	var id int64
	for attempt := 0; ; attempt++ {
		code = utils.NewRequestCode()
		id, err = s.Bills.Insert(bill, code)
		if err == nil {
			break
		}
		if domain.IsConflict(err) && attempt < 2 {
			utils.LogEvent(s.RequestID, "applications", "code_collision",
				fmt.Sprintf("request_code=%s", code))
			continue
		}
		return models.BillResponse{}, err
	}
	utils.LogEvent(s.RequestID, "applications", "submit",
		fmt.Sprintf("request_code=%s service_id=%d", code, svc.ID))

	response := "Application received. Track progress with your request code."
	if svc.BillType == models.BillTypeFixed {
		details, gwErr := s.Gateway.RequestControlNumber(ctx, billing.PricingRequest{
			RequestCode: code,
			ServiceCode: svc.ServiceCode,
			ServiceName: svc.ServiceName,
			InstituteID: bill.InstituteID,
			Description: svc.Description,
		})
		if gwErr != nil {
			// pricing stays pending; the tracking view retries later
			utils.LogEvent(s.RequestID, "applications", "pricing_deferred",
				fmt.Sprintf("request_code=%s err=%v", code, gwErr))
		} else if saveErr := s.Bills.SaveControlNumber(id, details); saveErr != nil {
			utils.LogEvent(s.RequestID, "applications", "control_number_save_failed",
				fmt.Sprintf("request_code=%s err=%v", code, saveErr))
		} else {
			response = "Application received. A control number has been generated for payment."
		}
	}

	return models.BillResponse{Data: models.BillResponseData{
		ID:          id,
		RequestCode: code,
		ServiceID:   svc.ID,
		Response:    response,
	}}, nil
}

// Track loads the tracking record for a request code. For FIXED bills whose
// control number is still missing it retries pricing once, and refreshes a
// non-settled payment status from the gateway; both are best-effort reads
// and a gateway failure leaves the stored view untouched.
func (s ApplicationService) Track(ctx context.Context, requestCode string) (models.TrackingRecord, error) {
	code := strings.TrimSpace(requestCode)
	if len(code) < MinTrackingCodeLength {
		return models.TrackingRecord{}, domain.ValidationError{
			Field: "requestCode",
			Msg:   fmt.Sprintf("tracking number must be at least %d characters", MinTrackingCodeLength),
		}
	}

	rec, err := s.Bills.GetTracking(code)
	if err != nil {
		return models.TrackingRecord{}, err
	}

	if rec.BillType != models.BillTypeFixed {
		return rec, nil
	}

	if rec.ControlNumberDetails == nil {
		details, gwErr := s.Gateway.RequestControlNumber(ctx, billing.PricingRequest{
			RequestCode: code,
			ServiceCode: rec.ServiceItem.ServiceCode,
			ServiceName: rec.ServiceItem.ServiceName,
		})
		if gwErr != nil {
			utils.LogEvent(s.RequestID, "tracking", "still_pending",
				fmt.Sprintf("request_code=%s err=%v", code, gwErr))
			return rec, nil
		}
		if err := s.Bills.SaveControlNumber(rec.ID, details); err != nil {
			return rec, nil
		}
		rec.ControlNumberDetails = &details
		return rec, nil
	}

	state := billing.ClassifyPaymentStatus(rec.ControlNumberDetails.PaymentStatus)
	if state == billing.PaymentPending || state == billing.PaymentNeutral {
		fresh, gwErr := s.Gateway.FetchStatus(ctx, rec.ControlNumberDetails.ControlNumber)
		if gwErr == nil && fresh.PaymentStatus != "" && fresh.PaymentStatus != rec.ControlNumberDetails.PaymentStatus {
			if err := s.Bills.SaveControlNumber(rec.ID, fresh); err == nil {
				rec.ControlNumberDetails = &fresh
			}
		}
	}
	return rec, nil
}

// ApplyGatewayCallback records a payment-status report pushed by the
// gateway. Idempotent per control number.
func (s ApplicationService) ApplyGatewayCallback(controlNumber, paymentStatus string) error {
	controlNumber = strings.TrimSpace(controlNumber)
	if controlNumber == "" {
		return domain.ValidationError{Field: "controlNumber", Msg: "must not be empty"}
	}
	if strings.TrimSpace(paymentStatus) == "" {
		return domain.ValidationError{Field: "paymentStatus", Msg: "must not be empty"}
	}
	if err := s.Bills.UpdatePaymentStatus(controlNumber, paymentStatus); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "billing", "callback",
		fmt.Sprintf("control_number=%s status=%s", controlNumber, paymentStatus))
	return nil
}
