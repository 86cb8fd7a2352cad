package models

// ServiceEntryValue is one submitted value tied to its field definition.
// There is exactly one per definition of the service, blank or not.
type ServiceEntryValue struct {
	ValueText         string `json:"valueText"`
	EntryDefinitionID int64  `json:"entryDefinitionId"`
}

// BillRequest is the submission payload. RequestCode is always empty on
// submit; the server assigns the durable code.
type BillRequest struct {
	RequestCode       string              `json:"requestCode"`
	ServiceID         int64               `json:"serviceId"`
	InstituteID       int64               `json:"instituteId"`
	ServiceEntryValue []ServiceEntryValue `json:"serviceEntryValue"`
}

// BillResponse acknowledges a submission. RequestCode is the lookup key for
// all subsequent tracking.
type BillResponse struct {
	Data BillResponseData `json:"data"`
}

type BillResponseData struct {
	ID          int64  `json:"id"`
	RequestCode string `json:"requestCode"`
	ServiceID   int64  `json:"serviceId"`
	Response    string `json:"response,omitempty"`
}

// ControlNumberDetails is issued by the downstream billing gateway once a
// request has been priced. PaymentStatus is free text owned by the gateway.
type ControlNumberDetails struct {
	ControlNumber   string `json:"controlNumber"`
	PaymentStatus   string `json:"paymentStatus"`
	BillAmount      string `json:"billAmount"`
	BillEqvAmount   string `json:"billEqvAmount"`
	RequestedDate   string `json:"requestedDate"`
	PayerName       string `json:"payerName"`
	PayerPhone      string `json:"payerPhone"`
	BillDescription string `json:"billDescription"`
}

type ServiceEntryValueResponse struct {
	ValueText       string          `json:"valueText"`
	EntryDefinition FieldDefinition `json:"entryDefinition"`
}

// TrackingRecord is the read model served for a request code. A nil
// ControlNumberDetails means "not yet generated", which is a valid state and
// distinct from the code not existing at all.
type TrackingRecord struct {
	ID                   int64                       `json:"id"`
	RequestCode          string                      `json:"requestCode"`
	BillType             string                      `json:"billType"`
	ControlNumberDetails *ControlNumberDetails       `json:"controlNumberDetails"`
	ServiceItem          Service                     `json:"serviceItem"`
	ServiceEntryValues   []ServiceEntryValueResponse `json:"serviceEntryValueResponseDto"`
	SubmittedDate        string                      `json:"submittedDate,omitempty"`
}
