package forms

import (
	"testing"

	"huduma-portal/internal/domain/models"
)

func defs(items ...models.FieldDefinition) []models.FieldDefinition {
	return items
}

func withInstitution(values FormValues) FormValues {
	if _, ok := values[InstitutionField]; !ok {
		values[InstitutionField] = "3"
	}
	return values
}

func fieldMessage(errs ValidationErrors, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func TestParseFieldTypeFallsBackToText(t *testing.T) {
	cases := map[string]FieldType{
		"email":    FieldEmail,
		"EMAIL":    FieldEmail,
		"Number":   FieldNumber,
		"date":     FieldDate,
		"textarea": FieldTextarea,
		"file":     FieldFile,
		"text":     FieldText,
		"dropdown": FieldText,
		"":         FieldText,
	}
	for in, want := range cases {
		if got := ParseFieldType(in); got != want {
			t.Fatalf("ParseFieldType(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestRequiredNumberField(t *testing.T) {
	schema := BuildSchema(defs(models.FieldDefinition{
		ID: 1, FieldName: "nida", FieldLabel: "NIDA Number", DataType: "number", IsRequired: true,
	}))

	cases := []struct {
		value string
		ok    bool
	}{
		{"123", true},
		{"12a", false},
		{"", false},
		{"12.3", false},
	}
	for _, tc := range cases {
		errs := schema.Validate(withInstitution(FormValues{"nida": tc.value}))
		got := fieldMessage(errs, "nida") == ""
		if got != tc.ok {
			t.Fatalf("number value %q: valid=%v, want %v (errs=%v)", tc.value, got, tc.ok, errs)
		}
	}
}

func TestRequiredEmailField(t *testing.T) {
	schema := BuildSchema(defs(models.FieldDefinition{
		ID: 2, FieldName: "applicantEmail", DataType: "email", IsRequired: true,
	}))

	errs := schema.Validate(withInstitution(FormValues{"applicantEmail": "a@b.com"}))
	if msg := fieldMessage(errs, "applicantEmail"); msg != "" {
		t.Fatalf("a@b.com should validate, got %q", msg)
	}

	errs = schema.Validate(withInstitution(FormValues{"applicantEmail": "a@b"}))
	if msg := fieldMessage(errs, "applicantEmail"); msg == "" {
		t.Fatalf("a@b should fail email validation")
	}
}

func TestOptionalFieldAcceptsEmpty(t *testing.T) {
	for _, dt := range []string{"text", "email", "number", "date", "textarea", "file", "unknown"} {
		schema := BuildSchema(defs(models.FieldDefinition{
			ID: 3, FieldName: "extra", DataType: dt, IsRequired: false,
		}))
		errs := schema.Validate(withInstitution(FormValues{"extra": ""}))
		if msg := fieldMessage(errs, "extra"); msg != "" {
			t.Fatalf("optional %s field should accept empty, got %q", dt, msg)
		}
	}
}

func TestRequiredMessageUsesLabelFallback(t *testing.T) {
	schema := BuildSchema(defs(
		models.FieldDefinition{ID: 1, FieldName: "fullName", FieldLabel: "Full Name", DataType: "text", IsRequired: true},
		models.FieldDefinition{ID: 2, FieldName: "ward", DataType: "text", IsRequired: true},
	))

	errs := schema.Validate(withInstitution(FormValues{}))
	if msg := fieldMessage(errs, "fullName"); msg != "Full Name must not be empty" {
		t.Fatalf("label not used in message: %q", msg)
	}
	if msg := fieldMessage(errs, "ward"); msg != "ward must not be empty" {
		t.Fatalf("fieldName fallback not used in message: %q", msg)
	}
}

func TestInstitutionAlwaysRequired(t *testing.T) {
	schema := BuildSchema(nil)

	errs := schema.Validate(FormValues{})
	if msg := fieldMessage(errs, InstitutionField); msg == "" {
		t.Fatalf("missing institutionId should fail validation")
	}

	errs = schema.Validate(FormValues{InstitutionField: "7"})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRequiredFileAndDateFields(t *testing.T) {
	schema := BuildSchema(defs(
		models.FieldDefinition{ID: 1, FieldName: "attachment", FieldLabel: "Attachment", DataType: "file", IsRequired: true},
		models.FieldDefinition{ID: 2, FieldName: "birthDate", FieldLabel: "Birth Date", DataType: "date", IsRequired: true},
	))

	errs := schema.Validate(withInstitution(FormValues{}))
	if fieldMessage(errs, "attachment") == "" || fieldMessage(errs, "birthDate") == "" {
		t.Fatalf("empty required file/date fields should fail, got %v", errs)
	}

	errs = schema.Validate(withInstitution(FormValues{
		"attachment": "c29tZSBmaWxl",
		"birthDate":  "2025-01-01",
	}))
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestFileFieldRejectsEmptyDataURLPayload(t *testing.T) {
	schema := BuildSchema(defs(models.FieldDefinition{
		ID: 1, FieldName: "attachment", FieldLabel: "Attachment", DataType: "file", IsRequired: true,
	}))

	errs := schema.Validate(withInstitution(FormValues{
		"attachment": "data:application/pdf;base64,",
	}))
	if fieldMessage(errs, "attachment") == "" {
		t.Fatalf("data URL with empty payload must fail the required check")
	}

	errs = schema.Validate(withInstitution(FormValues{
		"attachment": "data:application/pdf;base64,c29tZSBmaWxl",
	}))
	if msg := fieldMessage(errs, "attachment"); msg != "" {
		t.Fatalf("data URL with payload should validate, got %q", msg)
	}
}
