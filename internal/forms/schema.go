package forms

import (
	"fmt"
	"regexp"
	"strings"

	"huduma-portal/internal/domain/models"

	"github.com/go-playground/validator/v10"
)

// InstitutionField is the fixed key every submission must carry alongside
// the service's own dynamic fields.
const InstitutionField = "institutionId"

// FormValues maps fieldName to its submitted string value. File fields hold
// the bare base64 payload (see FilePayload).
type FormValues map[string]string

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects per-field failures; nil/empty means valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

var (
	validate = validator.New()
	digitsRe = regexp.MustCompile(`^\d+$`)
)

type fieldRule struct {
	name     string
	label    string
	typ      FieldType
	required bool
}

// Schema is a compiled validation ruleset for one service's field set.
// Building it never fails; failures surface per field at validation time.
type Schema struct {
	rules []fieldRule
}

// BuildSchema derives one rule per field definition, in definition order.
func BuildSchema(defs []models.FieldDefinition) Schema {
	rules := make([]fieldRule, 0, len(defs))
	for _, def := range defs {
		rules = append(rules, fieldRule{
			name:     def.FieldName,
			label:    def.Label(),
			typ:      ParseFieldType(def.DataType),
			required: def.IsRequired,
		})
	}
	return Schema{rules: rules}
}

// Validate checks values against the schema plus the fixed institution rule.
// Returns nil when everything passes.
func (s Schema) Validate(values FormValues) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(values[InstitutionField]) == "" {
		errs = append(errs, FieldError{
			Field:   InstitutionField,
			Message: "Institution must not be empty",
		})
	}

	for _, rule := range s.rules {
		if msg := rule.check(values[rule.name]); msg != "" {
			errs = append(errs, FieldError{Field: rule.name, Message: msg})
		}
	}
	return errs
}

func (r fieldRule) check(value string) string {
	if value == "" {
		if r.required {
			return fmt.Sprintf("%s must not be empty", r.label)
		}
		return ""
	}

	switch r.typ {
	case FieldEmail:
		if err := validate.Var(value, "email"); err != nil {
			return fmt.Sprintf("%s must be a valid email address", r.label)
		}
	case FieldNumber:
		if !digitsRe.MatchString(value) {
			return fmt.Sprintf("%s must contain digits only", r.label)
		}
	case FieldFile:
		// a data URL with nothing after the comma is an empty file
		if FilePayload(value) == "" {
			return fmt.Sprintf("%s must not be empty", r.label)
		}
	case FieldDate, FieldTextarea, FieldText:
		// non-empty is all these require
	}
	return ""
}
