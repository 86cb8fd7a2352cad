package forms

import "strings"

// FieldType is the tagged union of input kinds a service form can carry.
// Each value knows how to validate its own string value; the mapping from
// server-side dataType strings is done once in ParseFieldType instead of
// string comparisons sprinkled through handlers.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEmail
	FieldNumber
	FieldDate
	FieldTextarea
	FieldFile
)

// ParseFieldType maps a backend dataType string (case-insensitive) onto a
// FieldType. Unrecognized values fall back to plain text.
func ParseFieldType(dataType string) FieldType {
	switch strings.ToLower(strings.TrimSpace(dataType)) {
	case "email":
		return FieldEmail
	case "number":
		return FieldNumber
	case "date":
		return FieldDate
	case "textarea":
		return FieldTextarea
	case "file":
		return FieldFile
	default:
		return FieldText
	}
}

func (t FieldType) String() string {
	switch t {
	case FieldEmail:
		return "email"
	case FieldNumber:
		return "number"
	case FieldDate:
		return "date"
	case FieldTextarea:
		return "textarea"
	case FieldFile:
		return "file"
	default:
		return "text"
	}
}
