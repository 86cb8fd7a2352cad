package models

// BillType decides whether the control-number/payment workflow applies to a
// service at all. Only FIXED bills are priced by the gateway up front.
const (
	BillTypeFixed = "FIXED"
)

type ServiceGroup struct {
	ID        int64  `json:"id"`
	GroupName string `json:"groupName"`
}

type Service struct {
	ID          int64        `json:"id"`
	ServiceCode string       `json:"serviceCode"`
	ServiceName string       `json:"serviceName"`
	Description string       `json:"description,omitempty"`
	BillType    string       `json:"billType"`
	IsActive    bool         `json:"isActive"`
	Group       ServiceGroup `json:"serviceGroup"`
}

// FieldDefinition describes one dynamic form input for a service. The set is
// configured in the back office and read-only on the public side.
type FieldDefinition struct {
	ID         int64  `json:"id"`
	FieldName  string `json:"fieldName"`
	FieldLabel string `json:"fieldLabel"`
	DataType   string `json:"dataType"`
	IsRequired bool   `json:"isRequired"`
}

// Label falls back to the field name when no label was configured.
func (d FieldDefinition) Label() string {
	if d.FieldLabel != "" {
		return d.FieldLabel
	}
	return d.FieldName
}

type Institution struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
