package forms

import (
	"strconv"

	"huduma-portal/internal/domain/models"
)

// BuildBillRequest shapes validated form values into the submission payload.
// One ServiceEntryValue per definition, in definition order, blank or not.
// File values are reduced to their bare base64 payload. RequestCode stays
// empty; the server assigns the real code. A malformed institutionId parses
// to 0 and is rejected downstream.
func BuildBillRequest(serviceID int64, values FormValues, defs []models.FieldDefinition) models.BillRequest {
	entries := make([]models.ServiceEntryValue, 0, len(defs))
	for _, def := range defs {
		value := values[def.FieldName]
		if ParseFieldType(def.DataType) == FieldFile {
			value = FilePayload(value)
		}
		entries = append(entries, models.ServiceEntryValue{
			ValueText:         value,
			EntryDefinitionID: def.ID,
		})
	}

	instituteID, err := strconv.ParseInt(values[InstitutionField], 10, 64)
	if err != nil {
		instituteID = 0
	}

	return models.BillRequest{
		RequestCode:       "",
		ServiceID:         serviceID,
		InstituteID:       instituteID,
		ServiceEntryValue: entries,
	}
}
