package types

import (
	"bytes"
	"encoding/json"
)

const (
	maxIDNoLen           = 120
	maxMakerModelTypeLen = 255
	maxCategoryLen       = 120
	maxConditionLen      = 120
	maxDeploymentLen     = 120
	maxLocationLen       = 255
	maxDateReceivedLen   = 50
)

// Equipment represents a single inventory entry.
// IDNo is unique across all equipment.
type Equipment struct {
	// ID is the store-assigned identifier of the record.
	ID int `db:"id"`

	// IDNo is the unique inventory number printed on the item.
	IDNo string `db:"id_no"`

	// MakerModelType describes manufacturer, model and type in free text.
	MakerModelType string `db:"maker_model_type"`

	Category   string `db:"category"`
	Condition  string `db:"condition"`
	Deployment string `db:"deployment"`
	Quantity   int    `db:"quantity"`
	Location   string `db:"location"`

	// DateReceived is kept as entered; it is not parsed as a calendar date.
	DateReceived string `db:"date_received"`

	// Description is optional and nil when absent.
	Description *string `db:"description"`
}

// Validate checks the mutable fields of the equipment record.
func (e Equipment) Validate() error {
	checks := []struct {
		field  string
		value  string
		maxLen int
	}{
		{FieldIDNo, e.IDNo, maxIDNoLen},
		{FieldMakerModelType, e.MakerModelType, maxMakerModelTypeLen},
		{FieldCategory, e.Category, maxCategoryLen},
		{FieldCondition, e.Condition, maxConditionLen},
		{FieldDeployment, e.Deployment, maxDeploymentLen},
		{FieldLocation, e.Location, maxLocationLen},
		{FieldDateReceived, e.DateReceived, maxDateReceivedLen},
	}
	for _, c := range checks {
		if err := requireText(c.field, c.value, c.maxLen); err != nil {
			return err
		}
	}
	return nil
}

// Presentation labels used when equipment is written to clients.
// The order of equipmentLabels is the order of keys in the output.
const (
	LabelID             = "id"
	LabelIDNo           = "ID No."
	LabelMakerModelType = "Maker,Model & Type"
	LabelCategory       = "Category"
	LabelCondition      = "Condition"
	LabelDeployment     = "Deployment"
	LabelQuantity       = "Quantity"
	LabelLocation       = "Location"
	LabelDateReceived   = "Date Received"
	LabelDescription    = "Description"
)

// MarshalJSON writes the record with its presentation labels in a fixed order.
// A comma in one of the labels rules out struct tags here.
func (e Equipment) MarshalJSON() ([]byte, error) {
	fields := []struct {
		key   string
		value any
	}{
		{LabelID, e.ID},
		{LabelIDNo, e.IDNo},
		{LabelMakerModelType, e.MakerModelType},
		{LabelCategory, e.Category},
		{LabelCondition, e.Condition},
		{LabelDeployment, e.Deployment},
		{LabelQuantity, e.Quantity},
		{LabelLocation, e.Location},
		{LabelDateReceived, e.DateReceived},
		{LabelDescription, e.Description},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(f.key); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(f.value); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trimNewline drops the newline json.Encoder appends after each value.
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
