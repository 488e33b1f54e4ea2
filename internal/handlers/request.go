package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/assetledger/apiserver/types"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// fieldSet holds the raw members of a JSON object body.
type fieldSet map[string]json.RawMessage

func decodeFields(w http.ResponseWriter, r *http.Request) (fieldSet, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var fields fieldSet
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return nil, errInvalidBody
	}
	if fields == nil {
		return nil, errInvalidBody
	}
	return fields, nil
}

func (f fieldSet) raw(field string) (json.RawMessage, bool) {
	raw, ok := f[field]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

// requireString returns the trimmed string value of a required field.
func (f fieldSet) requireString(field string) (string, error) {
	raw, ok := f.raw(field)
	if !ok {
		return "", types.Required(field)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", types.NewValidationError(field, "%s must be a string", field)
	}
	return strings.TrimSpace(value), nil
}

// optionalString returns nil when the field is absent or null.
func (f fieldSet) optionalString(field string) (*string, error) {
	raw, ok := f.raw(field)
	if !ok {
		return nil, nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, types.NewValidationError(field, "%s must be a string", field)
	}
	value = strings.TrimSpace(value)
	return &value, nil
}

// requireInt accepts a JSON integer or a string holding one. Values must fit
// the 32-bit integer column.
func (f fieldSet) requireInt(field string) (int, error) {
	raw, ok := f.raw(field)
	if !ok {
		return 0, types.Required(field)
	}
	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, types.NewValidationError(field, "%s must be an integer", field)
	}
	value, err := strconv.ParseInt(number.String(), 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, types.NewValidationError(field, "%s is out of range", field)
		}
		return 0, types.NewValidationError(field, "%s must be an integer", field)
	}
	return int(value), nil
}

func parseUser(fields fieldSet) (types.User, error) {
	name, err := fields.requireString(types.FieldName)
	if err != nil {
		return types.User{}, err
	}
	email, err := fields.requireString(types.FieldEmail)
	if err != nil {
		return types.User{}, err
	}
	return types.User{Name: name, Email: email}, nil
}

func parseEquipment(fields fieldSet) (types.Equipment, error) {
	var item types.Equipment
	textFields := []struct {
		name string
		dst  *string
	}{
		{types.FieldIDNo, &item.IDNo},
		{types.FieldMakerModelType, &item.MakerModelType},
		{types.FieldCategory, &item.Category},
		{types.FieldCondition, &item.Condition},
		{types.FieldDeployment, &item.Deployment},
	}
	for _, tf := range textFields {
		value, err := fields.requireString(tf.name)
		if err != nil {
			return types.Equipment{}, err
		}
		*tf.dst = value
	}

	quantity, err := fields.requireInt(types.FieldQuantity)
	if err != nil {
		return types.Equipment{}, err
	}
	item.Quantity = quantity

	if item.Location, err = fields.requireString(types.FieldLocation); err != nil {
		return types.Equipment{}, err
	}
	if item.DateReceived, err = fields.requireString(types.FieldDateReceived); err != nil {
		return types.Equipment{}, err
	}
	if item.Description, err = fields.optionalString(types.FieldDescription); err != nil {
		return types.Equipment{}, err
	}
	return item, nil
}
