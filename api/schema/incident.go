package schema

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrMalformed signals a body that could not be decoded at all, as opposed to
// one that decoded but failed validation.
var ErrMalformed = errors.New("malformed payload")

var valid = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type IncidentCreate struct {
	Description string `json:"description" validate:"required"`
	Source      string `json:"source" validate:"required,oneof=operator monitoring partner other"`
}

type IncidentUpdate struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved closed"`
}

// FieldError is one validation failure, addressed by json field name.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// DecodeCreate parses and validates a creation payload. Description and
// source are normalized before validation so "  Monitoring " passes.
func DecodeCreate(r io.Reader) (*IncidentCreate, []FieldError, error) {
	var payload IncidentCreate
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, nil, ErrMalformed
	}
	payload.Description = strings.TrimSpace(payload.Description)
	payload.Source = strings.ToLower(strings.TrimSpace(payload.Source))
	if fields := check(&payload); len(fields) > 0 {
		return nil, fields, nil
	}
	return &payload, nil, nil
}

// DecodeUpdate parses and validates a status-change payload.
func DecodeUpdate(r io.Reader) (*IncidentUpdate, []FieldError, error) {
	var payload IncidentUpdate
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, nil, ErrMalformed
	}
	payload.Status = strings.ToLower(strings.TrimSpace(payload.Status))
	if fields := check(&payload); len(fields) > 0 {
		return nil, fields, nil
	}
	return &payload, nil, nil
}

func check(v any) []FieldError {
	err := valid.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Reason: "invalid payload"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Reason: reason(fe)})
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "invalid value"
	}
}
