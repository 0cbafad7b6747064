package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeCreate_NormalizesInput(t *testing.T) {
	payload, fields, err := DecodeCreate(strings.NewReader(`{"description":"  VPN outage  ","source":" MONITORING "}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fields) != 0 {
		t.Fatalf("expected no field errors, got %+v", fields)
	}
	if payload.Description != "VPN outage" {
		t.Fatalf("expected trimmed description, got %q", payload.Description)
	}
	if payload.Source != "monitoring" {
		t.Fatalf("expected lowercased source, got %q", payload.Source)
	}
}

func TestDecodeCreate_MissingFields(t *testing.T) {
	_, fields, err := DecodeCreate(strings.NewReader(`{"description":"   "}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := map[string]string{}
	for _, f := range fields {
		got[f.Field] = f.Reason
	}
	if got["description"] == "" {
		t.Fatalf("expected error for blank description, got %+v", fields)
	}
	if got["source"] == "" {
		t.Fatalf("expected error for missing source, got %+v", fields)
	}
}

func TestDecodeCreate_RejectsUnknownSource(t *testing.T) {
	_, fields, err := DecodeCreate(strings.NewReader(`{"description":"x","source":"satellite"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fields) != 1 || fields[0].Field != "source" {
		t.Fatalf("expected single source error, got %+v", fields)
	}
	if !strings.Contains(fields[0].Reason, "operator") {
		t.Fatalf("expected allowed values in reason, got %q", fields[0].Reason)
	}
}

func TestDecodeCreate_MalformedJSON(t *testing.T) {
	_, _, err := DecodeCreate(strings.NewReader(`{"description":`))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestDecodeUpdate_AcceptsEveryStatus(t *testing.T) {
	for _, status := range []string{"open", "in_progress", "resolved", "closed"} {
		payload, fields, err := DecodeUpdate(strings.NewReader(`{"status":"` + status + `"}`))
		if err != nil {
			t.Fatalf("decode %q: %v", status, err)
		}
		if len(fields) != 0 {
			t.Fatalf("expected %q to validate, got %+v", status, fields)
		}
		if payload.Status != status {
			t.Fatalf("expected %q, got %q", status, payload.Status)
		}
	}
}

func TestDecodeUpdate_RejectsUnknownStatus(t *testing.T) {
	_, fields, err := DecodeUpdate(strings.NewReader(`{"status":"escalated"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fields) != 1 || fields[0].Field != "status" {
		t.Fatalf("expected single status error, got %+v", fields)
	}
}
