package incidents

import (
	"context"
	"errors"
	"testing"

	"pulse-ims/core/store"
)

type stubStore struct {
	lastDescription string
	lastSource      string
	lastID          int64
	lastStatus      string
	lastFilter      store.IncidentFilter
	incident        *store.Incident
	list            []store.Incident
	err             error
}

func (s *stubStore) CreateIncident(_ context.Context, description, source string) (*store.Incident, error) {
	s.lastDescription, s.lastSource = description, source
	return s.incident, s.err
}

func (s *stubStore) GetIncident(_ context.Context, id int64) (*store.Incident, error) {
	s.lastID = id
	return s.incident, s.err
}

func (s *stubStore) ListIncidents(_ context.Context, filter store.IncidentFilter) ([]store.Incident, error) {
	s.lastFilter = filter
	return s.list, s.err
}

func (s *stubStore) UpdateIncidentStatus(_ context.Context, id int64, status string) (*store.Incident, error) {
	s.lastID, s.lastStatus = id, status
	return s.incident, s.err
}

func TestService_DelegatesUnchanged(t *testing.T) {
	want := &store.Incident{ID: 7, Description: "d", Status: store.StatusOpen, Source: store.SourceOperator}
	st := &stubStore{incident: want, list: []store.Incident{*want}}
	svc := NewService(st, nil)

	got, err := svc.Create(context.Background(), "d", "operator")
	if err != nil || got != want {
		t.Fatalf("create: got %+v, %v", got, err)
	}
	if st.lastDescription != "d" || st.lastSource != "operator" {
		t.Fatalf("create args not passed through: %q %q", st.lastDescription, st.lastSource)
	}

	items, err := svc.List(context.Background(), "resolved")
	if err != nil || len(items) != 1 {
		t.Fatalf("list: got %+v, %v", items, err)
	}
	if st.lastFilter.Status != "resolved" {
		t.Fatalf("filter not passed through: %+v", st.lastFilter)
	}

	got, err = svc.UpdateStatus(context.Background(), 7, store.StatusClosed)
	if err != nil || got != want {
		t.Fatalf("update: got %+v, %v", got, err)
	}
	if st.lastID != 7 || st.lastStatus != store.StatusClosed {
		t.Fatalf("update args not passed through: %d %q", st.lastID, st.lastStatus)
	}
}

func TestService_PropagatesStoreError(t *testing.T) {
	st := &stubStore{err: store.ErrStorage}
	svc := NewService(st, nil)

	if _, err := svc.Create(context.Background(), "d", "other"); !errors.Is(err, store.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if _, err := svc.List(context.Background(), ""); !errors.Is(err, store.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), 1, store.StatusOpen); !errors.Is(err, store.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
