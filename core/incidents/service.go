package incidents

import (
	"context"

	"pulse-ims/core/store"
	"pulse-ims/core/utils"
)

// Service is the seam between the HTTP layer and the incidents store. It
// carries no business rules of its own; status transitions are deliberately
// unrestricted, so every call delegates straight to the store.
type Service struct {
	store  store.IncidentsStore
	logger *utils.Logger
}

func NewService(st store.IncidentsStore, logger *utils.Logger) *Service {
	return &Service{store: st, logger: logger}
}

func (s *Service) Create(ctx context.Context, description, source string) (*store.Incident, error) {
	return s.store.CreateIncident(ctx, description, source)
}

func (s *Service) Get(ctx context.Context, id int64) (*store.Incident, error) {
	return s.store.GetIncident(ctx, id)
}

func (s *Service) List(ctx context.Context, statusFilter string) ([]store.Incident, error) {
	return s.store.ListIncidents(ctx, store.IncidentFilter{Status: statusFilter})
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*store.Incident, error) {
	return s.store.UpdateIncidentStatus(ctx, id, status)
}
