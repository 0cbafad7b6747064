package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pulse-ims/api/handlers"
	"pulse-ims/config"
	"pulse-ims/core/incidents"
	"pulse-ims/core/store"
	"pulse-ims/core/utils"
)

// ServerDeps carries the constructed stores and services into the server, so
// tests can substitute any of them.
type ServerDeps struct {
	IncidentsStore store.IncidentsStore
	IncidentsSvc   *incidents.Service
}

type Server struct {
	cfg       *config.AppConfig
	logger    *utils.Logger
	incidents *handlers.IncidentsHandler
}

func NewServer(cfg *config.AppConfig, deps ServerDeps, logger *utils.Logger) *Server {
	return &Server{
		cfg:       cfg,
		logger:    logger,
		incidents: handlers.NewIncidentsHandler(deps.IncidentsSvc, logger),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverMiddleware)
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.jsonMiddleware)

	r.MethodFunc(http.MethodGet, "/", s.handleRoot)

	// Both slash forms are served; clients and probes use either.
	r.MethodFunc(http.MethodPost, "/incidents", s.incidents.Create)
	r.MethodFunc(http.MethodPost, "/incidents/", s.incidents.Create)
	r.MethodFunc(http.MethodGet, "/incidents", s.incidents.List)
	r.MethodFunc(http.MethodGet, "/incidents/", s.incidents.List)
	r.MethodFunc(http.MethodPatch, "/incidents/{id}", s.incidents.UpdateStatus)

	return r
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Incident Management API"})
}
