package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pulse-ims/api/schema"
	"pulse-ims/core/incidents"
	"pulse-ims/core/store"
	"pulse-ims/core/utils"
)

type IncidentsHandler struct {
	svc    *incidents.Service
	logger *utils.Logger
}

func NewIncidentsHandler(svc *incidents.Service, logger *utils.Logger) *IncidentsHandler {
	return &IncidentsHandler{svc: svc, logger: logger}
}

// Create registers a new incident. Every incident starts open regardless of
// what the client sends.
func (h *IncidentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, fields, err := schema.DecodeCreate(r.Body)
	if err != nil {
		writeValidationError(w, []schema.FieldError{{Field: "", Reason: "malformed JSON body"}})
		return
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}
	created, err := h.svc.Create(r.Context(), payload.Description, payload.Source)
	if err != nil {
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// List returns all incidents ordered by id, optionally narrowed by
// filter_status. An empty result set is reported as not found; this is the
// published contract for the endpoint.
func (h *IncidentsHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("filter_status")))
	if filter != "" && !store.ValidStatus(filter) {
		writeValidationError(w, []schema.FieldError{{Field: "filter_status", Reason: "must be one of: open, in_progress, resolved, closed"}})
		return
	}
	items, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeServerError(w)
		return
	}
	if len(items) == 0 {
		writeNotFound(w, "no incidents matched")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// UpdateStatus transitions one incident to the requested status. Any
// enumerated status is accepted regardless of the current one.
func (h *IncidentsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(pathParams(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeNotFound(w, "incident not found")
		return
	}
	payload, fields, derr := schema.DecodeUpdate(r.Body)
	if derr != nil {
		writeValidationError(w, []schema.FieldError{{Field: "", Reason: "malformed JSON body"}})
		return
	}
	if len(fields) > 0 {
		writeValidationError(w, fields)
		return
	}
	updated, err := h.svc.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeServerError(w)
		return
	}
	if updated == nil {
		writeNotFound(w, "incident not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
