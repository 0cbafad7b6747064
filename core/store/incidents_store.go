package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pulse-ims/core/utils"
)

// ErrStorage marks any failure talking to the database. Callers see only this
// uniform signal; the underlying cause is logged at this layer.
var ErrStorage = errors.New("storage error")

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"

	SourceOperator   = "operator"
	SourceMonitoring = "monitoring"
	SourcePartner    = "partner"
	SourceOther      = "other"
)

var incidentStatuses = map[string]struct{}{
	StatusOpen:       {},
	StatusInProgress: {},
	StatusResolved:   {},
	StatusClosed:     {},
}

var incidentSources = map[string]struct{}{
	SourceOperator:   {},
	SourceMonitoring: {},
	SourcePartner:    {},
	SourceOther:      {},
}

func ValidStatus(s string) bool {
	_, ok := incidentStatuses[s]
	return ok
}

func ValidSource(s string) bool {
	_, ok := incidentSources[s]
	return ok
}

type Incident struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

type IncidentFilter struct {
	Status string
}

type IncidentsStore interface {
	CreateIncident(ctx context.Context, description, source string) (*Incident, error)
	GetIncident(ctx context.Context, id int64) (*Incident, error)
	ListIncidents(ctx context.Context, filter IncidentFilter) ([]Incident, error)
	UpdateIncidentStatus(ctx context.Context, id int64, status string) (*Incident, error)
}

type incidentsStore struct {
	db     *sql.DB
	logger *utils.Logger
}

func NewIncidentsStore(db *sql.DB, logger *utils.Logger) IncidentsStore {
	return &incidentsStore{db: db, logger: logger}
}

const selectIncident = `SELECT id, description, status, source, created_at FROM incidents`

// CreateIncident inserts a new record. Status always starts at open; id and
// created_at are assigned by the database and read back before commit.
func (s *incidentsStore) CreateIncident(ctx context.Context, description, source string) (*Incident, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.storageErr("create incident: begin", err)
	}
	var id int64
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO incidents(description, status, source)
		VALUES(?, ?, ?)
		RETURNING id`,
		description, StatusOpen, source).Scan(&id); err != nil {
		_ = tx.Rollback()
		return nil, s.storageErr("create incident: insert", err)
	}
	inc, err := scanIncident(tx.QueryRowContext(ctx, selectIncident+` WHERE id = ?`, id))
	if err != nil || inc == nil {
		_ = tx.Rollback()
		if err == nil {
			err = sql.ErrNoRows
		}
		return nil, s.storageErr("create incident: read back", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storageErr("create incident: commit", err)
	}
	return inc, nil
}

// GetIncident returns (nil, nil) when no row matches.
func (s *incidentsStore) GetIncident(ctx context.Context, id int64) (*Incident, error) {
	inc, err := scanIncident(s.db.QueryRowContext(ctx, selectIncident+` WHERE id = ?`, id))
	if err != nil {
		return nil, s.storageErr(fmt.Sprintf("get incident id=%d", id), err)
	}
	return inc, nil
}

// ListIncidents returns all rows ordered by id ascending, narrowed by the
// optional status filter. An empty result is not an error.
func (s *incidentsStore) ListIncidents(ctx context.Context, filter IncidentFilter) ([]Incident, error) {
	query := selectIncident
	var args []any
	if filter.Status != "" {
		query += ` WHERE status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY id ASC`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.storageErr("list incidents", err)
	}
	defer rows.Close()
	var out []Incident
	for rows.Next() {
		var inc Incident
		if err := rows.Scan(&inc.ID, &inc.Description, &inc.Status, &inc.Source, &inc.CreatedAt); err != nil {
			return nil, s.storageErr("list incidents: scan", err)
		}
		out = append(out, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, s.storageErr("list incidents: rows", err)
	}
	return out, nil
}

// UpdateIncidentStatus sets the status of one incident and returns the
// refreshed row. When the id matches nothing the transaction is rolled back
// and (nil, nil) is returned; the store never invents a row.
func (s *incidentsStore) UpdateIncidentStatus(ctx context.Context, id int64, status string) (*Incident, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.storageErr("update incident status: begin", err)
	}
	res, err := tx.ExecContext(ctx, `UPDATE incidents SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		_ = tx.Rollback()
		return nil, s.storageErr("update incident status: update", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return nil, s.storageErr("update incident status: affected", err)
	}
	if affected == 0 {
		_ = tx.Rollback()
		return nil, nil
	}
	inc, err := scanIncident(tx.QueryRowContext(ctx, selectIncident+` WHERE id = ?`, id))
	if err != nil || inc == nil {
		_ = tx.Rollback()
		if err == nil {
			err = sql.ErrNoRows
		}
		return nil, s.storageErr("update incident status: read back", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, s.storageErr("update incident status: commit", err)
	}
	return inc, nil
}

func scanIncident(row *sql.Row) (*Incident, error) {
	var inc Incident
	err := row.Scan(&inc.ID, &inc.Description, &inc.Status, &inc.Source, &inc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

func (s *incidentsStore) storageErr(op string, err error) error {
	s.logger.Errorf("incidents store: %s: %v", op, err)
	return fmt.Errorf("%s: %w", op, ErrStorage)
}
