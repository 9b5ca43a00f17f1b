package submissions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Source is the capability interface over whichever store holds the
// submissions. Two variants exist: the relational store with a native
// status column, and the Netlify forms API whose provider states are
// mapped to canonical statuses.
type Source interface {
	// List returns every submission with its status already normalized
	// from the provider-native state (overrides are applied by the Service).
	List(ctx context.Context) ([]Submission, error)
	// UpdateStatus pushes a canonical status into the source's own
	// representation.
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// ErrSubmissionNotFound is returned when a status update targets an unknown id
var ErrSubmissionNotFound = errors.New("submission not found")

// sourceDB is the slice of pgxpool the Postgres source needs; pgxmock
// satisfies it.
type sourceDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSource reads submissions from the quote_requests table.
type PostgresSource struct {
	db  sourceDB
	now func() time.Time
}

// NewPostgresSource initializes a source backed by pgxpool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	if pool == nil {
		panic("submissions: pgx pool required")
	}
	return &PostgresSource{db: pool, now: time.Now}
}

// NewPostgresSourceWithDB allows injecting a mock database for testing.
func NewPostgresSourceWithDB(db sourceDB) *PostgresSource {
	return &PostgresSource{db: db, now: time.Now}
}

// List returns all submissions, newest first.
func (s *PostgresSource) List(ctx context.Context) ([]Submission, error) {
	query := `
		SELECT id, name, email, phone, event_date, event_type, message, status, created_at, updated_at
		FROM quote_requests
		ORDER BY created_at DESC
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("submissions: list failed: %w", err)
	}
	defer rows.Close()

	out := []Submission{}
	for rows.Next() {
		var sub Submission
		var eventDate time.Time
		var message *string
		var rawStatus string
		if err := rows.Scan(
			&sub.ID,
			&sub.Name,
			&sub.Email,
			&sub.Phone,
			&eventDate,
			&sub.EventType,
			&message,
			&rawStatus,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("submissions: scan failed: %w", err)
		}
		sub.EventDate = eventDate.Format("2006-01-02")
		if message != nil {
			sub.Message = *message
		}
		sub.Status = NormalizeStatus(rawStatus, nil)
		out = append(out, sub)
	}
	return out, rows.Err()
}

// UpdateStatus writes the canonical status into the native status column.
func (s *PostgresSource) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE quote_requests SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, s.now().UTC())
	if err != nil {
		return fmt.Errorf("submissions: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSubmissionNotFound
	}
	return nil
}
