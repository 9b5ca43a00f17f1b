package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// quoteDB is the slice of pgxpool the repository needs; pgxmock satisfies it.
type quoteDB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository stores quote requests in the relational database.
type PostgresRepository struct {
	db quoteDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("intake: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db quoteDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert inserts a new row and returns the stored record with its
// assigned id and created_at.
func (r *PostgresRepository) Insert(ctx context.Context, q *QuoteRequest) (*QuoteRequest, error) {
	id := uuid.New()
	query := `
		INSERT INTO quote_requests (id, name, email, phone, event_date, event_type, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		q.Name,
		q.Email,
		q.Phone,
		q.EventDate,
		q.EventType,
		q.Message,
		q.Status,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("intake: insert failed: %w", err)
	}

	stored := *q
	stored.ID = id.String()
	stored.CreatedAt = createdAt
	return &stored, nil
}

// GetByID fetches a single quote request.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*QuoteRequest, error) {
	query := `
		SELECT id, name, email, phone, event_date, event_type, message, status, created_at
		FROM quote_requests
		WHERE id = $1
	`
	q, err := scanQuote(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("intake: select failed: %w", err)
	}
	return q, nil
}

// List returns all quote requests, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]QuoteRequest, error) {
	query := `
		SELECT id, name, email, phone, event_date, event_type, message, status, created_at
		FROM quote_requests
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("intake: list failed: %w", err)
	}
	defer rows.Close()

	out := []QuoteRequest{}
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("intake: scan failed: %w", err)
		}
		out = append(out, *q)
	}
	return out, rows.Err()
}

func scanQuote(row pgx.Row) (*QuoteRequest, error) {
	var q QuoteRequest
	var eventDate time.Time
	if err := row.Scan(
		&q.ID,
		&q.Name,
		&q.Email,
		&q.Phone,
		&eventDate,
		&q.EventType,
		&q.Message,
		&q.Status,
		&q.CreatedAt,
	); err != nil {
		return nil, err
	}
	q.EventDate = eventDate.Format(eventDateLayout)
	return &q, nil
}
