package intake

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines the interface for quote request storage
type Repository interface {
	Insert(ctx context.Context, q *QuoteRequest) (*QuoteRequest, error)
	GetByID(ctx context.Context, id string) (*QuoteRequest, error)
	List(ctx context.Context) ([]QuoteRequest, error)
}

// InMemoryRepository is a Repository backed by a map, used in tests and
// deployments without a database.
type InMemoryRepository struct {
	mu     sync.RWMutex
	quotes map[string]*QuoteRequest
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		quotes: make(map[string]*QuoteRequest),
	}
}

// Insert stores a validated quote request and assigns id/created_at.
func (r *InMemoryRepository) Insert(ctx context.Context, q *QuoteRequest) (*QuoteRequest, error) {
	stored := *q
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.quotes[stored.ID] = &stored
	r.mu.Unlock()

	return &stored, nil
}

// GetByID retrieves a quote request by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.quotes[id]
	if !ok {
		return nil, ErrQuoteNotFound
	}
	return q, nil
}

// List returns all stored quote requests.
func (r *InMemoryRepository) List(ctx context.Context) ([]QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]QuoteRequest, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, *q)
	}
	return out, nil
}
