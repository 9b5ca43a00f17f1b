package submissions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OverrideStore keeps operator status decisions in Redis, keyed by
// submission id. It exists because one backing source (Netlify forms)
// cannot hold a canonical status itself; the override always wins over
// the provider-native state. Writes are last-write-wins.
type OverrideStore struct {
	redis *redis.Client
}

// NewOverrideStore creates a new status override store.
func NewOverrideStore(redisClient *redis.Client) *OverrideStore {
	return &OverrideStore{redis: redisClient}
}

type statusOverride struct {
	Status    Status    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *OverrideStore) key(id string) string {
	return fmt.Sprintf("submission:status:%s", id)
}

// Get retrieves the override for a submission. The second return value is
// false when no override exists or the stored value is not canonical.
func (s *OverrideStore) Get(ctx context.Context, id string) (Status, bool, error) {
	data, err := s.redis.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("submissions: get override: %w", err)
	}

	var ov statusOverride
	if err := json.Unmarshal(data, &ov); err != nil {
		return "", false, fmt.Errorf("submissions: unmarshal override: %w", err)
	}
	if !ov.Status.Valid() {
		return "", false, nil
	}
	return ov.Status, true, nil
}

// Set writes the override for a submission. Non-canonical statuses are
// rejected before anything is written.
func (s *OverrideStore) Set(ctx context.Context, id string, status Status, updatedAt time.Time) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	data, err := json.Marshal(statusOverride{Status: status, UpdatedAt: updatedAt})
	if err != nil {
		return fmt.Errorf("submissions: marshal override: %w", err)
	}
	if err := s.redis.Set(ctx, s.key(id), data, 0).Err(); err != nil {
		return fmt.Errorf("submissions: set override: %w", err)
	}
	return nil
}
