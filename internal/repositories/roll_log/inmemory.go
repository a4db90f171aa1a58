package rolllog

import (
	"context"
	"sync"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
)

// InMemoryConfig configures the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
	// MaxEntries caps history per chronicle; 0 uses DefaultMaxEntries
	MaxEntries int
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	errors.ValidateNonNegative("max_entries", c.MaxEntries, vb)
	return vb.Build()
}

// InMemoryRepository keeps history in process, newest first
type InMemoryRepository struct {
	mu         sync.RWMutex
	clock      clock.Clock
	maxEntries int
	entries    map[string][]*Entry
}

// NewInMemoryRepository creates a new in-memory roll log
func NewInMemoryRepository(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = DefaultMaxEntries
	}

	return &InMemoryRepository{
		clock:      cfg.Clock,
		maxEntries: maxEntries,
		entries:    make(map[string][]*Entry),
	}, nil
}

var _ Repository = (*InMemoryRepository)(nil)

// Append records a roll
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	entry := *input.Entry
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.clock.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := append([]*Entry{&entry}, r.entries[entry.ChronicleID]...)
	if len(list) > r.maxEntries {
		list = list[:r.maxEntries]
	}
	r.entries[entry.ChronicleID] = list

	out := entry
	return &AppendOutput{Entry: &out}, nil
}

// List returns recent rolls for a chronicle, newest first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.ChronicleID == "" {
		return nil, errors.InvalidArgument("chronicle ID is required")
	}
	limit := listLimit(input.Limit)

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Entry, 0, limit)
	for _, e := range r.entries[input.ChronicleID] {
		if len(entries) == limit {
			break
		}
		if visible(e, input.IncludeSecret) {
			cp := *e
			entries = append(entries, &cp)
		}
	}

	return &ListOutput{Entries: entries}, nil
}
