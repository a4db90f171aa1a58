package rolllog

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
)

// rollRow is the roll_log table
type rollRow struct {
	ID          string    `gorm:"primaryKey;size:64"`
	ChronicleID string    `gorm:"index:idx_roll_log_chronicle_created,priority:1;size:64;not null"`
	SessionID   string    `gorm:"size:64"`
	CharacterID string    `gorm:"size:64"`
	System      string    `gorm:"size:8;not null"`
	Kind        string    `gorm:"size:32;not null"`
	Description string    `gorm:"size:500"`
	Secret      bool      `gorm:"not null;default:false"`
	Result      string    `gorm:"size:32"`
	Successes   int       `gorm:"not null;default:0"`
	Detail      []byte    `gorm:"type:blob"`
	CreatedAt   time.Time `gorm:"index:idx_roll_log_chronicle_created,priority:2;not null"`
}

func (rollRow) TableName() string { return "roll_log" }

func toRow(e *Entry) *rollRow {
	return &rollRow{
		ID:          e.ID,
		ChronicleID: e.ChronicleID,
		SessionID:   e.SessionID,
		CharacterID: e.CharacterID,
		System:      e.System,
		Kind:        e.Kind,
		Description: e.Description,
		Secret:      e.Secret,
		Result:      e.Result,
		Successes:   e.Successes,
		Detail:      e.Detail,
		CreatedAt:   e.CreatedAt,
	}
}

func (r *rollRow) toEntry() *Entry {
	return &Entry{
		ID:          r.ID,
		ChronicleID: r.ChronicleID,
		SessionID:   r.SessionID,
		CharacterID: r.CharacterID,
		System:      r.System,
		Kind:        r.Kind,
		Description: r.Description,
		Secret:      r.Secret,
		Result:      r.Result,
		Successes:   r.Successes,
		Detail:      json.RawMessage(r.Detail),
		CreatedAt:   r.CreatedAt,
	}
}

// SQLConfig holds the configuration for the SQL repository
type SQLConfig struct {
	DB    *gorm.DB
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *SQLConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DB == nil {
		vb.RequiredField("db")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type sqlRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewSQLRepository creates a roll log on a gorm database and migrates its
// table
func NewSQLRepository(cfg *SQLConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := cfg.DB.AutoMigrate(&rollRow{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate roll_log")
	}

	return &sqlRepository{db: cfg.DB, clock: cfg.Clock}, nil
}

var _ Repository = (*sqlRepository)(nil)

func (r *sqlRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateAppend(input); err != nil {
		return nil, err
	}

	entry := *input.Entry
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.clock.Now()
	}

	if err := r.db.WithContext(ctx).Create(toRow(&entry)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.AlreadyExists("roll already logged").WithMeta("roll_id", entry.ID)
		}
		return nil, errors.Wrap(err, "failed to insert roll")
	}

	return &AppendOutput{Entry: &entry}, nil
}

func (r *sqlRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.ChronicleID == "" {
		return nil, errors.InvalidArgument("chronicle ID is required")
	}

	q := r.db.WithContext(ctx).
		Where("chronicle_id = ?", input.ChronicleID)
	if !input.IncludeSecret {
		q = q.Where("secret = ?", false)
	}

	var rows []rollRow
	// rowid breaks ties between rolls logged within the same clock tick
	err := q.Order("created_at DESC").
		Order("rowid DESC").
		Limit(listLimit(input.Limit)).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query rolls")
	}

	entries := make([]*Entry, len(rows))
	for i := range rows {
		entries[i] = rows[i].toEntry()
	}
	return &ListOutput{Entries: entries}, nil
}
