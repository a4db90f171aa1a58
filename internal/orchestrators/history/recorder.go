// Package history records resolved rolls into a chronicle's roll log and
// counts them as metrics. The dice and vitae orchestrators share it.
package history

import (
	"context"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/pkg/idgen"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
)

// Game systems
const (
	SystemV5  = "v5"
	SystemV20 = "v20"
)

// RollContext identifies who rolled and where. Rolls without a chronicle
// are resolved but not logged.
type RollContext struct {
	ChronicleID string
	SessionID   string
	CharacterID string
	Description string
	Secret      bool
}

// Record is one resolved roll to log
type Record struct {
	System    string
	Kind      string
	Result    string
	Successes int
	// Detail is marshalled to JSON as the full result
	Detail any
}

// Config holds the dependencies for the recorder
type Config struct {
	RollLog     rolllog.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RollLog == nil {
		vb.RequiredField("RollLog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Recorder appends rolls to the roll log
type Recorder struct {
	rollLog rolllog.Repository
	idGen   idgen.Generator
	rolls   metric.Int64Counter
}

// NewRecorder creates a recorder. Metrics go to the global OpenTelemetry
// provider, a no-op unless one is installed.
func NewRecorder(cfg *Config) (*Recorder, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	rolls, err := meter().Int64Counter(
		"vtm.dice.rolls",
		metric.WithDescription("Total rolls resolved"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll counter")
	}

	return &Recorder{
		rollLog: cfg.RollLog,
		idGen:   cfg.IDGenerator,
		rolls:   rolls,
	}, nil
}

// Record counts the roll and, when rc names a chronicle, logs it. It
// returns the log entry ID or "" when nothing was logged.
func (r *Recorder) Record(ctx context.Context, rc RollContext, rec Record) (string, error) {
	r.rolls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("system", rec.System),
		attribute.String("kind", rec.Kind),
		attribute.String("result", rec.Result),
	))

	if rc.ChronicleID == "" {
		return "", nil
	}

	detail, err := json.Marshal(rec.Detail)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal roll detail")
	}

	entry := &rolllog.Entry{
		ID:          r.idGen.Generate(),
		ChronicleID: rc.ChronicleID,
		SessionID:   rc.SessionID,
		CharacterID: rc.CharacterID,
		System:      rec.System,
		Kind:        rec.Kind,
		Description: rc.Description,
		Secret:      rc.Secret,
		Result:      rec.Result,
		Successes:   rec.Successes,
		Detail:      detail,
	}

	if _, err := r.rollLog.Append(ctx, rolllog.AppendInput{Entry: entry}); err != nil {
		return "", errors.Wrap(err, "failed to record roll")
	}

	slog.Info("Roll recorded",
		"roll_id", entry.ID,
		"chronicle_id", rc.ChronicleID,
		"system", rec.System,
		"kind", rec.Kind,
		"result", rec.Result,
		"successes", rec.Successes,
	)

	return entry.ID, nil
}

// List returns the chronicle's recent rolls, newest first
func (r *Recorder) List(ctx context.Context, input rolllog.ListInput) ([]*rolllog.Entry, error) {
	out, err := r.rollLog.List(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rolls")
	}
	return out.Entries, nil
}
