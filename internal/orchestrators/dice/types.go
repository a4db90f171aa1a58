package dice

import (
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

// RollV5Input defines the request for a V5 pool roll
type RollV5Input struct {
	history.RollContext
	Pool   int
	Hunger int
	// Difficulty nil selects DefaultV5Difficulty; 0 is an opposed roll
	Difficulty *int
	// BloodSurge adds BloodPotency's surge dice to Pool. The Rouse Check it
	// costs is made separately.
	BloodSurge   bool
	BloodPotency int
}

// RollV5Output defines the response for a V5 pool roll
type RollV5Output struct {
	Result *v5.RollResult
	// RollID is the roll log entry, empty when no chronicle was given
	RollID string
}

// WillpowerRollInput defines the request for a plain Willpower roll
type WillpowerRollInput struct {
	history.RollContext
	Willpower int
	// Difficulty nil selects DefaultV5Difficulty
	Difficulty *int
}

// WillpowerRollOutput defines the response for a Willpower roll
type WillpowerRollOutput struct {
	Result *v5.RollResult
	RollID string
}

// RemorseCheckInput defines the request for an end-of-session remorse check
type RemorseCheckInput struct {
	history.RollContext
	Humanity int
	Stains   int
}

// RemorseCheckOutput defines the response for a remorse check
type RemorseCheckOutput struct {
	Result *v5.RemorseResult
	RollID string
}

// ContestedV5Input defines the request for an opposed V5 roll
type ContestedV5Input struct {
	history.RollContext
	AttackerPool   int
	AttackerHunger int
	DefenderPool   int
	DefenderHunger int
}

// ContestedV5Output defines the response for an opposed V5 roll
type ContestedV5Output struct {
	Result *v5.ContestedResult
	RollID string
}

// RollV20Input defines the request for a V20 pool roll
type RollV20Input struct {
	history.RollContext
	Pool int
	// Difficulty 0 selects the default of 6
	Difficulty int
	Specialty  bool
	Willpower  bool
}

// RollV20Output defines the response for a V20 pool roll
type RollV20Output struct {
	Result *v20.RollResult
	RollID string
}

// ExtendedV20Input defines the request for an extended V20 action
type ExtendedV20Input struct {
	history.RollContext
	Pool       int
	Difficulty int
	Target     int
	MaxRolls   int
	Specialty  bool
}

// ExtendedV20Output defines the response for an extended action
type ExtendedV20Output struct {
	Result *v20.ExtendedResult
	RollID string
}

// ResistedV20Input defines the request for a resisted V20 action
type ResistedV20Input struct {
	history.RollContext
	AttackerPool      int
	DefenderPool      int
	Difficulty        int
	AttackerSpecialty bool
	DefenderSpecialty bool
}

// ResistedV20Output defines the response for a resisted action
type ResistedV20Output struct {
	Result *v20.ResistedResult
	RollID string
}

// DamageV20Input defines the request for a V20 damage roll
type DamageV20Input struct {
	history.RollContext
	Pool       int
	Difficulty int
	Aggravated bool
}

// DamageV20Output defines the response for a damage roll
type DamageV20Output struct {
	Result *v20.DamageResult
	RollID string
}

// SoakV20Input defines the request for a V20 soak roll
type SoakV20Input struct {
	history.RollContext
	Stamina    int
	Fortitude  int
	DamageType v20.DamageType
}

// SoakV20Output defines the response for a soak roll
type SoakV20Output struct {
	Result *v20.SoakResult
	RollID string
}

// ListRollsInput defines the request for a chronicle's roll history
type ListRollsInput struct {
	ChronicleID string
	Limit       int
	// IncludeSecret is set for the storyteller
	IncludeSecret bool
}

// ListRollsOutput defines the response for roll history, newest first
type ListRollsOutput struct {
	Rolls []*rolllog.Entry
}
