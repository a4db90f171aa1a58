package v1alpha1

import (
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

// RollContext says who rolled and which chronicle logs the roll
type RollContext struct {
	ChronicleID string `json:"chronicle_id,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	CharacterID string `json:"character_id,omitempty"`
	Description string `json:"description,omitempty"`
	Secret      bool   `json:"secret,omitempty"`
}

// Dice service

type RollV5Request struct {
	Context    *RollContext `json:"context,omitempty"`
	Pool       int          `json:"pool"`
	Hunger     int          `json:"hunger"`
	Difficulty *int         `json:"difficulty,omitempty"`
	// BloodSurge adds the Blood Potency surge bonus to the pool
	BloodSurge   bool `json:"blood_surge,omitempty"`
	BloodPotency int  `json:"blood_potency,omitempty"`
}

type WillpowerRollRequest struct {
	Context    *RollContext `json:"context,omitempty"`
	Willpower  int          `json:"willpower"`
	Difficulty *int         `json:"difficulty,omitempty"`
}

// V5RollResponse answers RollV5 and WillpowerRoll
type V5RollResponse struct {
	Result *v5.RollResult `json:"result"`
	RollID string         `json:"roll_id,omitempty"`
}

type RemorseCheckRequest struct {
	Context  *RollContext `json:"context,omitempty"`
	Humanity int          `json:"humanity"`
	Stains   int          `json:"stains"`
}

type RemorseCheckResponse struct {
	Result *v5.RemorseResult `json:"result"`
	RollID string            `json:"roll_id,omitempty"`
}

type ContestedV5Request struct {
	Context        *RollContext `json:"context,omitempty"`
	AttackerPool   int          `json:"attacker_pool"`
	AttackerHunger int          `json:"attacker_hunger"`
	DefenderPool   int          `json:"defender_pool"`
	DefenderHunger int          `json:"defender_hunger"`
}

type ContestedV5Response struct {
	Result *v5.ContestedResult `json:"result"`
	RollID string              `json:"roll_id,omitempty"`
}

type RollV20Request struct {
	Context    *RollContext `json:"context,omitempty"`
	Pool       int          `json:"pool"`
	Difficulty int          `json:"difficulty,omitempty"`
	Specialty  bool         `json:"specialty,omitempty"`
	Willpower  bool         `json:"willpower,omitempty"`
}

type RollV20Response struct {
	Result *v20.RollResult `json:"result"`
	RollID string          `json:"roll_id,omitempty"`
}

type ExtendedV20Request struct {
	Context    *RollContext `json:"context,omitempty"`
	Pool       int          `json:"pool"`
	Difficulty int          `json:"difficulty,omitempty"`
	Target     int          `json:"target"`
	MaxRolls   int          `json:"max_rolls,omitempty"`
	Specialty  bool         `json:"specialty,omitempty"`
}

type ExtendedV20Response struct {
	Result *v20.ExtendedResult `json:"result"`
	RollID string              `json:"roll_id,omitempty"`
}

type ResistedV20Request struct {
	Context           *RollContext `json:"context,omitempty"`
	AttackerPool      int          `json:"attacker_pool"`
	DefenderPool      int          `json:"defender_pool"`
	Difficulty        int          `json:"difficulty,omitempty"`
	AttackerSpecialty bool         `json:"attacker_specialty,omitempty"`
	DefenderSpecialty bool         `json:"defender_specialty,omitempty"`
}

type ResistedV20Response struct {
	Result *v20.ResistedResult `json:"result"`
	RollID string              `json:"roll_id,omitempty"`
}

type DamageV20Request struct {
	Context    *RollContext `json:"context,omitempty"`
	Pool       int          `json:"pool"`
	Difficulty int          `json:"difficulty,omitempty"`
	Aggravated bool         `json:"aggravated,omitempty"`
}

type DamageV20Response struct {
	Result *v20.DamageResult `json:"result"`
	RollID string            `json:"roll_id,omitempty"`
}

type SoakV20Request struct {
	Context   *RollContext `json:"context,omitempty"`
	Stamina   int          `json:"stamina"`
	Fortitude int          `json:"fortitude"`
	// DamageType is bashing, lethal or aggravated
	DamageType string `json:"damage_type"`
}

type SoakV20Response struct {
	Result *v20.SoakResult `json:"result"`
	RollID string          `json:"roll_id,omitempty"`
}

type ListRollsRequest struct {
	ChronicleID   string `json:"chronicle_id"`
	Limit         int    `json:"limit,omitempty"`
	IncludeSecret bool   `json:"include_secret,omitempty"`
}

type ListRollsResponse struct {
	Rolls []*rolllog.Entry `json:"rolls"`
}

// Vitae service

type IncreaseHungerRequest struct {
	Current int `json:"current"`
	Amount  int `json:"amount"`
}

type DecreaseHungerRequest struct {
	Current      int  `json:"current"`
	Amount       int  `json:"amount"`
	BloodPotency int  `json:"blood_potency"`
	Animal       bool `json:"animal,omitempty"`
	Bagged       bool `json:"bagged,omitempty"`
}

type SlakeHungerRequest struct {
	Current      int  `json:"current"`
	Kill         bool `json:"kill,omitempty"`
	BloodPotency int  `json:"blood_potency"`
}

// HungerResponse answers every Hunger operation
type HungerResponse struct {
	Change    v5.HungerChange `json:"change"`
	AtMaximum bool            `json:"at_maximum"`
}

type RouseCheckRequest struct {
	Context      *RollContext `json:"context,omitempty"`
	BloodPotency int          `json:"blood_potency"`
	Hunger       int          `json:"hunger"`
}

type RouseCheckResponse struct {
	Result    *v5.RouseResult `json:"result"`
	NewHunger int             `json:"new_hunger"`
	RollID    string          `json:"roll_id,omitempty"`
}

type MultipleRouseChecksRequest struct {
	Context      *RollContext `json:"context,omitempty"`
	Count        int          `json:"count"`
	BloodPotency int          `json:"blood_potency"`
	Hunger       int          `json:"hunger"`
}

type MultipleRouseChecksResponse struct {
	Results     []*v5.RouseResult `json:"results"`
	FinalHunger int               `json:"final_hunger"`
	RollID      string            `json:"roll_id,omitempty"`
}

type FrenzyCheckRequest struct {
	Context    *RollContext `json:"context,omitempty"`
	Willpower  int          `json:"willpower"`
	Humanity   int          `json:"humanity"`
	Hunger     int          `json:"hunger,omitempty"`
	Difficulty int          `json:"difficulty,omitempty"`
}

// FrenzyRollResponse answers FrenzyCheck and RideTheWave
type FrenzyRollResponse struct {
	Success bool           `json:"success"`
	Roll    *v5.RollResult `json:"roll"`
	RollID  string         `json:"roll_id,omitempty"`
}

type ResistFrenzyRequest struct {
	Context   *RollContext `json:"context,omitempty"`
	Willpower int          `json:"willpower"`
	Humanity  int          `json:"humanity"`
	Trigger   string       `json:"trigger"`
	Hunger    int          `json:"hunger"`
	Brujah    bool         `json:"brujah,omitempty"`
}

type ResistFrenzyResponse struct {
	Result *v5.FrenzyCheckResult `json:"result"`
	RollID string                `json:"roll_id,omitempty"`
}

type RideTheWaveRequest struct {
	Context   *RollContext `json:"context,omitempty"`
	Willpower int          `json:"willpower"`
	Humanity  int          `json:"humanity"`
}

type GetBloodPotencyRequest struct {
	Level int `json:"level"`
}

type GetBloodPotencyResponse struct {
	BloodPotency     v5.BloodPotency `json:"blood_potency"`
	CanFeedOnAnimals bool            `json:"can_feed_on_animals"`
	CanUseBloodBags  bool            `json:"can_use_blood_bags"`
	CanRerollRouse   bool            `json:"can_reroll_rouse"`
}

type ListBloodPotencyRequest struct{}

type ListBloodPotencyResponse struct {
	Levels []v5.BloodPotency `json:"levels"`
}

type GetGenerationRequest struct {
	Generation int `json:"generation"`
}

type GetGenerationResponse struct {
	Generation           int `json:"generation"`
	MaxBloodPool         int `json:"max_blood_pool"`
	BloodPerTurn         int `json:"blood_per_turn"`
	StartingBloodPotency int `json:"starting_blood_potency"`
	MaxBloodPotency      int `json:"max_blood_potency"`
}

// BloodPoolRequest is used by SpendBlood and GainBlood
type BloodPoolRequest struct {
	Current    int `json:"current"`
	Amount     int `json:"amount"`
	Generation int `json:"generation,omitempty"`
	MaxPool    int `json:"max_pool,omitempty"`
}

type BloodPoolResponse struct {
	Change v20.BloodPoolChange `json:"change"`
}

type HealDamageRequest struct {
	CurrentPool int    `json:"current_pool"`
	DamageType  string `json:"damage_type"`
	Amount      int    `json:"amount"`
	Generation  int    `json:"generation,omitempty"`
}

type HealDamageResponse struct {
	Result v20.HealResult `json:"result"`
}

type BoostAttributeRequest struct {
	CurrentPool int    `json:"current_pool"`
	Attribute   string `json:"attribute"`
	Amount      int    `json:"amount"`
	Generation  int    `json:"generation,omitempty"`
}

type BoostAttributeResponse struct {
	Result v20.BoostResult `json:"result"`
}

type GetDaytimePenaltyRequest struct {
	Humanity int `json:"humanity"`
}

type GetDaytimePenaltyResponse struct {
	Penalty int `json:"penalty"`
}

// Initiative service

// OrderView is an order with its current turn order
type OrderView struct {
	Order     *initiative.Order   `json:"order"`
	TurnOrder []*initiative.Entry `json:"turn_order"`
	Current   *initiative.Entry   `json:"current,omitempty"`
}

type StartCombatRequest struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name,omitempty"`
}

// OrderResponse answers operations that only return the order
type OrderResponse struct {
	View *OrderView `json:"view"`
}

type AddCombatantRequest struct {
	OrderID            string `json:"order_id"`
	CharacterID        string `json:"character_id,omitempty"`
	Name               string `json:"name"`
	InitiativeValue    *int   `json:"initiative_value,omitempty"`
	InitiativeModifier int    `json:"initiative_modifier"`
	IsNPC              bool   `json:"is_npc,omitempty"`
}

// CombatantResponse answers AddCombatant and UpdateCombatant
type CombatantResponse struct {
	Entry *initiative.Entry `json:"entry"`
	View  *OrderView        `json:"view"`
}

type RemoveCombatantRequest struct {
	OrderID string `json:"order_id"`
	EntryID string `json:"entry_id"`
}

type UpdateCombatantRequest struct {
	OrderID         string `json:"order_id"`
	EntryID         string `json:"entry_id"`
	InitiativeValue *int   `json:"initiative_value,omitempty"`
	HasActed        *bool  `json:"has_acted,omitempty"`
	IsDelayed       *bool  `json:"is_delayed,omitempty"`
}

// OrderRequest names an order
type OrderRequest struct {
	OrderID string `json:"order_id"`
}

type EntryRoll struct {
	EntryID string `json:"entry_id"`
	Face    int    `json:"face"`
	Value   int    `json:"value"`
}

type RollInitiativeResponse struct {
	Rolls []EntryRoll `json:"rolls"`
	View  *OrderView  `json:"view"`
}

type AdvanceTurnResponse struct {
	NewRound bool       `json:"new_round"`
	View     *OrderView `json:"view"`
}

type GetActiveOrderRequest struct {
	SessionID string `json:"session_id"`
}

type DeleteOrderResponse struct{}
