// Package initiative is the combat turn-order state machine.
//
// An Order moves from active to ended and never back. Entries keep their
// insertion order in storage; the turn order is recomputed from initiative
// values on every read. Callers load an Order, mutate it through these
// methods and persist it; serializing concurrent mutations is their job.
package initiative

import (
	"sort"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
)

// DefaultName is used when combat starts without a name
const DefaultName = "Combat"

// EntityType identifies initiative entries to rpg-toolkit
const EntityType = "initiative_entry"

// Entry is one combatant in an Order
type Entry struct {
	ID                 string    `json:"id"`
	CharacterID        string    `json:"character_id,omitempty"`
	Name               string    `json:"name"`
	InitiativeValue    int       `json:"initiative_value"`
	InitiativeModifier int       `json:"initiative_modifier"`
	IsNPC              bool      `json:"is_npc"`
	HasActed           bool      `json:"has_acted"`
	IsDelayed          bool      `json:"is_delayed"`
	CreatedAt          time.Time `json:"created_at"`
}

var _ core.Entity = (*Entry)(nil)

// GetID implements core.Entity
func (e *Entry) GetID() string { return e.ID }

// GetType implements core.Entity
func (e *Entry) GetType() string { return EntityType }

func entityError(op string, entity core.Entity, err error) *core.EntityError {
	return core.NewEntityError(op, entity.GetType(), entity.GetID(), err)
}

// Order is a combat for one session
type Order struct {
	ID               string     `json:"id"`
	SessionID        string     `json:"session_id"`
	Name             string     `json:"name"`
	Active           bool       `json:"is_active"`
	CurrentRound     int        `json:"current_round"`
	CurrentTurnIndex int        `json:"current_turn_index"`
	Entries          []*Entry   `json:"entries"`
	CreatedAt        time.Time  `json:"created_at"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
}

// EntryPatch carries optional changes to an entry. Nil fields are left alone.
type EntryPatch struct {
	InitiativeValue *int  `json:"initiative_value,omitempty"`
	HasActed        *bool `json:"has_acted,omitempty"`
	IsDelayed       *bool `json:"is_delayed,omitempty"`
}

// Start opens a new order for sessionID. active is the session's current
// order, if any; starting while it is still running is rejected.
func Start(active *Order, id, sessionID, name string, now time.Time) (*Order, error) {
	if active != nil && active.Active && active.SessionID == sessionID {
		return nil, errors.FailedPrecondition("combat already active for session").
			WithMeta("session_id", sessionID).
			WithMeta("order_id", active.ID)
	}

	if name == "" {
		name = DefaultName
	}

	return &Order{
		ID:               id,
		SessionID:        sessionID,
		Name:             name,
		Active:           true,
		CurrentRound:     1,
		CurrentTurnIndex: 0,
		Entries:          []*Entry{},
		CreatedAt:        now,
	}, nil
}

// Add appends entry. An entry without a rolled value sits at 0 until RollAll.
// Membership failures are *core.EntityError values wrapping the toolkit
// sentinels: ErrNilEntity, ErrEmptyID or ErrDuplicateEntity.
func (o *Order) Add(entry *Entry) error {
	if entry == nil {
		return core.NewEntityError("add", EntityType, "", core.ErrNilEntity)
	}
	if !o.Active {
		return errors.FailedPrecondition("combat has already ended").
			WithMeta("order_id", o.ID)
	}
	if entry.GetID() == "" {
		return core.NewEntityError("add", entry.GetType(), "", core.ErrEmptyID)
	}
	if _, exists := o.Entry(entry.GetID()); exists {
		return entityError("add", entry, core.ErrDuplicateEntity)
	}
	o.Entries = append(o.Entries, entry)
	return nil
}

// Remove deletes the entry with entryID whether or not combat is running. A
// missing entry yields core.ErrEntityNotFound.
func (o *Order) Remove(entryID string) error {
	for i, e := range o.Entries {
		if e.ID == entryID {
			o.Entries = append(o.Entries[:i], o.Entries[i+1:]...)
			return nil
		}
	}
	return core.NewEntityError("remove", EntityType, entryID, core.ErrEntityNotFound)
}

// Entry returns the entry with entryID
func (o *Order) Entry(entryID string) (*Entry, bool) {
	for _, e := range o.Entries {
		if e.ID == entryID {
			return e, true
		}
	}
	return nil, false
}

// UpdateEntry applies patch to entryID. A missing entry yields
// core.ErrEntityNotFound. Ended orders are read-only so the patch is ignored.
func (o *Order) UpdateEntry(entryID string, patch EntryPatch) error {
	e, ok := o.Entry(entryID)
	if !ok {
		return core.NewEntityError("update", EntityType, entryID, core.ErrEntityNotFound)
	}
	if !o.Active {
		return nil
	}

	if patch.InitiativeValue != nil {
		e.InitiativeValue = *patch.InitiativeValue
	}
	if patch.HasActed != nil {
		e.HasActed = *patch.HasActed
	}
	if patch.IsDelayed != nil {
		e.IsDelayed = *patch.IsDelayed
	}
	return nil
}

// RollAll sets every entry to d10 plus its modifier and clears HasActed. It
// returns the faces in insertion order. Ended orders are left untouched.
func (o *Order) RollAll(src roller.Source) []int {
	if !o.Active {
		return nil
	}

	faces := make([]int, len(o.Entries))
	for i, e := range o.Entries {
		faces[i] = src.RollD10()
		e.InitiativeValue = faces[i] + e.InitiativeModifier
		e.HasActed = false
	}
	return faces
}

// Advance ends the current turn. The acting entry is marked, the turn index
// moves on, and passing the last entry starts a new round with every HasActed
// cleared.
func (o *Order) Advance() error {
	if !o.Active {
		return errors.FailedPrecondition("combat has already ended").
			WithMeta("order_id", o.ID)
	}
	if len(o.Entries) == 0 {
		return errors.FailedPrecondition("no combatants in initiative order").
			WithMeta("order_id", o.ID)
	}

	sorted := o.Sorted()
	if o.CurrentTurnIndex < len(sorted) {
		sorted[o.CurrentTurnIndex].HasActed = true
	}

	o.CurrentTurnIndex++
	if o.CurrentTurnIndex >= len(sorted) {
		o.CurrentRound++
		o.CurrentTurnIndex = 0
		for _, e := range o.Entries {
			e.HasActed = false
		}
	}
	return nil
}

// End closes the order. Ending twice keeps the first end time.
func (o *Order) End(now time.Time) {
	if !o.Active && o.EndedAt != nil {
		return
	}
	o.Active = false
	o.EndedAt = &now
}

// Sorted returns the entries by initiative value, highest first. Equal values
// keep insertion order. The slice is new; the entries are shared.
func (o *Order) Sorted() []*Entry {
	sorted := make([]*Entry, len(o.Entries))
	copy(sorted, o.Entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InitiativeValue > sorted[j].InitiativeValue
	})
	return sorted
}

// Current returns the entry whose turn it is, or nil when combat is over or
// empty
func (o *Order) Current() *Entry {
	if !o.Active {
		return nil
	}
	sorted := o.Sorted()
	if o.CurrentTurnIndex >= len(sorted) {
		return nil
	}
	return sorted[o.CurrentTurnIndex]
}

// Clone returns a deep copy
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}

	out := *o
	out.Entries = make([]*Entry, len(o.Entries))
	for i, e := range o.Entries {
		cp := *e
		out.Entries[i] = &cp
	}
	if o.EndedAt != nil {
		ended := *o.EndedAt
		out.EndedAt = &ended
	}
	return &out
}
