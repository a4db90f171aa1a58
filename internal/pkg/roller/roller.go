// Package roller supplies the d10 randomness the rules packages consume.
//
// Rules code depends only on the Source interface so tests can script exact
// faces. Production code wraps an rpg-toolkit dice.Roller, which defaults to
// a crypto-backed generator.
package roller

import (
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

//go:generate mockgen -destination=mock/mock.go -package=rollermock github.com/KirkDiggler/vtm-api/internal/pkg/roller Source

// Sides is the size of every die in both rule systems
const Sides = 10

// Source produces uniformly distributed d10 faces in [1, 10]
type Source interface {
	RollD10() int
}

// ToolkitSource adapts a toolkit dice.Roller to Source
type ToolkitSource struct {
	roller dice.Roller
}

// NewSource wraps r. A nil roller selects dice.DefaultRoller.
func NewSource(r dice.Roller) *ToolkitSource {
	if r == nil {
		r = dice.DefaultRoller
	}
	return &ToolkitSource{roller: r}
}

// NewDefault returns a source backed by the toolkit's default roller
func NewDefault() *ToolkitSource {
	return NewSource(nil)
}

// RollD10 rolls one die. A failing or misbehaving roller falls back to
// math/rand so a single bad read never aborts a resolution.
func (s *ToolkitSource) RollD10() int {
	face, err := s.roller.Roll(Sides)
	if err != nil || face < 1 || face > Sides {
		return rand.IntN(Sides) + 1
	}
	return face
}

// RollN rolls n dice from src. n <= 0 yields an empty slice.
func RollN(src Source, n int) []int {
	if n <= 0 {
		return []int{}
	}
	faces := make([]int, n)
	for i := range faces {
		faces[i] = src.RollD10()
	}
	return faces
}
