package v20_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	"github.com/KirkDiggler/vtm-api/internal/rules"
	v20 "github.com/KirkDiggler/vtm-api/internal/rules/v20"
)

type DiceTestSuite struct {
	suite.Suite
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestRoll() {
	testCases := []struct {
		name           string
		faces          []int
		pool           int
		difficulty     int
		specialty      bool
		willpower      bool
		wantSuccesses  int
		wantOnes       int
		wantTens       int
		wantRerolls    []int
		wantResult     v20.ResultKind
		wantDifficulty int
	}{
		{
			name: "single one botches", faces: []int{1}, pool: 1, difficulty: 6,
			wantSuccesses: 0, wantOnes: 1, wantRerolls: []int{}, wantResult: v20.ResultBotch, wantDifficulty: 6,
		},
		{
			name: "ten successes at difficulty 2 is exceptional", faces: []int{5}, pool: 10, difficulty: 2,
			wantSuccesses: 10, wantRerolls: []int{}, wantResult: v20.ResultExceptional, wantDifficulty: 2,
		},
		{
			name: "ones cancel successes without botching", faces: []int{7, 1, 2}, pool: 3, difficulty: 6,
			wantSuccesses: 0, wantOnes: 1, wantRerolls: []int{}, wantResult: v20.ResultFailure, wantDifficulty: 6,
		},
		{
			name: "plain success", faces: []int{7, 8, 2}, pool: 3, difficulty: 6,
			wantSuccesses: 2, wantRerolls: []int{}, wantResult: v20.ResultSuccess, wantDifficulty: 6,
		},
		{
			name: "difficulty clamped up", faces: []int{2}, pool: 1, difficulty: 0,
			wantSuccesses: 1, wantRerolls: []int{}, wantResult: v20.ResultSuccess, wantDifficulty: 2,
		},
		{
			name: "difficulty clamped down", faces: []int{10}, pool: 1, difficulty: 15,
			wantSuccesses: 1, wantTens: 1, wantRerolls: []int{}, wantResult: v20.ResultSuccess, wantDifficulty: 10,
		},
		{
			name: "non-positive pool rolls one die", faces: []int{3}, pool: -2, difficulty: 6,
			wantSuccesses: 0, wantRerolls: []int{}, wantResult: v20.ResultFailure, wantDifficulty: 6,
		},
		{
			name: "specialty rerolls a ten", faces: []int{10, 3, 8}, pool: 2, difficulty: 6, specialty: true,
			wantSuccesses: 2, wantTens: 1, wantRerolls: []int{8}, wantResult: v20.ResultSuccess, wantDifficulty: 6,
		},
		{
			name: "specialty reroll of one adds a one", faces: []int{10, 3, 1}, pool: 2, difficulty: 6, specialty: true,
			wantSuccesses: 0, wantOnes: 1, wantTens: 1, wantRerolls: []int{1}, wantResult: v20.ResultFailure, wantDifficulty: 6,
		},
		{
			name: "willpower prevents a botch", faces: []int{1}, pool: 1, difficulty: 6, willpower: true,
			wantSuccesses: 0, wantOnes: 1, wantRerolls: []int{}, wantResult: v20.ResultFailure, wantDifficulty: 6,
		},
		{
			name: "willpower alone succeeds", faces: []int{3}, pool: 1, difficulty: 6, willpower: true,
			wantSuccesses: 1, wantRerolls: []int{}, wantResult: v20.ResultSuccess, wantDifficulty: 6,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			res := v20.NewResolver(roller.NewScripted(tc.faces...)).
				Roll(tc.pool, tc.difficulty, tc.specialty, tc.willpower)
			s.Equal(tc.wantSuccesses, res.Successes)
			s.Equal(tc.wantOnes, res.Ones)
			s.Equal(tc.wantTens, res.Tens)
			s.Equal(tc.wantRerolls, res.SpecialtyRerolls)
			s.Equal(tc.wantResult, res.Result)
			s.Equal(tc.wantDifficulty, res.Difficulty)
		})
	}
}

func (s *DiceTestSuite) TestRollInvariants() {
	resolver := v20.NewResolver(nil)
	for i := 0; i < 500; i++ {
		res := resolver.Roll(i%12, i%14, i%2 == 0, i%3 == 0)
		s.Require().GreaterOrEqual(res.Successes, 0)
		s.Require().GreaterOrEqual(res.Difficulty, v20.MinDifficulty)
		s.Require().LessOrEqual(res.Difficulty, v20.MaxDifficulty)
		s.Require().Len(res.Dice, max(1, i%12))
	}
}

func (s *DiceTestSuite) TestExtended() {
	s.Run("reaches target", func() {
		res := v20.NewResolver(roller.NewScripted(8, 8, 9, 9)).Extended(2, 6, 4, 5, false)
		s.True(res.Success)
		s.False(res.Botched)
		s.Equal(2, res.RollsTaken)
		s.Equal(4, res.TotalSuccesses)
		s.Equal(4, res.Target)
	})
	s.Run("botch aborts and is not counted", func() {
		res := v20.NewResolver(roller.NewScripted(7, 7, 1, 2)).Extended(2, 6, 10, 5, false)
		s.False(res.Success)
		s.True(res.Botched)
		s.Equal(2, res.RollsTaken)
		s.Equal(2, res.TotalSuccesses)
	})
	s.Run("runs out of rolls at the default limit", func() {
		res := v20.NewResolver(roller.NewScripted(7, 7, 7, 3)).Extended(2, 6, 20, 0, false)
		s.False(res.Success)
		s.False(res.Botched)
		s.Equal(v20.DefaultMaxRolls, res.RollsTaken)
		s.Equal(3, res.TotalSuccesses)
	})
}

func (s *DiceTestSuite) TestResisted() {
	s.Run("attacker", func() {
		res := v20.NewResolver(roller.NewScripted(8, 8, 7, 2)).Resisted(2, 2, 6, false, false)
		s.Equal(rules.WinnerAttacker, res.Winner)
		s.Equal(1, res.NetSuccesses)
	})
	s.Run("defender", func() {
		res := v20.NewResolver(roller.NewScripted(2, 2, 8, 8)).Resisted(2, 2, 6, false, false)
		s.Equal(rules.WinnerDefender, res.Winner)
		s.Equal(2, res.NetSuccesses)
	})
	s.Run("tie", func() {
		res := v20.NewResolver(roller.NewScripted(3)).Resisted(3, 4, 6, false, false)
		s.Equal(rules.WinnerTie, res.Winner)
		s.Equal(0, res.NetSuccesses)
	})
}

func (s *DiceTestSuite) TestDamage() {
	res := v20.NewResolver(roller.NewScripted(6, 6, 2)).Damage(3, 6, true)
	s.Equal(2, res.DamageDealt)
	s.Equal(v20.DamageAggravated, res.DamageType)
	s.False(res.Botched)

	res = v20.NewResolver(roller.NewScripted(1)).Damage(1, 6, false)
	s.Equal(0, res.DamageDealt)
	s.Equal(v20.DamageLethal, res.DamageType)
	s.True(res.Botched)
}

func (s *DiceTestSuite) TestSoak() {
	s.Run("stamina soaks bashing", func() {
		res := v20.NewResolver(roller.NewScripted(6, 2)).Soak(2, 0, v20.DamageBashing)
		s.True(res.CanSoak)
		s.Equal(1, res.DamageSoaked)
		s.Len(res.Roll.Dice, 2)
		s.Equal(6, res.Roll.Difficulty)
	})
	s.Run("fortitude soaks lethal", func() {
		res := v20.NewResolver(roller.NewScripted(9)).Soak(4, 1, v20.DamageLethal)
		s.True(res.CanSoak)
		s.Len(res.Roll.Dice, 1)
	})
	s.Run("no fortitude cannot soak aggravated", func() {
		src := roller.NewScripted(9)
		res := v20.NewResolver(src).Soak(4, 0, v20.DamageAggravated)
		s.False(res.CanSoak)
		s.Nil(res.Roll)
		s.Equal(0, src.Consumed())
	})
}

func (s *DiceTestSuite) TestTextEncoding() {
	raw, err := json.Marshal(&v20.DamageResult{DamageType: v20.DamageAggravated, Roll: &v20.RollResult{Result: v20.ResultBotch}})
	s.Require().NoError(err)
	s.Contains(string(raw), `"damage_type":"aggravated"`)
	s.Contains(string(raw), `"result":"botch"`)

	dt, err := v20.ParseDamageType("bashing")
	s.NoError(err)
	s.Equal(v20.DamageBashing, dt)
	_, err = v20.ParseDamageType("fire")
	s.Error(err)
}
