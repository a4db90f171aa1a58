package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/dice"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	"github.com/KirkDiggler/vtm-api/internal/pkg/clock"
	"github.com/KirkDiggler/vtm-api/internal/pkg/idgen"
	"github.com/KirkDiggler/vtm-api/internal/pkg/roller"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/vtm-api/internal/rules"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

type OrchestratorTestSuite struct {
	suite.Suite
	clock    *clock.Fixed
	recorder *history.Recorder
	ctx      context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.clock = clock.NewFixed(time.Date(2024, 2, 14, 21, 0, 0, 0, time.UTC))
	repo, err := rolllog.NewInMemoryRepository(&rolllog.InMemoryConfig{Clock: s.clock})
	s.Require().NoError(err)

	s.recorder, err = history.NewRecorder(&history.Config{
		RollLog:     repo,
		IDGenerator: idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) orchestrator(faces ...int) dice.Service {
	svc, err := dice.NewOrchestrator(&dice.Config{
		Recorder: s.recorder,
		Source:   roller.NewScripted(faces...),
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) TestRollV5Critical() {
	svc := s.orchestrator(10, 10, 6, 1)

	out, err := svc.RollV5(s.ctx, &dice.RollV5Input{
		RollContext: history.RollContext{ChronicleID: "chronicle_1", CharacterID: "char_1"},
		Pool:        4,
		Hunger:      1,
		Difficulty:  intPtr(2),
	})
	s.Require().NoError(err)
	s.Equal([]int{10, 10, 6}, out.Result.RegularDice)
	s.Equal([]int{1}, out.Result.HungerDice)
	s.Equal(5, out.Result.Successes)
	s.Equal(v5.ResultCritical, out.Result.Result)
	s.NotEmpty(out.RollID)
}

func (s *OrchestratorTestSuite) TestRollV5MessyCritical() {
	svc := s.orchestrator(10, 10)

	out, err := svc.RollV5(s.ctx, &dice.RollV5Input{Pool: 2, Hunger: 1, Difficulty: intPtr(1)})
	s.Require().NoError(err)
	s.Equal(v5.ResultMessyCritical, out.Result.Result)
	s.Empty(out.RollID, "no chronicle means nothing logged")
}

func (s *OrchestratorTestSuite) TestRollV5Validation() {
	svc := s.orchestrator()

	_, err := svc.RollV5(s.ctx, &dice.RollV5Input{Pool: 3, Hunger: 6})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.RollV5(s.ctx, &dice.RollV5Input{Pool: dice.MaxPool + 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.RollV5(s.ctx, &dice.RollV5Input{Pool: 3, Difficulty: intPtr(-1)})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.RollV5(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestWillpowerRoll() {
	svc := s.orchestrator(6, 2, 3)

	out, err := svc.WillpowerRoll(s.ctx, &dice.WillpowerRollInput{Willpower: 3, Difficulty: intPtr(1)})
	s.Require().NoError(err)
	s.Empty(out.Result.HungerDice)
	s.Equal(1, out.Result.Successes)
	s.Equal(v5.ResultSuccess, out.Result.Result)
}

func (s *OrchestratorTestSuite) TestRollV5DefaultDifficulty() {
	svc := s.orchestrator(1, 2, 3)

	out, err := svc.RollV5(s.ctx, &dice.RollV5Input{Pool: 3})
	s.Require().NoError(err)
	s.Equal(dice.DefaultV5Difficulty, out.Result.Difficulty)
	s.Equal(0, out.Result.Successes)
	s.Equal(v5.ResultFailure, out.Result.Result)
}

func (s *OrchestratorTestSuite) TestRollV5OpposedDifficulty() {
	svc := s.orchestrator(1, 2)

	out, err := svc.RollV5(s.ctx, &dice.RollV5Input{Pool: 2, Difficulty: intPtr(0)})
	s.Require().NoError(err)
	s.Equal(0, out.Result.Difficulty)
	s.Equal(v5.ResultSuccess, out.Result.Result)
}

func (s *OrchestratorTestSuite) TestRollV5BloodSurge() {
	svc := s.orchestrator(2)

	out, err := svc.RollV5(s.ctx, &dice.RollV5Input{Pool: 2, BloodSurge: true, BloodPotency: 3})
	s.Require().NoError(err)
	s.Equal(v5.BloodSurgePool(2, 3), out.Result.Pool())

	_, err = svc.RollV5(s.ctx, &dice.RollV5Input{Pool: 2, BloodSurge: true, BloodPotency: 11})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestWillpowerRollDefaultDifficulty() {
	svc := s.orchestrator(5, 4)

	out, err := svc.WillpowerRoll(s.ctx, &dice.WillpowerRollInput{Willpower: 2})
	s.Require().NoError(err)
	s.Equal(dice.DefaultV5Difficulty, out.Result.Difficulty)
	s.Equal(v5.ResultFailure, out.Result.Result)
}

func (s *OrchestratorTestSuite) TestRemorseCheck() {
	svc := s.orchestrator(2, 3, 4)

	out, err := svc.RemorseCheck(s.ctx, &dice.RemorseCheckInput{Humanity: 7, Stains: 4})
	s.Require().NoError(err)
	s.False(out.Result.Success)
	s.Equal(3, out.Result.Roll.Pool())

	_, err = svc.RemorseCheck(s.ctx, &dice.RemorseCheckInput{Humanity: 11})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestContestedV5() {
	// attacker rolls two dice, then defender two
	svc := s.orchestrator(7, 8, 2, 6)

	out, err := svc.ContestedV5(s.ctx, &dice.ContestedV5Input{AttackerPool: 2, DefenderPool: 2})
	s.Require().NoError(err)
	s.Equal(rules.WinnerAttacker, out.Result.Winner)
	s.Equal(1, out.Result.Margin)
}

func (s *OrchestratorTestSuite) TestRollV20DefaultDifficulty() {
	svc := s.orchestrator(7, 8, 1)

	out, err := svc.RollV20(s.ctx, &dice.RollV20Input{Pool: 3})
	s.Require().NoError(err)
	s.Equal(v20.DefaultDifficulty, out.Result.Difficulty)
	s.Equal(1, out.Result.Successes)
	s.Equal(1, out.Result.Ones)
	s.Equal(v20.ResultSuccess, out.Result.Result)
}

func (s *OrchestratorTestSuite) TestRollV20Botch() {
	svc := s.orchestrator(1, 3)

	out, err := svc.RollV20(s.ctx, &dice.RollV20Input{Pool: 2, Difficulty: 6})
	s.Require().NoError(err)
	s.Equal(v20.ResultBotch, out.Result.Result)
	s.Equal(0, out.Result.Successes)
}

func (s *OrchestratorTestSuite) TestRollV20Validation() {
	svc := s.orchestrator()

	_, err := svc.RollV20(s.ctx, &dice.RollV20Input{Pool: 3, Difficulty: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.RollV20(s.ctx, &dice.RollV20Input{Pool: 3, Difficulty: 11})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.RollV20(s.ctx, &dice.RollV20Input{Pool: -1})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestExtendedV20() {
	svc := s.orchestrator(8, 9, 7, 6)

	out, err := svc.ExtendedV20(s.ctx, &dice.ExtendedV20Input{Pool: 2, Difficulty: 6, Target: 3})
	s.Require().NoError(err)
	s.True(out.Result.Success)
	s.Equal(2, out.Result.RollsTaken)
	s.Equal(4, out.Result.TotalSuccesses)

	_, err = svc.ExtendedV20(s.ctx, &dice.ExtendedV20Input{Pool: 2, Target: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestResistedV20() {
	svc := s.orchestrator(7, 7, 2, 2)

	out, err := svc.ResistedV20(s.ctx, &dice.ResistedV20Input{AttackerPool: 2, DefenderPool: 2})
	s.Require().NoError(err)
	s.Equal(rules.WinnerAttacker, out.Result.Winner)
	s.Equal(2, out.Result.NetSuccesses)
}

func (s *OrchestratorTestSuite) TestDamageV20() {
	svc := s.orchestrator(9, 6, 2)

	out, err := svc.DamageV20(s.ctx, &dice.DamageV20Input{Pool: 3, Aggravated: true})
	s.Require().NoError(err)
	s.Equal(2, out.Result.DamageDealt)
	s.Equal(v20.DamageAggravated, out.Result.DamageType)
	s.False(out.Result.Botched)
}

func (s *OrchestratorTestSuite) TestSoakV20() {
	svc := s.orchestrator(6, 7)

	out, err := svc.SoakV20(s.ctx, &dice.SoakV20Input{Stamina: 2, DamageType: v20.DamageBashing})
	s.Require().NoError(err)
	s.True(out.Result.CanSoak)
	s.Equal(2, out.Result.DamageSoaked)

	out, err = svc.SoakV20(s.ctx, &dice.SoakV20Input{Stamina: 3, DamageType: v20.DamageLethal})
	s.Require().NoError(err)
	s.False(out.Result.CanSoak)
	s.Nil(out.Result.Roll)

	_, err = svc.SoakV20(s.ctx, &dice.SoakV20Input{Stamina: 3, DamageType: v20.DamageType(9)})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListRolls() {
	svc := s.orchestrator(7)
	rc := history.RollContext{ChronicleID: "chronicle_1"}

	first, err := svc.RollV20(s.ctx, &dice.RollV20Input{RollContext: rc, Pool: 1})
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := svc.RollV5(s.ctx, &dice.RollV5Input{RollContext: rc, Pool: 1})
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	_, err = svc.RollV5(s.ctx, &dice.RollV5Input{
		RollContext: history.RollContext{ChronicleID: "chronicle_1", Secret: true},
		Pool:        1,
	})
	s.Require().NoError(err)

	out, err := svc.ListRolls(s.ctx, &dice.ListRollsInput{ChronicleID: "chronicle_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, 2)
	s.Equal(second.RollID, out.Rolls[0].ID)
	s.Equal(history.SystemV5, out.Rolls[0].System)
	s.Equal(first.RollID, out.Rolls[1].ID)
	s.Equal(history.SystemV20, out.Rolls[1].System)

	out, err = svc.ListRolls(s.ctx, &dice.ListRollsInput{ChronicleID: "chronicle_1", IncludeSecret: true, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, 1)
	s.True(out.Rolls[0].Secret)

	_, err = svc.ListRolls(s.ctx, &dice.ListRollsInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestNewOrchestratorValidation(t *testing.T) {
	_, err := dice.NewOrchestrator(&dice.Config{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func intPtr(v int) *int {
	return &v
}
