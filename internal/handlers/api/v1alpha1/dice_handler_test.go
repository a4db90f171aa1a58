package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/vtm-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/vtm-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/vtm-api/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/vtm-api/internal/orchestrators/history"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	"github.com/KirkDiggler/vtm-api/internal/rules/v20"
	"github.com/KirkDiggler/vtm-api/internal/rules/v5"
)

type DiceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *dicemock.MockService
	handler     *v1alpha1.DiceHandler
	ctx         context.Context
}

func TestDiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DiceHandlerTestSuite))
}

func (s *DiceHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = dicemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *DiceHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DiceHandlerTestSuite) TestNewDiceHandlerRequiresService() {
	_, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceHandlerTestSuite) TestRollV5() {
	result := &v5.RollResult{
		RegularDice: []int{10, 7},
		HungerDice:  []int{10},
		Difficulty:  3,
		Successes:   5,
		Result:      v5.ResultMessyCritical,
		Margin:      2,
	}

	s.mockService.EXPECT().
		RollV5(s.ctx, &dice.RollV5Input{
			RollContext: history.RollContext{
				ChronicleID: "chronicle_1",
				CharacterID: "char_1",
				Description: "Intimidate the sheriff",
			},
			Pool:       3,
			Hunger:     1,
			Difficulty: intPtr(3),
		}).
		Return(&dice.RollV5Output{Result: result, RollID: "roll_1"}, nil)

	resp, err := s.handler.RollV5(s.ctx, &v1alpha1.RollV5Request{
		Context: &v1alpha1.RollContext{
			ChronicleID: "chronicle_1",
			CharacterID: "char_1",
			Description: "Intimidate the sheriff",
		},
		Pool:       3,
		Hunger:     1,
		Difficulty: intPtr(3),
	})
	s.Require().NoError(err)
	s.Equal(result, resp.Result)
	s.Equal("roll_1", resp.RollID)
}

func (s *DiceHandlerTestSuite) TestRollV5WithoutContext() {
	s.mockService.EXPECT().
		RollV5(s.ctx, &dice.RollV5Input{Pool: 1}).
		Return(&dice.RollV5Output{Result: &v5.RollResult{RegularDice: []int{4}}}, nil)

	resp, err := s.handler.RollV5(s.ctx, &v1alpha1.RollV5Request{Pool: 1})
	s.Require().NoError(err)
	s.Empty(resp.RollID)
}

func (s *DiceHandlerTestSuite) TestRollV5ValidationError() {
	s.mockService.EXPECT().
		RollV5(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("validation failed"))

	resp, err := s.handler.RollV5(s.ctx, &v1alpha1.RollV5Request{Pool: 2, Hunger: 3})
	s.Nil(resp)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *DiceHandlerTestSuite) TestRollV20() {
	result := &v20.RollResult{Dice: []int{8, 9, 1}, Difficulty: 6, Successes: 1, Result: v20.ResultSuccess}

	s.mockService.EXPECT().
		RollV20(s.ctx, &dice.RollV20Input{Pool: 3, Specialty: true}).
		Return(&dice.RollV20Output{Result: result}, nil)

	resp, err := s.handler.RollV20(s.ctx, &v1alpha1.RollV20Request{Pool: 3, Specialty: true})
	s.Require().NoError(err)
	s.Equal(result, resp.Result)
}

func (s *DiceHandlerTestSuite) TestSoakV20ParsesDamageType() {
	s.mockService.EXPECT().
		SoakV20(s.ctx, &dice.SoakV20Input{Stamina: 3, Fortitude: 2, DamageType: v20.DamageAggravated}).
		Return(&dice.SoakV20Output{Result: &v20.SoakResult{}}, nil)

	_, err := s.handler.SoakV20(s.ctx, &v1alpha1.SoakV20Request{
		Stamina:    3,
		Fortitude:  2,
		DamageType: "aggravated",
	})
	s.Require().NoError(err)
}

func (s *DiceHandlerTestSuite) TestSoakV20DefaultsToBashing() {
	s.mockService.EXPECT().
		SoakV20(s.ctx, &dice.SoakV20Input{Stamina: 2, DamageType: v20.DamageBashing}).
		Return(&dice.SoakV20Output{Result: &v20.SoakResult{}}, nil)

	_, err := s.handler.SoakV20(s.ctx, &v1alpha1.SoakV20Request{Stamina: 2})
	s.Require().NoError(err)
}

func (s *DiceHandlerTestSuite) TestSoakV20UnknownDamageType() {
	resp, err := s.handler.SoakV20(s.ctx, &v1alpha1.SoakV20Request{Stamina: 2, DamageType: "fire"})
	s.Nil(resp)
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Contains(status.Convert(err).Message(), "fire")
}

func (s *DiceHandlerTestSuite) TestListRolls() {
	rolls := []*rolllog.Entry{{ID: "roll_2", ChronicleID: "chronicle_1"}, {ID: "roll_1", ChronicleID: "chronicle_1"}}

	s.mockService.EXPECT().
		ListRolls(s.ctx, &dice.ListRollsInput{ChronicleID: "chronicle_1", Limit: 2, IncludeSecret: true}).
		Return(&dice.ListRollsOutput{Rolls: rolls}, nil)

	resp, err := s.handler.ListRolls(s.ctx, &v1alpha1.ListRollsRequest{
		ChronicleID:   "chronicle_1",
		Limit:         2,
		IncludeSecret: true,
	})
	s.Require().NoError(err)
	s.Equal(rolls, resp.Rolls)
}

func (s *DiceHandlerTestSuite) TestListRollsRequiresChronicle() {
	_, err := s.handler.ListRolls(s.ctx, &v1alpha1.ListRollsRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *DiceHandlerTestSuite) TestListRollsUnavailable() {
	s.mockService.EXPECT().
		ListRolls(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("roll log unavailable"))

	_, err := s.handler.ListRolls(s.ctx, &v1alpha1.ListRollsRequest{ChronicleID: "chronicle_1"})
	s.Equal(codes.Unavailable, status.Code(err))
}

func intPtr(v int) *int {
	return &v
}
