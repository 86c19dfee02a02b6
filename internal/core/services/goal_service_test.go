package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoalRepository
	now      time.Time
	service  portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoalRepository)
	suite.now = time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC)
	suite.service = services.NewGoalService(suite.mockRepo, services.WithGoalClock(fixedClock(suite.now)))
}

func strPtr(s string) *string { return &s }

func (suite *GoalServiceTestSuite) TestCreateGoal_WithOptionalFields() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:        "Laptop",
		Target:      "15000000",
		Current:     "500000",
		Deadline:    strPtr("2024-12-31"),
		Description: strPtr(""),
	}

	suite.mockRepo.On("SaveGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Name == "Laptop" && g.Target.Equal(dec("15000000")) && g.Current.Equal(dec("500000")) &&
			g.Deadline != nil && g.Deadline.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) &&
			g.Description == nil
	}), suite.now).Return(int64(11), nil).Once()

	goal, err := suite.service.CreateGoal(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(11), goal.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Validation() {
	ctx := context.Background()
	tests := []struct {
		req   dto.CreateGoalRequest
		field string
	}{
		{dto.CreateGoalRequest{Target: "10"}, "name"},
		{dto.CreateGoalRequest{Name: "n"}, "target"},
		{dto.CreateGoalRequest{Name: "n", Target: "0"}, "target"},
		{dto.CreateGoalRequest{Name: "n", Target: "10", Current: "-1"}, "current"},
		{dto.CreateGoalRequest{Name: "n", Target: "10", Deadline: strPtr("someday")}, "deadline"},
	}
	for _, tt := range tests {
		_, err := suite.service.CreateGoal(ctx, tt.req)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Equal(tt.field, apperrors.FieldOf(err))
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGoal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_PartialFields() {
	ctx := context.Background()
	req := dto.UpdateGoalRequest{
		Name:        "Car",
		Target:      "100",
		Deadline:    validation.OptionalString{Set: true},
		Description: validation.OptionalString{Set: true, Value: strPtr("new")},
	}

	suite.mockRepo.On("UpdateGoal", ctx, int64(2), mock.MatchedBy(func(u domain.GoalUpdate) bool {
		return u.Name == "Car" && u.Current == nil && u.DeadlineSet && u.Deadline == nil &&
			u.DescriptionSet && u.Description != nil && *u.Description == "new"
	}), suite.now).Return(nil).Once()

	suite.Require().NoError(suite.service.UpdateGoal(ctx, 2, req))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_PassesThroughRepositoryValidation() {
	ctx := context.Background()
	req := dto.UpdateGoalRequest{Name: "Car", Target: "100", Current: "5"}
	suite.mockRepo.On("UpdateGoal", ctx, int64(2), mock.Anything, suite.now).
		Return(apperrors.NewValidationError("current", "current cannot decrease")).Once()

	err := suite.service.UpdateGoal(ctx, 2, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("current", apperrors.FieldOf(err))
}

func (suite *GoalServiceTestSuite) TestContribute_Success() {
	ctx := context.Background()
	expected := &domain.Contribution{ID: 30, GoalID: 1, Amount: dec("250"), Date: suite.now}
	suite.mockRepo.On("AddContribution", ctx, int64(1), dec("250"), suite.now).Return(expected, nil).Once()

	contribution, err := suite.service.Contribute(ctx, 1, dto.ContributeRequest{Amount: "250"})

	suite.Require().NoError(err)
	suite.Equal(expected, contribution)
}

func (suite *GoalServiceTestSuite) TestContribute_GoalNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("AddContribution", ctx, int64(404), mock.Anything, mock.Anything).
		Return(nil, apperrors.NewNotFoundError("Goal not found")).Once()

	_, err := suite.service.Contribute(ctx, 404, dto.ContributeRequest{Amount: "1"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestContribute_InvalidAmount() {
	for _, amount := range []string{"0", "-3", "ten", ""} {
		_, err := suite.service.Contribute(context.Background(), 1, dto.ContributeRequest{Amount: validation.Number(amount)})
		suite.ErrorIs(err, apperrors.ErrValidation, amount)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "AddContribution", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestListContributions_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("ListContributions", ctx, int64(8)).Return(nil, apperrors.NewNotFoundError("Goal not found")).Once()

	_, err := suite.service.ListContributions(ctx, 8)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
