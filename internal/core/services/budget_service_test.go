package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockBudgetRepository
	mockReporting *MockReportingRepository
	service       portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.mockReporting = new(MockReportingRepository)
	suite.service = services.NewBudgetService(suite.mockRepo, suite.mockReporting)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{Category: "Food", Name: "Groceries", Amount: "500"}

	suite.mockRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Category == "Food" && b.Name == "Groceries" && b.Amount.Equal(dec("500")) && b.Spent.IsZero()
	})).Return(int64(4), nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(4), budget.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Validation() {
	ctx := context.Background()
	for _, req := range []dto.CreateBudgetRequest{
		{Name: "n", Amount: "1"},
		{Category: "c", Amount: "1"},
		{Category: "c", Name: "n"},
		{Category: "c", Name: "n", Amount: "0"},
		{Category: "c", Name: "n", Amount: "x"},
	} {
		_, err := suite.service.CreateBudget(ctx, req)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudget_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("UpdateBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool { return b.ID == 9 })).
		Return(apperrors.NewNotFoundError("Budget not found")).Once()

	err := suite.service.UpdateBudget(ctx, 9, dto.UpdateBudgetRequest{Category: "c", Name: "n", Amount: "10"})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestUpdateBudgetSpent() {
	ctx := context.Background()
	suite.mockRepo.On("UpdateBudgetSpent", ctx, int64(2), dec("0")).Return(nil).Once()

	suite.Require().NoError(suite.service.UpdateBudgetSpent(ctx, 2, dto.UpdateBudgetSpentRequest{Spent: "0"}))

	err := suite.service.UpdateBudgetSpent(ctx, 2, dto.UpdateBudgetSpentRequest{Spent: "-1"})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal("spent", apperrors.FieldOf(err))

	err = suite.service.UpdateBudgetSpent(ctx, 2, dto.UpdateBudgetSpentRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget_InternalError() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteBudget", ctx, int64(1)).Return(assert.AnError).Once()

	err := suite.service.DeleteBudget(ctx, 1)

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetServiceTestSuite) TestListBudgetUsage_UsesLiveSpending() {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgets", ctx).Return([]domain.Budget{
		{ID: 1, Category: "Food", Amount: dec("400"), Spent: dec("0")},
		{ID: 2, Category: "Travel", Amount: dec("1000"), Spent: dec("50")},
	}, nil).Once()
	suite.mockReporting.On("GetExpenseTotalsByCategory", ctx, domain.DateRange{}).Return([]domain.CategoryTotal{
		{Category: "Food", Amount: dec("100")},
		{Category: "Other", Amount: dec("999")},
	}, nil).Once()

	usage, err := suite.service.ListBudgetUsage(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(usage, 2)
	suite.True(usage[0].LiveSpent.Equal(dec("100")))
	suite.True(usage[0].PercentUsed.Equal(dec("25")))
	suite.True(usage[1].LiveSpent.IsZero())
	suite.True(usage[1].Remaining.Equal(dec("1000")))
}

func (suite *BudgetServiceTestSuite) TestListBudgets_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgets", ctx).Return(nil, nil).Once()

	budgets, err := suite.service.ListBudgets(ctx)

	suite.Require().NoError(err)
	suite.NotNil(budgets)
	suite.Empty(budgets)
}

func (suite *BudgetServiceTestSuite) TestRecomputeSpent() {
	ctx := context.Background()
	suite.mockRepo.On("RecomputeSpent", ctx).Return(int64(3), nil).Once()

	updated, err := suite.service.RecomputeSpent(ctx)

	suite.Require().NoError(err)
	suite.Equal(int64(3), updated)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
