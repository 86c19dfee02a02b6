package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/handlers"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlerSuite struct {
	suite.Suite
	router       *gin.Engine
	transactions *MockTransactionService
	budgets      *MockBudgetService
	goals        *MockGoalService
	reports      *MockReportingService
	health       *MockHealthService
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.transactions = new(MockTransactionService)
	s.budgets = new(MockBudgetService)
	s.goals = new(MockGoalService)
	s.reports = new(MockReportingService)
	s.health = new(MockHealthService)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{APIPrefix: "/api", IsProduction: true}, &portssvc.ServiceContainer{
		Transaction: s.transactions,
		Budget:      s.budgets,
		Goal:        s.goals,
		Reporting:   s.reports,
		Health:      s.health,
	})
}

func (s *HandlerSuite) TearDownTest() {
	s.transactions.AssertExpectations(s.T())
	s.budgets.AssertExpectations(s.T())
	s.goals.AssertExpectations(s.T())
	s.reports.AssertExpectations(s.T())
	s.health.AssertExpectations(s.T())
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var res dto.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func (s *HandlerSuite) TestHealth() {
	s.health.On("Ping", mock.Anything).Return(nil).Once()
	w := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())

	s.health.On("Ping", mock.Anything).Return(errors.New("disk gone")).Once()
	w = s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *HandlerSuite) TestCreateTransaction_Created() {
	s.transactions.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Type == "expense" && string(req.Amount) == "12.5" && req.Category == "Food"
	})).Return(&domain.Transaction{ID: 42}, nil).Once()

	w := s.do(http.MethodPost, "/api/transactions", `{"type":"expense","amount":12.5,"category":"Food","date":"2024-03-01"}`)

	s.Equal(http.StatusCreated, w.Code)
	s.JSONEq(`{"id":42}`, w.Body.String())
}

func (s *HandlerSuite) TestCreateTransaction_MissingFieldNeverReachesService() {
	w := s.do(http.MethodPost, "/api/transactions", `{"type":"expense","amount":12.5,"date":"2024-03-01"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	res := s.decodeError(w)
	s.Equal("category", res.Field)
	s.Equal("Missing required fields: category", res.Error)
	s.transactions.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (s *HandlerSuite) TestCreateTransaction_BadType() {
	w := s.do(http.MethodPost, "/api/transactions", `{"type":"transfer","amount":1,"category":"x","date":"2024-03-01"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("type", s.decodeError(w).Field)
}

func (s *HandlerSuite) TestCreateTransaction_ServiceValidationError() {
	s.transactions.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("amount", "Invalid amount")).Once()

	w := s.do(http.MethodPost, "/api/transactions", `{"type":"income","amount":"-3","category":"Salary","date":"2024-03-01"}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(dto.ErrorResponse{Error: "Invalid amount", Field: "amount"}, s.decodeError(w))
}

func (s *HandlerSuite) TestListTransactions_SetsNextToken() {
	date := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	s.transactions.On("ListTransactions", mock.Anything, dto.ListTransactionsParams{Limit: "1"}).
		Return([]domain.Transaction{{ID: 1, Type: domain.Income, Amount: decimal.NewFromInt(5), Category: "Gift", Date: date}}, "tok", nil).Once()

	w := s.do(http.MethodGet, "/api/transactions?limit=1", "")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("tok", w.Header().Get(handlers.NextTokenHeader))
	s.JSONEq(`[{"id":1,"type":"income","amount":5,"category":"Gift","description":"","date":"2024-03-01T10:00:00.000Z"}]`, w.Body.String())
}

func (s *HandlerSuite) TestListTransactions_EmptyIsArray() {
	s.transactions.On("ListTransactions", mock.Anything, dto.ListTransactionsParams{}).
		Return([]domain.Transaction{}, "", nil).Once()

	w := s.do(http.MethodGet, "/api/transactions", "")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("[]", w.Body.String())
	s.Empty(w.Header().Get(handlers.NextTokenHeader))
}

func (s *HandlerSuite) TestUpdateTransaction_InvalidID() {
	w := s.do(http.MethodPut, "/api/transactions/12abc", `{"description":"x","amount":1}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(dto.ErrorResponse{Error: "Invalid ID format", Field: "id"}, s.decodeError(w))
}

func (s *HandlerSuite) TestUpdateTransaction_NotFound() {
	s.transactions.On("UpdateTransaction", mock.Anything, int64(9), mock.Anything).
		Return(nil, apperrors.NewNotFoundError("Transaction not found")).Once()

	w := s.do(http.MethodPut, "/api/transactions/9", `{"description":"x","amount":1}`)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Transaction not found", s.decodeError(w).Error)
}

func (s *HandlerSuite) TestUpdateTransaction_OK() {
	s.transactions.On("UpdateTransaction", mock.Anything, int64(3), mock.Anything).
		Return(&domain.Transaction{ID: 3}, nil).Once()

	w := s.do(http.MethodPut, "/api/transactions/3", `{"description":"Lunch","amount":"8.40"}`)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"changes":1,"message":"Transaction updated successfully"}`, w.Body.String())
}

func (s *HandlerSuite) TestDeleteTransaction_InternalError() {
	s.transactions.On("DeleteTransaction", mock.Anything, int64(4)).Return(errors.New("database is locked")).Once()

	w := s.do(http.MethodDelete, "/api/transactions/4", "")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal("database is locked", s.decodeError(w).Error)
}

func (s *HandlerSuite) TestRecomputeBudgets() {
	s.budgets.On("RecomputeSpent", mock.Anything).Return(int64(3), nil).Once()

	w := s.do(http.MethodPost, "/api/budgets/recompute", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"updated":3,"message":"Budget spending recomputed successfully"}`, w.Body.String())
}

func (s *HandlerSuite) TestUpdateBudgetSpent_NotFound() {
	s.budgets.On("UpdateBudgetSpent", mock.Anything, int64(77), mock.Anything).
		Return(apperrors.NewNotFoundError("Budget not found")).Once()

	w := s.do(http.MethodPut, "/api/budgets/77/spent", `{"spent":10}`)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerSuite) TestContribute_MissingGoal() {
	s.goals.On("Contribute", mock.Anything, int64(5), mock.Anything).
		Return(nil, apperrors.NewNotFoundError("Goal not found")).Once()

	w := s.do(http.MethodPost, "/api/goals/5/contribute", `{"amount":10}`)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Goal not found", s.decodeError(w).Error)
}

func (s *HandlerSuite) TestContribute_OK() {
	s.goals.On("Contribute", mock.Anything, int64(5), dto.ContributeRequest{Amount: "25"}).
		Return(&domain.Contribution{ID: 11, GoalID: 5}, nil).Once()

	w := s.do(http.MethodPost, "/api/goals/5/contribute", `{"amount":25}`)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true,"message":"Contribution added successfully","contribution_id":11}`, w.Body.String())
}

func (s *HandlerSuite) TestMonthlyReport_BadYear() {
	s.reports.On("MonthlySummary", mock.Anything, dto.MonthlyReportParams{Year: "20x4"}).
		Return(nil, apperrors.NewValidationError("year", "Invalid year")).Once()

	w := s.do(http.MethodGet, "/api/reports/monthly?year=20x4", "")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("year", s.decodeError(w).Field)
}

func (s *HandlerSuite) TestCategoryReport_PassesPeriod() {
	s.reports.On("CategoryBreakdown", mock.Anything, dto.CategoryReportParams{Period: "week"}).
		Return([]domain.CategoryBreakdown{{Category: "Rent", Amount: decimal.NewFromInt(70), Percentage: decimal.NewFromInt(70)}}, nil).Once()

	w := s.do(http.MethodGet, "/api/reports/categories?period=week", "")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"category":"Rent","amount":70,"percentage":70}]`, w.Body.String())
}

func (s *HandlerSuite) TestSwaggerDisabledInProduction() {
	w := s.do(http.MethodGet, "/swagger/index.html", "")
	s.Equal(http.StatusNotFound, w.Code)
}
