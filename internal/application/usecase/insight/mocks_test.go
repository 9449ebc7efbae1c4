package insight

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/finance-tracker/insights/internal/domain/entity"
)

type mockTransactionRepository struct {
	mock.Mock
}

func (m *mockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return m.Called(ctx, transaction).Error(0)
}

func (m *mockTransactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

type mockGoalRepository struct {
	mock.Mock
}

func (m *mockGoalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *mockGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Goal), args.Error(1)
}

type mockBudgetRepository struct {
	mock.Mock
}

func (m *mockBudgetRepository) GetMonthlyBudget(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockBudgetRepository) SetMonthlyBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	return m.Called(ctx, userID, amount).Error(0)
}

type mockRecurringItemRepository struct {
	mock.Mock
}

func (m *mockRecurringItemRepository) Create(ctx context.Context, item *entity.RecurringItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockRecurringItemRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RecurringItem), args.Error(1)
}

type mockSharedExpenseRepository struct {
	mock.Mock
}

func (m *mockSharedExpenseRepository) CreateParticipant(ctx context.Context, participant *entity.SharedExpenseParticipant) error {
	return m.Called(ctx, participant).Error(0)
}

func (m *mockSharedExpenseRepository) FindParticipantsByCreditor(ctx context.Context, userID uuid.UUID) ([]*entity.SharedExpenseParticipant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SharedExpenseParticipant), args.Error(1)
}

type mockInsightStore struct {
	mock.Mock
}

func (m *mockInsightStore) Replace(ctx context.Context, userID uuid.UUID, insights []*entity.Insight) error {
	return m.Called(ctx, userID, insights).Error(0)
}

func (m *mockInsightStore) List(ctx context.Context, userID uuid.UUID) ([]*entity.Insight, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Insight), args.Error(1)
}

func (m *mockInsightStore) MarkAsRead(ctx context.Context, userID, insightID uuid.UUID) error {
	return m.Called(ctx, userID, insightID).Error(0)
}

func (m *mockInsightStore) Dismiss(ctx context.Context, userID, insightID uuid.UUID) error {
	return m.Called(ctx, userID, insightID).Error(0)
}

// repos bundles the mocked sources of a SnapshotLoader.
type repos struct {
	transactions *mockTransactionRepository
	categories   *mockCategoryRepository
	goals        *mockGoalRepository
	budget       *mockBudgetRepository
	recurring    *mockRecurringItemRepository
	shared       *mockSharedExpenseRepository
}

func newRepos() *repos {
	return &repos{
		transactions: new(mockTransactionRepository),
		categories:   new(mockCategoryRepository),
		goals:        new(mockGoalRepository),
		budget:       new(mockBudgetRepository),
		recurring:    new(mockRecurringItemRepository),
		shared:       new(mockSharedExpenseRepository),
	}
}

func (r *repos) loader() *SnapshotLoader {
	return NewSnapshotLoader(r.transactions, r.categories, r.goals, r.budget, r.recurring, r.shared)
}

// empty stubs every source with an empty result for userID.
func (r *repos) empty(userID uuid.UUID) *repos {
	r.transactions.On("FindByUser", mock.Anything, userID).Return([]*entity.Transaction{}, nil)
	r.categories.On("FindByUser", mock.Anything, userID).Return([]*entity.Category{}, nil)
	r.goals.On("FindByUserID", mock.Anything, userID).Return([]*entity.Goal{}, nil)
	r.budget.On("GetMonthlyBudget", mock.Anything, userID).Return(decimal.Zero, nil)
	r.recurring.On("FindByUser", mock.Anything, userID).Return([]*entity.RecurringItem{}, nil)
	r.shared.On("FindParticipantsByCreditor", mock.Anything, userID).Return([]*entity.SharedExpenseParticipant{}, nil)
	return r
}
