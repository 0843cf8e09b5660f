package application_test

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
)

func nullLogger() logrus.FieldLogger {
	l, _ := test.NewNullLogger()
	return l
}

// passTx runs the unit of work inline.
type passTx struct{ calls int }

func (t *passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindBy(ctx context.Context, column string, value any, fields []string, all bool) ([]entity.User, error) {
	args := m.Called(ctx, column, value, fields, all)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) EmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	args := m.Called(ctx, email, exceptID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	args := m.Called(ctx, id, changes)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockExpenseRepo struct{ mock.Mock }

func (m *mockExpenseRepo) FindByID(ctx context.Context, id string) (*entity.Expense, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*entity.Expense)
	return e, args.Error(1)
}

func (m *mockExpenseRepo) FindOwnedByIDs(ctx context.Context, ownerID string, ids []string) ([]entity.Expense, error) {
	args := m.Called(ctx, ownerID, ids)
	out, _ := args.Get(0).([]entity.Expense)
	return out, args.Error(1)
}

func (m *mockExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockExpenseRepo) Update(ctx context.Context, id string, changes map[string]any) (bool, error) {
	args := m.Called(ctx, id, changes)
	return args.Bool(0), args.Error(1)
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// prefixHasher keeps tests fast and deterministic.
type prefixHasher struct{}

func (prefixHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (prefixHasher) Compare(hash, plain string) bool   { return hash == "hashed:"+plain }

type mockTokens struct{ mock.Mock }

func (m *mockTokens) Issue(userID string) (helpers.IssuedToken, error) {
	args := m.Called(userID)
	return args.Get(0).(helpers.IssuedToken), args.Error(1)
}

func (m *mockTokens) TTLMinutes() int {
	return m.Called().Int(0)
}

type mockSessions struct{ mock.Mock }

func (m *mockSessions) Save(ctx context.Context, userID, sid string, ttl time.Duration) error {
	return m.Called(ctx, userID, sid, ttl).Error(0)
}

func (m *mockSessions) RevokeUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockEvents struct{ mock.Mock }

func (m *mockEvents) ExpenseCreated(ctx context.Context, e *entity.Expense) error {
	return m.Called(ctx, e).Error(0)
}

type mockIndex struct{ mock.Mock }

func (m *mockIndex) Index(ctx context.Context, e *entity.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockIndex) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockIndex) Search(ctx context.Context, userID, q string, size int) ([]string, error) {
	args := m.Called(ctx, userID, q, size)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}
