package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/domain/repository"
)

// memStore backs both repositories so expenses can load their owner and cascade on user delete.
type memStore struct {
	mu       sync.Mutex
	now      func() time.Time
	users    map[string]entity.User
	expenses map[string]entity.Expense
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{now: now, users: map[string]entity.User{}, expenses: map[string]entity.Expense{}}
}

type memTx struct{}

func (memTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memUsers struct{ s *memStore }

func (r memUsers) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r memUsers) FindBy(_ context.Context, column string, value any, _ []string, all bool) ([]entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entity.User
	for _, u := range r.s.users {
		var v string
		switch column {
		case entity.UserColumnEmail:
			v = u.Email
		case entity.UserColumnName:
			v = u.Name
		}
		if v == value {
			out = append(out, u)
			if !all {
				break
			}
		}
	}
	return out, nil
}

func (r memUsers) EmailTaken(_ context.Context, email, exceptID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, u := range r.s.users {
		if u.Email == email && id != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt, u.UpdatedAt = r.s.now(), r.s.now()
	r.s.users[u.ID] = *u
	return nil
}

func (r memUsers) Update(_ context.Context, id string, changes map[string]any) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return false, nil
	}
	for k, v := range changes {
		switch k {
		case entity.UserColumnName:
			u.Name = v.(string)
		case entity.UserColumnEmail:
			u.Email = v.(string)
		case entity.UserColumnPassword:
			u.Password = v.(string)
		}
	}
	u.UpdatedAt = r.s.now()
	r.s.users[id] = u
	return true, nil
}

func (r memUsers) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	for eid, e := range r.s.expenses {
		if e.UserID == id {
			delete(r.s.expenses, eid)
		}
	}
	return true, nil
}

type memExpenses struct{ s *memStore }

func (r memExpenses) withOwner(e entity.Expense) *entity.Expense {
	if u, ok := r.s.users[e.UserID]; ok {
		e.User = &u
	}
	return &e
}

func (r memExpenses) FindByID(_ context.Context, id string) (*entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.expenses[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.withOwner(e), nil
}

func (r memExpenses) FindOwnedByIDs(_ context.Context, ownerID string, ids []string) ([]entity.Expense, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entity.Expense{}
	for _, id := range ids {
		if e, ok := r.s.expenses[id]; ok && e.UserID == ownerID {
			out = append(out, *r.withOwner(e))
		}
	}
	return out, nil
}

func (r memExpenses) Create(_ context.Context, e *entity.Expense) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt, e.UpdatedAt = r.s.now(), r.s.now()
	r.s.expenses[e.ID] = *e
	return nil
}

func (r memExpenses) Update(_ context.Context, id string, changes map[string]any) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.expenses[id]
	if !ok {
		return false, nil
	}
	for k, v := range changes {
		switch k {
		case entity.ExpenseColumnDescription:
			e.Description = v.(string)
		case entity.ExpenseColumnPrice:
			e.Price = v.(decimal.Decimal)
		case entity.ExpenseColumnDate:
			e.Date = v.(time.Time)
		}
	}
	e.UpdatedAt = r.s.now()
	r.s.expenses[id] = e
	return true, nil
}

func (r memExpenses) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.expenses[id]; !ok {
		return false, nil
	}
	delete(r.s.expenses, id)
	return true, nil
}

// memIndex matches descriptions case-insensitively, newest date first.
type memIndex struct{ s *memStore }

func (memIndex) Index(context.Context, *entity.Expense) error { return nil }
func (memIndex) Remove(context.Context, string) error         { return nil }

func (i memIndex) Search(_ context.Context, userID, q string, size int) ([]string, error) {
	i.s.mu.Lock()
	defer i.s.mu.Unlock()
	var hits []entity.Expense
	for _, e := range i.s.expenses {
		if e.UserID == userID && strings.Contains(strings.ToLower(e.Description), strings.ToLower(q)) {
			hits = append(hits, e)
		}
	}
	sort.Slice(hits, func(a, b int) bool { return hits[a].Date.After(hits[b].Date) })
	ids := make([]string, 0, len(hits))
	for n, e := range hits {
		if n == size {
			break
		}
		ids = append(ids, e.ID)
	}
	return ids, nil
}
