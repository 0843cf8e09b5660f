package application

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/internal/domain/policy"
	repo "github.com/oksasatya/go-expense-tracker/internal/domain/repository"
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/helpers"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
	sideEffectTimeout = 10 * time.Second
)

type ExpenseService struct {
	Repo    repo.ExpenseRepository
	Users   *UserService
	Tx      repo.TxManager
	Clock   helpers.Clock
	Events  EventPublisher
	Index   ExpenseIndexer
	Policy  policy.ExpensePolicy
	Logger  logrus.FieldLogger
	pending sync.WaitGroup
}

func NewExpenseService(expenses repo.ExpenseRepository, users *UserService, tx repo.TxManager, clock helpers.Clock, events EventPublisher, index ExpenseIndexer, logger logrus.FieldLogger) *ExpenseService {
	return &ExpenseService{
		Repo:   expenses,
		Users:  users,
		Tx:     tx,
		Clock:  clock,
		Events: events,
		Index:  index,
		Logger: logger,
	}
}

// Find returns the expense with its owner. found is false when no such expense exists.
func (s *ExpenseService) Find(ctx context.Context, id string) (*entity.Expense, bool, error) {
	if !validID(id) {
		return nil, false, apperror.ErrInvalidParameter
	}
	e, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}

// validateExpense checks the fields that are present.
func (s *ExpenseService) validateExpense(description *string, price *decimal.Decimal, date *time.Time) error {
	if description != nil && utf8.RuneCountInString(*description) > messages.MaxDescriptionLength {
		return apperror.Business(messages.DescriptionMaxLength())
	}
	if price != nil {
		rounded := entity.RoundPrice(*price)
		if !rounded.IsPositive() {
			return apperror.Business(messages.PriceInvalid())
		}
		if rounded.GreaterThan(entity.MaxPrice) {
			return apperror.Business(messages.PriceTooLarge())
		}
	}
	if date != nil && date.After(s.Clock.Now()) {
		return apperror.Business(messages.DateInvalid())
	}
	return nil
}

func (s *ExpenseService) Create(ctx context.Context, dto StoreExpenseDTO) (*entity.Expense, error) {
	if err := s.validateExpense(&dto.Description, &dto.Price, &dto.Date); err != nil {
		return nil, err
	}
	owner, found, err := s.Users.Find(ctx, dto.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrResourceNotFound
	}

	e := &entity.Expense{
		UserID:      owner.ID,
		Description: dto.Description,
		Price:       entity.RoundPrice(dto.Price),
		Date:        dto.Date,
	}
	if err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Create(ctx, e)
	}); err != nil {
		return nil, err
	}
	e.User = owner

	snapshot := copyExpense(e)
	s.afterCommit(ctx, "expense created", e.ID, func(ctx context.Context) error {
		var errs []error
		if s.Events != nil {
			errs = append(errs, s.Events.ExpenseCreated(ctx, snapshot))
		}
		if s.Index != nil {
			errs = append(errs, s.Index.Index(ctx, snapshot))
		}
		return errors.Join(errs...)
	})
	return e, nil
}

// Update applies the non-empty fields of dto on behalf of dto.UserID.
func (s *ExpenseService) Update(ctx context.Context, dto UpdateExpenseDTO) (*entity.Expense, error) {
	if err := s.validateExpense(dto.Description, dto.Price, dto.Date); err != nil {
		return nil, err
	}
	_, found, err := s.Users.Find(ctx, dto.UserID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrResourceNotFound
	}
	current, found, err := s.Find(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrResourceNotFound
	}
	if err := s.Policy.Update(dto.UserID, current); err != nil {
		return nil, err
	}
	if dto.Mode == Replace && (!filled(dto.Description) || dto.Price == nil || dto.Date == nil) {
		return nil, apperror.ErrInvalidParameter
	}

	changes := map[string]any{}
	if filled(dto.Description) {
		changes[entity.ExpenseColumnDescription] = *dto.Description
	}
	if dto.Price != nil {
		changes[entity.ExpenseColumnPrice] = entity.RoundPrice(*dto.Price)
	}
	if dto.Date != nil {
		changes[entity.ExpenseColumnDate] = *dto.Date
	}

	var updated *entity.Expense
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		ok, err := s.Repo.Update(ctx, current.ID, changes)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.ErrGeneric
		}
		updated, err = s.Repo.FindByID(ctx, current.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.Index != nil && len(changes) > 0 {
		snapshot := copyExpense(updated)
		s.afterCommit(ctx, "expense reindex", updated.ID, func(ctx context.Context) error {
			return s.Index.Index(ctx, snapshot)
		})
	}
	return updated, nil
}

func (s *ExpenseService) Destroy(ctx context.Context, id string) (bool, error) {
	_, found, err := s.Find(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, apperror.ErrResourceNotFound
	}

	var deleted bool
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		deleted, err = s.Repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}

	if deleted && s.Index != nil {
		s.afterCommit(ctx, "expense unindex", id, func(ctx context.Context) error {
			return s.Index.Remove(ctx, id)
		})
	}
	return deleted, nil
}

// Search returns userID's expenses whose description matches q.
// Without a search index it returns an empty list.
func (s *ExpenseService) Search(ctx context.Context, userID, q string, size int) ([]entity.Expense, error) {
	if s.Index == nil {
		return []entity.Expense{}, nil
	}
	if size <= 0 {
		size = defaultSearchSize
	}
	if size > maxSearchSize {
		size = maxSearchSize
	}
	ids, err := s.Index.Search(ctx, userID, q, size)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, messages.GenericError, err)
	}
	expenses, err := s.Repo.FindOwnedByIDs(ctx, userID, ids)
	if err != nil {
		return nil, err
	}
	if expenses == nil {
		expenses = []entity.Expense{}
	}
	return expenses, nil
}

// Wait blocks until pending side effects have finished.
func (s *ExpenseService) Wait() {
	s.pending.Wait()
}

// afterCommit runs fn in the background with a context detached from the request.
// Failures are logged and never reach the caller.
func (s *ExpenseService) afterCommit(ctx context.Context, what, expenseID string, fn func(ctx context.Context) error) {
	bg := context.WithoutCancel(ctx)
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		c, cancel := context.WithTimeout(bg, sideEffectTimeout)
		defer cancel()
		if err := fn(c); err != nil {
			s.Logger.WithError(err).WithField("expense_id", expenseID).Warn(what + " side effect failed")
		}
	}()
}

func copyExpense(e *entity.Expense) *entity.Expense {
	c := *e
	if e.User != nil {
		u := *e.User
		c.User = &u
	}
	return &c
}
