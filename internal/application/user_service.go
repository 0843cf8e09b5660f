package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	repo "github.com/oksasatya/go-expense-tracker/internal/domain/repository"
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
	"github.com/oksasatya/go-expense-tracker/pkg/validation"
)

type UserService struct {
	Repo     repo.UserRepository
	Tx       repo.TxManager
	Hasher   PasswordHasher
	Sessions SessionStore
	Logger   logrus.FieldLogger
}

func NewUserService(users repo.UserRepository, tx repo.TxManager, hasher PasswordHasher, sessions SessionStore, logger logrus.FieldLogger) *UserService {
	return &UserService{
		Repo:     users,
		Tx:       tx,
		Hasher:   hasher,
		Sessions: sessions,
		Logger:   logger,
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Find returns the user with id. found is false when no such user exists.
func (s *UserService) Find(ctx context.Context, id string) (*entity.User, bool, error) {
	if !validID(id) {
		return nil, false, apperror.ErrInvalidParameter
	}
	u, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

// FindBy looks users up by one of the fillable columns.
// fields limits the loaded columns ("*" for all); all=false returns at most one user.
func (s *UserService) FindBy(ctx context.Context, column string, value any, fields []string, all bool) ([]entity.User, bool, error) {
	if !entity.IsUserFillable(column) {
		return nil, false, apperror.ErrInvalidParameter
	}
	for _, f := range fields {
		if f != "*" && !isUserColumn(f) {
			return nil, false, apperror.ErrInvalidParameter
		}
	}
	users, err := s.Repo.FindBy(ctx, column, value, fields, all)
	if err != nil {
		return nil, false, err
	}
	return users, len(users) > 0, nil
}

func isUserColumn(c string) bool {
	for _, col := range entity.UserColumns {
		if col == c {
			return true
		}
	}
	return false
}

// EmailExists reports whether any user owns email.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	if !validation.IsEmail(email) {
		return false, apperror.ErrInvalidParameter
	}
	return s.Repo.EmailTaken(ctx, email, "")
}

// EmailTaken reports whether email belongs to a user other than ignoreUserID.
func (s *UserService) EmailTaken(ctx context.Context, email, ignoreUserID string) (bool, error) {
	return s.Repo.EmailTaken(ctx, email, ignoreUserID)
}

func (s *UserService) Create(ctx context.Context, dto StoreUserDTO) (*entity.User, error) {
	taken, err := s.EmailExists(ctx, dto.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Business(messages.EmailAlreadyExists())
	}

	hash, err := s.Hasher.Hash(dto.Password)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, messages.GenericError, err)
	}

	u := &entity.User{Name: dto.Name, Email: dto.Email, Password: hash}
	err = s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.Repo.Create(ctx, u)
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, apperror.Business(messages.EmailAlreadyExists())
	}
	if err != nil {
		return nil, err
	}

	s.Logger.WithField("user_id", u.ID).Info("user registered")
	return u, nil
}

// Update applies the non-empty fields of dto. Replace mode requires every field.
func (s *UserService) Update(ctx context.Context, dto UpdateUserDTO) (*entity.User, error) {
	current, found, err := s.Find(ctx, dto.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperror.ErrResourceNotFound
	}
	if dto.Mode == Replace && !(filled(dto.Name) && filled(dto.Email) && filled(dto.Password)) {
		return nil, apperror.ErrInvalidParameter
	}

	changes := map[string]any{}
	if filled(dto.Name) {
		changes[entity.UserColumnName] = *dto.Name
	}
	if filled(dto.Email) && *dto.Email != current.Email {
		taken, err := s.EmailTaken(ctx, *dto.Email, current.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperror.Business(messages.EmailAlreadyExists())
		}
		changes[entity.UserColumnEmail] = *dto.Email
	}
	if filled(dto.Password) {
		hash, err := s.Hasher.Hash(*dto.Password)
		if err != nil {
			return nil, apperror.Wrap(apperror.KindInternal, messages.GenericError, err)
		}
		changes[entity.UserColumnPassword] = hash
	}

	var updated *entity.User
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
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, apperror.Business(messages.EmailAlreadyExists())
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Destroy deletes the user and revokes their sessions.
func (s *UserService) Destroy(ctx context.Context, id string) (bool, error) {
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

	if deleted && s.Sessions != nil {
		if err := s.Sessions.RevokeUser(ctx, id); err != nil {
			s.Logger.WithError(err).WithField("user_id", id).Warn("revoke sessions failed")
		}
	}
	return deleted, nil
}
