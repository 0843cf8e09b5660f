package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/internal/domain/entity"
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/messages"
)

// TokenType is reported to clients alongside every token.
const TokenType = "Bearer"

const secondsPerMinute = 60

type AuthService struct {
	Users    *UserService
	Hasher   PasswordHasher
	Tokens   TokenProvider
	Sessions SessionStore
	Logger   logrus.FieldLogger
}

func NewAuthService(users *UserService, hasher PasswordHasher, tokens TokenProvider, sessions SessionStore, logger logrus.FieldLogger) *AuthService {
	return &AuthService{
		Users:    users,
		Hasher:   hasher,
		Tokens:   tokens,
		Sessions: sessions,
		Logger:   logger,
	}
}

// Login verifies credentials and issues a bearer token.
// Unknown email and wrong password fail with the same message.
func (s *AuthService) Login(ctx context.Context, dto AuthDTO) (TokenDTO, error) {
	users, found, err := s.Users.FindBy(ctx, entity.UserColumnEmail, dto.Email, []string{"*"}, false)
	if err != nil {
		return TokenDTO{}, err
	}
	if !found || !s.Hasher.Compare(users[0].Password, dto.Password) {
		return TokenDTO{}, apperror.Business(messages.InvalidCredentials)
	}
	u := users[0]

	issued, err := s.Tokens.Issue(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		return TokenDTO{}, apperror.Authentication(messages.Unauthorized)
	}

	ttlMinutes := s.Tokens.TTLMinutes()
	if s.Sessions != nil {
		if err := s.Sessions.Save(ctx, u.ID, issued.SessionID, time.Duration(ttlMinutes)*time.Minute); err != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("record session failed")
			return TokenDTO{}, apperror.Authentication(messages.Unauthorized)
		}
	}

	s.Logger.WithField("user_id", u.ID).Info("user logged in")
	return TokenDTO{
		Token:     issued.Token,
		TokenType: TokenType,
		ExpiresIn: ttlMinutes * secondsPerMinute,
	}, nil
}
