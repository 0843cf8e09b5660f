package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTManager issues and validates HS256 access tokens
type JWTManager struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration, issuer string) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl, Issuer: issuer, now: time.Now}
}

// Claims carries the user id and the session id the token belongs to
type Claims struct {
	UserID    string `json:"uid"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssuedToken is the result of a successful issuance
type IssuedToken struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}

// TTLMinutes is the configured lifetime in whole minutes.
func (m *JWTManager) TTLMinutes() int {
	return int(m.TTL / time.Minute)
}

func (m *JWTManager) Issue(userID string) (IssuedToken, error) {
	if len(m.Secret) == 0 {
		return IssuedToken{}, errors.New("jwt secret is not configured")
	}
	now := m.clock()
	exp := now.Add(m.TTL)
	sid := uuid.NewString()
	claims := &Claims{
		UserID:    userID,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.Issuer,
			ID:        sid,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	if err != nil {
		return IssuedToken{}, err
	}
	return IssuedToken{Token: s, SessionID: sid, ExpiresAt: exp}, nil
}

func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithTimeFunc(m.clock))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *JWTManager) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}
