package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crewbase-dev/crewbase/internal/apperr"
)

const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type TokenPair struct {
	Access  string
	Refresh string
}

// TokenManager mints and validates the signed tokens both services share.
// Access and refresh tokens differ only in lifetime; both carry the user
// id as subject.
type TokenManager struct {
	secret    []byte
	method    jwt.SigningMethod
	algorithm string
}

func NewTokenManager(secret, algorithm string) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown JWT algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("JWT algorithm %q is not an HMAC method", algorithm)
	}

	return &TokenManager{
		secret:    []byte(secret),
		method:    method,
		algorithm: algorithm,
	}, nil
}

func (m *TokenManager) mint(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) NewTokenPair(userID uint) (TokenPair, error) {
	access, err := m.mint(userID, AccessTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := m.mint(userID, RefreshTokenTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Parse validates signature and expiry and returns the subject user id.
// An expired token is reported distinctly from an invalid one so callers
// can trigger the refresh flow instead of forcing a re-login.
func (m *TokenManager) Parse(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{m.algorithm}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperr.TokenExpired("token has expired")
		}
		return 0, apperr.TokenInvalid("token is not valid")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, apperr.TokenInvalid("token has no subject")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperr.TokenInvalid("token subject is not a user id")
	}

	return uint(userID), nil
}
