package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"cbx/config"
	"cbx/internal/domain/service"
	"cbx/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// JWTOption customizes a jwtService.
type JWTOption func(*jwtService)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return NewJWTServiceWithSecret(cfg.SecretKey.Access, ttl)
}

// NewJWTServiceWithSecret builds the service from explicit values.
func NewJWTServiceWithSecret(secret string, ttl time.Duration, opts ...JWTOption) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	s := &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue signs a token for subject. Expiry is rounded to whole seconds like every NumericDate.
func (s *jwtService) Issue(subject string) (string, time.Time, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return token, expiresAt, nil
}

// Verify checks signature and expiry. A token is expired once now reaches exp.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, service.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, service.ErrTokenSignatureInvalid
		default:
			return nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
		}
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrTokenMalformed, "missing subject")
	}

	return claims, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
