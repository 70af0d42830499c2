// Package jwtsession emite y verifica los tokens de sesión (HS256) que viajan
// en la cookie o en Authorization: Bearer.
package jwtsession

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"adoptme/internal/ports/auth"

	jwt "github.com/golang-jwt/jwt/v5"
)

const defaultIssuer = "adoptme"

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret  []byte
	ttl     time.Duration
	revoker auth.Revoker
	now     func() time.Time
}

type Option func(*Issuer)

// WithClock fija el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer: revoker puede ser nil (logout no tiene efecto).
func NewIssuer(secret string, ttl time.Duration, revoker auth.Revoker, opts ...Option) (*Issuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	i := &Issuer{
		secret:  []byte(secret),
		ttl:     ttl,
		revoker: revoker,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue firma un token nuevo para el usuario.
func (i *Issuer) Issue(c auth.Claims) (string, auth.Claims, error) {
	if strings.TrimSpace(c.UserID) == "" {
		return "", auth.Claims{}, errors.New("jwt subject is required")
	}

	now := i.now().UTC()
	c.TokenID = randomHexID(12)
	c.ExpiresAt = now.Add(i.ttl)

	claims := sessionClaims{
		Name:  c.Name,
		Email: c.Email,
		Role:  c.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.UserID,
			Issuer:    defaultIssuer,
			ExpiresAt: jwt.NewNumericDate(c.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        c.TokenID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", auth.Claims{}, fmt.Errorf("sign jwt: %w", err)
	}
	return signed, c, nil
}

// Verify implementa auth.AuthVerifier.
func (i *Issuer) Verify(ctx context.Context, token string) (auth.Claims, error) {
	sc, err := i.parse(token)
	if err != nil {
		return auth.Claims{}, err
	}

	if i.revoker != nil {
		revoked, err := i.revoker.IsRevoked(ctx, sc.ID)
		if err != nil {
			return auth.Claims{}, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return auth.Claims{}, auth.ErrTokenRevoked
		}
	}

	return auth.Claims{
		UserID:    sc.Subject,
		Email:     sc.Email,
		Name:      sc.Name,
		Role:      sc.Role,
		TokenID:   sc.ID,
		ExpiresAt: sc.ExpiresAt.Time,
	}, nil
}

// Revoke invalida el token hasta su expiración. Un token inválido o vencido no hace nada.
func (i *Issuer) Revoke(ctx context.Context, token string) error {
	if i.revoker == nil {
		return nil
	}
	sc, err := i.parse(token)
	if err != nil {
		return nil
	}
	ttl := sc.ExpiresAt.Time.Sub(i.now())
	return i.revoker.Revoke(ctx, sc.ID, ttl)
}

func (i *Issuer) parse(token string) (sessionClaims, error) {
	var sc sessionClaims
	token = strings.TrimSpace(token)
	if token == "" {
		return sc, auth.ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &sc, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(defaultIssuer),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return sc, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if strings.TrimSpace(sc.Subject) == "" || strings.TrimSpace(sc.ID) == "" || sc.ExpiresAt == nil {
		return sc, auth.ErrInvalidToken
	}
	return sc, nil
}

// randomHexID arma el jti. crypto/rand.Read no devuelve error desde Go 1.24:
// si el sistema no da entropía el proceso aborta.
func randomHexID(nBytes int) string {
	buf := make([]byte, nBytes)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
