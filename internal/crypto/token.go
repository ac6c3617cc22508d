package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// DefaultTokenTTL bounds the lifetime of issued tokens.
const DefaultTokenTTL = 15 * time.Minute

// TokenConfig carries the signing material and claims configuration. It is
// injected at construction; the issuer never reads ambient state.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// IdentityClaims are the claims carried by an issued token. Subject is the
// sole trusted source of caller identity downstream.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenIssuer mints and validates HMAC-SHA256 signed identity tokens.
type TokenIssuer struct {
	cfg TokenConfig
}

// NewTokenIssuer builds a TokenIssuer from the provided configuration.
func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTokenTTL
	}
	return &TokenIssuer{cfg: cfg}
}

// Issue signs a token for the given identity. Expiry is fixed at the
// configured TTL from the issuance instant.
func (t *TokenIssuer) Issue(subjectID, username, email string) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			Issuer:    t.cfg.Issuer,
			Audience:  jwt.ClaimStrings{t.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.TTL)),
		},
		Username: username,
		Email:    email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.cfg.Secret))
}

// Validate parses a token string and returns its claims. Tokens with a bad
// signature, wrong issuer or audience, or a past expiry are rejected.
func (t *TokenIssuer) Validate(tokenString string) (*IdentityClaims, error) {
	return ValidateToken(tokenString, t.cfg)
}

// ValidateToken checks a token against the given configuration. It is used by
// the HTTP middleware, which holds the config but not the issuer.
func ValidateToken(tokenString string, cfg TokenConfig) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if cfg.Issuer != "" && !claims.VerifyIssuer(cfg.Issuer, true) {
		return nil, ErrInvalidToken
	}
	if cfg.Audience != "" && !claims.VerifyAudience(cfg.Audience, true) {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
