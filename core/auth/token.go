package auth

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
)

var nowFunc = time.Now // mockable

// Claims represents the claims carried by an issued JWT.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// TokenIssuer hands out the token returned on login.
// In placeholder mode every login gets the same configured string; in jwt mode a signed
// HS256 token is generated. Tokens are never verified by this service.
type TokenIssuer struct {
	mode        string
	placeholder string
	issuer      string
	signingKey  []byte
	expiration  time.Duration
}

func NewTokenIssuer(conf *core.Config) (*TokenIssuer, error) {
	switch conf.Auth.TokenMode {
	case core.TokenModePlaceholder, core.TokenModeJWT:
	default:
		return nil, fmt.Errorf("unknown token mode %q", conf.Auth.TokenMode)
	}
	return &TokenIssuer{
		mode:        conf.Auth.TokenMode,
		placeholder: conf.Auth.PlaceholderToken,
		issuer:      conf.AppName,
		signingKey:  []byte(conf.SecretKey),
		expiration:  conf.Auth.JWTExpirationDelta,
	}, nil
}

func (ti *TokenIssuer) Mode() string { return ti.mode }

// Issue returns a token for the given email and role.
func (ti *TokenIssuer) Issue(email, role string) (string, error) {
	if ti.mode == core.TokenModePlaceholder {
		return ti.placeholder, nil
	}

	now := nowFunc()
	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Issuer:    ti.issuer,
			Subject:   email,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ti.expiration).Unix(),
		},
		Email: email,
		Role:  role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(ti.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}
