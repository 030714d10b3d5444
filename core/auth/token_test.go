package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/trezcool/lms/core"
)

func TestNewTokenIssuer(t *testing.T) {
	conf := core.NewTestConfig()
	conf.Auth.TokenMode = "cookie"
	if _, err := NewTokenIssuer(conf); err == nil {
		t.Error("NewTokenIssuer() error = nil; want unknown token mode")
	}
}

func TestTokenIssuer_Issue(t *testing.T) {
	conf := core.NewTestConfig()
	conf.SecretKey = "secret"
	conf.Auth.JWTExpirationDelta = time.Hour

	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	nowFunc = func() time.Time { return now }
	defer func() { nowFunc = time.Now }() // reset

	t.Run("placeholder", func(t *testing.T) {
		conf.Auth.TokenMode = core.TokenModePlaceholder
		ti, err := NewTokenIssuer(conf)
		if err != nil {
			t.Fatalf("NewTokenIssuer() failed: %v", err)
		}
		token, err := ti.Issue("a@b.com", "student")
		if err != nil {
			t.Fatalf("Issue() failed: %v", err)
		}
		if token != "jwt_token_here" {
			t.Errorf("Issue() = %q; want %q", token, "jwt_token_here")
		}
	})

	t.Run("jwt", func(t *testing.T) {
		conf.Auth.TokenMode = core.TokenModeJWT
		ti, err := NewTokenIssuer(conf)
		if err != nil {
			t.Fatalf("NewTokenIssuer() failed: %v", err)
		}
		token, err := ti.Issue("a@b.com", "student")
		if err != nil {
			t.Fatalf("Issue() failed: %v", err)
		}

		claims := new(Claims)
		parser := jwt.Parser{SkipClaimsValidation: true} // nowFunc is in the past
		_, err = parser.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
			return []byte("secret"), nil
		})
		if err != nil {
			t.Fatalf("ParseWithClaims() failed: %v", err)
		}
		if claims.Email != "a@b.com" || claims.Subject != "a@b.com" {
			t.Errorf("email = %q, sub = %q; want a@b.com", claims.Email, claims.Subject)
		}
		if claims.Role != "student" {
			t.Errorf("role = %q; want student", claims.Role)
		}
		if claims.Issuer != conf.AppName {
			t.Errorf("iss = %q; want %q", claims.Issuer, conf.AppName)
		}
		if want := now.Add(time.Hour).Unix(); claims.ExpiresAt != want {
			t.Errorf("exp = %d; want %d", claims.ExpiresAt, want)
		}
		if claims.Id == "" {
			t.Error("jti is empty")
		}

		other, _ := ti.Issue("a@b.com", "student")
		if other == token {
			t.Error("two issued tokens are identical")
		}
	})
}
