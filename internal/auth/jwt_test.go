// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/carterperez-dev/client-portal/internal/config"
	"github.com/carterperez-dev/client-portal/internal/core"
)

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	mgr := newTestJWTManager(t)

	token, err := mgr.CreateAccessToken(AccessTokenClaims{
		Username: "client1",
		Role:     "client",
	})
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	claims, err := mgr.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.Username != "client1" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if claims.Role != "client" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.JTI == "" {
		t.Fatalf("expected a JTI")
	}
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	dir := t.TempDir()
	privPath := filepath.Join(dir, "jwt_private.pem")
	pubPath := filepath.Join(dir, "jwt_public.pem")

	if err := GenerateKeyPair(privPath, pubPath); err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	mgr, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:     privPath,
		PublicKeyPath:      pubPath,
		AccessTokenExpire:  -time.Minute,
		RefreshTokenExpire: 24 * time.Hour,
		Issuer:             "client-portal-test",
		Audience:           "client-portal",
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	token, err := mgr.CreateAccessToken(AccessTokenClaims{
		Username: "client1",
		Role:     "client",
	})
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	if _, err := mgr.ParseAccessToken(token); !errors.Is(err, core.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTManager_RejectsForeignSignature(t *testing.T) {
	issuing := newTestJWTManager(t)
	verifying := newTestJWTManager(t)

	token, err := issuing.CreateAccessToken(AccessTokenClaims{
		Username: "client1",
		Role:     "client",
	})
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	if _, err := verifying.ParseAccessToken(token); !errors.Is(err, core.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for foreign key, got %v", err)
	}
}

func TestJWTManager_RefreshTokenHashMatches(t *testing.T) {
	mgr := newTestJWTManager(t)

	data, err := mgr.CreateRefreshToken("client1", "")
	if err != nil {
		t.Fatalf("CreateRefreshToken: %v", err)
	}
	if data.FamilyID == "" {
		t.Fatalf("expected a generated family id")
	}
	if data.Hash != core.HashToken(data.Token) {
		t.Fatalf("stored hash does not match token hash")
	}
	if !data.ExpiresAt.After(time.Now()) {
		t.Fatalf("refresh token already expired")
	}
}
