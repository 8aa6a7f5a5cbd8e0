package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"yachaywasi_backend/internals/features/users/model"
)

func TestAccessClaimsRoundTrip(t *testing.T) {
	user := model.UserModel{ID: uuid.New(), Email: "admin@yachay.org.pe", Role: "admin"}
	now := time.Now().UTC()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	parsed, err := jwt.Parse(signed, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)

	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["typ"] != "access" {
		t.Errorf("typ = %v, want access", claims["typ"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
	exp, _ := claims["exp"].(float64)
	if int64(exp) != now.Add(accessTTLDefault).Unix() {
		t.Errorf("exp = %d, want %d", int64(exp), now.Add(accessTTLDefault).Unix())
	}
}

func TestRefreshClaims(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()
	claims := buildRefreshClaims(id, now)

	if claims["typ"] != "refresh" {
		t.Errorf("typ = %v, want refresh", claims["typ"])
	}
	if claims["sub"] != id.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], id)
	}
	if claims["exp"].(int64)-claims["iat"].(int64) != int64(refreshTTLDefault/time.Second) {
		t.Errorf("refresh TTL = %ds, want %ds", claims["exp"].(int64)-claims["iat"].(int64), int64(refreshTTLDefault/time.Second))
	}
}

// The rotation path revokes and re-issues by hash; the hash must be
// stable for the same token+secret and distinct otherwise, or a rolled
// back revocation could never be matched again.
func TestComputeRefreshHash(t *testing.T) {
	h1 := ComputeRefreshHash("token-a", "secret-1")
	h2 := ComputeRefreshHash("token-a", "secret-1")
	if !bytes.Equal(h1, h2) {
		t.Fatal("same token+secret must hash identically")
	}
	if len(h1) != 32 {
		t.Fatalf("hash length = %d, want 32 (SHA-256)", len(h1))
	}
	if bytes.Equal(h1, ComputeRefreshHash("token-a", "secret-2")) {
		t.Fatal("different secrets must produce different hashes")
	}
	if bytes.Equal(h1, ComputeRefreshHash("token-b", "secret-1")) {
		t.Fatal("different tokens must produce different hashes")
	}
}
