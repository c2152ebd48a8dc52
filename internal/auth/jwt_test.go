package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func parseClaims(t *testing.T, secret, tokenStr string) (*AdminClaims, error) {
	t.Helper()
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	return claims, err
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	id := bson.NewObjectID()

	tokenStr, err := GenerateToken("test-secret", time.Hour, id)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := parseClaims(t, "test-secret", tokenStr)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.AdminID != id.Hex() {
		t.Errorf("AdminID = %s, want %s", claims.AdminID, id.Hex())
	}
	if claims.Role != RoleAdmin {
		t.Errorf("Role = %s, want %s", claims.Role, RoleAdmin)
	}
}

func TestGenerateTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken("test-secret", time.Hour, bson.NewObjectID())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := parseClaims(t, "other-secret", tokenStr); err == nil {
		t.Fatal("parse succeeded with the wrong secret")
	}
}

func TestGenerateTokenExpired(t *testing.T) {
	tokenStr, err := GenerateToken("test-secret", -time.Minute, bson.NewObjectID())
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = parseClaims(t, "test-secret", tokenStr)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("err = %v, want jwt.ErrTokenExpired", err)
	}
}
