package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

func TestUserTokenRoundTrip(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), TTL: time.Hour, Issuer: "beautyskin-backend"}

	token, err := m.NewUserToken(models.User{ID: 7, Username: "ana", Role: models.UserRoleAdmin})
	if err != nil {
		t.Fatalf("NewUserToken error: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "ana" || claims.Role != models.UserRoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "beautyskin-backend" {
		t.Fatalf("unexpected issuer: %q", claims.Issuer)
	}
}

func TestOAuthTokenRoundTrip(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), TTL: time.Hour, Issuer: "beautyskin-backend"}

	token, err := m.NewOAuthToken("open-123", "app-1", "Ana")
	if err != nil {
		t.Fatalf("NewOAuthToken error: %v", err)
	}
	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.OpenID != "open-123" || claims.AppID != "app-1" || claims.Name != "Ana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.UserID != 0 {
		t.Fatalf("oauth token should not carry a local user id: %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), TTL: time.Hour}
	other := &Manager{Secret: []byte("other-secret"), TTL: time.Hour}

	token, err := m.NewUserToken(models.User{ID: 1, Username: "ana"})
	if err != nil {
		t.Fatalf("NewUserToken error: %v", err)
	}
	if _, err := other.Parse(token); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := &Manager{Secret: []byte("test-secret"), TTL: -time.Minute}

	token, err := m.NewUserToken(models.User{ID: 1, Username: "ana"})
	if err != nil {
		t.Fatalf("NewUserToken error: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatalf("expected parse failure for expired token")
	}
}

func TestNewOAuthClientUnconfigured(t *testing.T) {
	if c := NewOAuthClient("", "app-1"); c != nil {
		t.Fatalf("expected nil client without server url")
	}
	if c := NewOAuthClient("https://auth.example.com", "  "); c != nil {
		t.Fatalf("expected nil client without app id")
	}
}

func TestExchangeCodeDecodesState(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(TokenResponse{AccessToken: "tok-123"})
	}))
	defer ts.Close()

	c := NewOAuthClient(ts.URL, "app-1")
	state := base64.StdEncoding.EncodeToString([]byte("https://scortanubeautyskin.ch/callback"))

	resp, err := c.ExchangeCode(context.Background(), "code-xyz", state)
	if err != nil {
		t.Fatalf("ExchangeCode error: %v", err)
	}
	if resp.AccessToken != "tok-123" {
		t.Fatalf("unexpected token: %+v", resp)
	}
	if gotPath != exchangeTokenPath {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if gotBody["clientId"] != "app-1" || gotBody["grantType"] != "authorization_code" || gotBody["code"] != "code-xyz" {
		t.Fatalf("unexpected request body: %+v", gotBody)
	}
	if gotBody["redirectUri"] != "https://scortanubeautyskin.ch/callback" {
		t.Fatalf("state not decoded into redirect uri: %+v", gotBody)
	}
}

func TestExchangeCodeBadState(t *testing.T) {
	c := NewOAuthClient("https://auth.example.com", "app-1")
	if _, err := c.ExchangeCode(context.Background(), "code", "not base64!"); err == nil {
		t.Fatalf("expected error for malformed state")
	}
}

func TestUserInfo(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != userInfoPath {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(UserInfo{
			OpenID:    "open-123",
			Name:      "Ana",
			Email:     "ana@example.com",
			Platforms: []string{"GOOGLE"},
		})
	}))
	defer ts.Close()

	c := NewOAuthClient(ts.URL, "app-1")
	info, err := c.UserInfo(context.Background(), "tok-123")
	if err != nil {
		t.Fatalf("UserInfo error: %v", err)
	}
	if info.OpenID != "open-123" || info.Email != "ana@example.com" {
		t.Fatalf("unexpected user info: %+v", info)
	}
	if got := info.LoginMethod(); got != "google" {
		t.Fatalf("unexpected login method: %q", got)
	}
}

func TestUserInfoServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewOAuthClient(ts.URL, "app-1")
	if _, err := c.UserInfo(context.Background(), "tok-123"); err == nil {
		t.Fatalf("expected error on upstream failure")
	}
}

func TestLoginMethodFallback(t *testing.T) {
	var u *UserInfo
	if got := u.LoginMethod(); got != "oauth" {
		t.Fatalf("unexpected method for nil info: %q", got)
	}
	u = &UserInfo{}
	if got := u.LoginMethod(); got != "oauth" {
		t.Fatalf("unexpected method for empty platforms: %q", got)
	}
}
