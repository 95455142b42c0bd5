package handlers

import (
	"net/http"
	"testing"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/middleware"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

func sessionCookie(rec interface{ Result() *http.Response }) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterLoginMe(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "ana",
		"password": "super-secret-1",
		"email":    "ana@example.com",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("expected session cookie on register")
	}
	if !cookie.HttpOnly || cookie.Path != "/" {
		t.Fatalf("unexpected cookie flags: %+v", cookie)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/auth/me", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var me struct {
		User models.User `json:"user"`
	}
	decodeBody(t, rec, &me)
	if me.User.Username != "ana" || me.User.Role != models.UserRoleUser {
		t.Fatalf("unexpected user: %+v", me.User)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "ana",
		"password": "super-secret-1",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if sessionCookie(rec) == nil {
		t.Fatalf("expected session cookie on login")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)
	createTestUser(t, srv, "ana", models.UserRoleUser)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "ana",
		"password": "super-secret-1",
	}, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)
	createTestUser(t, srv, "ana", models.UserRoleUser)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": "ana2",
		"password": "super-secret-1",
		"email":    "ana@example.com",
	}, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)
	createTestUser(t, srv, "ana", models.UserRoleUser)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"username": "ana",
		"password": "wrong-password",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMeWithoutSession(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)
	_, cookie := createTestUser(t, srv, "ana", models.UserRoleUser)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cleared := sessionCookie(rec)
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cleared)
	}
}
