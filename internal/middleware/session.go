package middleware

import (
	"context"
	"net/http"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/auth"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

const SessionCookieName = "app_session_id"

type userKey struct{}

// Session resolves the session cookie to a user and stores it on the request
// context. Any failure (missing cookie, bad token, unknown user) leaves the
// request anonymous; the Require* wrappers do the rejecting.
func Session(manager *auth.Manager, st store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := manager.Parse(cookie.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			var user models.User
			switch {
			case claims.UserID > 0:
				user, err = st.UserByID(r.Context(), claims.UserID)
			case claims.OpenID != "":
				user, err = st.UserByOpenID(r.Context(), claims.OpenID)
			default:
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserFromContext(ctx context.Context) (models.User, bool) {
	if v := ctx.Value(userKey{}); v != nil {
		if u, ok := v.(models.User); ok {
			return u, true
		}
	}
	return models.User{}, false
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		if user.Role != models.UserRoleAdmin {
			transport.WriteError(w, http.StatusForbidden, "admin access required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
