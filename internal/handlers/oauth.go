package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

// OAuthCallback completes the external login flow: exchanges the code for an
// access token, fetches the user profile, upserts the user by openId and
// redirects back to the frontend with the session cookie set.
func (s *Server) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.OAuth == nil {
		transport.WriteError(w, http.StatusServiceUnavailable, "oauth not configured", nil)
		return
	}

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" || state == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing code or state", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token, err := s.OAuth.ExchangeCode(ctx, code, state)
	if err != nil {
		log.Error("oauth callback: exchange failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "oauth exchange failed", nil)
		return
	}
	info, err := s.OAuth.UserInfo(ctx, token.AccessToken)
	if err != nil {
		log.Error("oauth callback: user info failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "oauth user info failed", nil)
		return
	}

	user, err := s.Store.UpsertOAuthUser(ctx, models.User{
		OpenID:      info.OpenID,
		Name:        info.Name,
		Email:       info.Email,
		Role:        models.UserRoleUser,
		LoginMethod: info.LoginMethod(),
	})
	if err != nil {
		log.Error("oauth callback: upsert failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	sessionToken, err := s.Sessions.NewOAuthToken(user.OpenID, s.Cfg.OAuthAppID, user.Name)
	if err != nil {
		log.Error("oauth callback: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "login failed", nil)
		return
	}
	s.setSessionCookie(w, r, sessionToken)

	log.Info("oauth callback: ok", slog.Int64("user_id", user.ID), slog.String("login_method", user.LoginMethod))
	http.Redirect(w, r, "/", http.StatusFound)
}
