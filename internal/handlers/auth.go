package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/auth"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/middleware"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("auth register: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("auth register: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := s.Store.UserByUsername(ctx, req.Username); err == nil {
		transport.WriteError(w, http.StatusConflict, "username already taken", nil)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("auth register: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if req.Email != "" {
		if _, err := s.Store.UserByEmail(ctx, req.Email); err == nil {
			transport.WriteError(w, http.StatusConflict, "email already registered", nil)
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Error("auth register: store error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
			return
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error("auth register: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "registration failed", nil)
		return
	}

	user := models.User{
		Username:     req.Username,
		Password:     hash,
		Name:         req.Name,
		Email:        req.Email,
		Role:         models.UserRoleUser,
		LoginMethod:  models.LoginMethodLocal,
		LastSignedIn: time.Now(),
	}
	user, err = s.Store.CreateUser(ctx, user)
	if err != nil {
		log.Error("auth register: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	token, err := s.Sessions.NewUserToken(user)
	if err != nil {
		log.Error("auth register: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "registration failed", nil)
		return
	}
	s.setSessionCookie(w, r, token)

	log.Info("auth register: ok", slog.Int64("user_id", user.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := s.Store.UserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if err != nil {
		log.Error("auth login: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if err := auth.ComparePassword(user.Password, req.Password); err != nil {
		log.Warn("auth login: bad password", slog.Int64("user_id", user.ID))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	if err := s.Store.TouchLastSignedIn(ctx, user.ID); err != nil {
		log.Error("auth login: touch last signed in failed", slog.String("error", err.Error()))
	}

	token, err := s.Sessions.NewUserToken(user)
	if err != nil {
		log.Error("auth login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "login failed", nil)
		return
	}
	s.setSessionCookie(w, r, token)

	log.Info("auth login: ok", slog.Int64("user_id", user.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w, r)
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		transport.WriteError(w, http.StatusUnauthorized, "not authenticated", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
