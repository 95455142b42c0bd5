package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

const servicesCacheKey = "services:active"

func (s *Server) GetServices(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), servicesCacheKey); err == nil && ok {
			log.Info("services list: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListServices(ctx, true)
	if err != nil {
		log.Error("services list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{"services": items}
	if payload, err := encodeJSON(response); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), servicesCacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("services list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (s *Server) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := s.Store.ServiceByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "service not found", nil)
		return
	}
	if err != nil {
		log.Error("services get: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, svc)
}

func (s *Server) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := s.Store.ServiceBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "service not found", nil)
		return
	}
	if err != nil {
		log.Error("services get by slug: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, svc)
}
