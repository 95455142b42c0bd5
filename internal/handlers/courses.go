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

const coursesCacheKey = "courses:active"

func (s *Server) GetCourses(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), coursesCacheKey); err == nil && ok {
			log.Info("courses list: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListCourses(ctx, true)
	if err != nil {
		log.Error("courses list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{"courses": items}
	if payload, err := encodeJSON(response); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), coursesCacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("courses list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}

func (s *Server) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := s.Store.CourseByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "course not found", nil)
		return
	}
	if err != nil {
		log.Error("courses get: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, course)
}

func (s *Server) GetCourseBySlug(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := s.Store.CourseBySlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "course not found", nil)
		return
	}
	if err != nil {
		log.Error("courses get by slug: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, course)
}
