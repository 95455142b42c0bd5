package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
)

const testimonialsCacheKey = "testimonials:active"

func (s *Server) GetTestimonials(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), testimonialsCacheKey); err == nil && ok {
			log.Info("testimonials list: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListTestimonials(ctx, true)
	if err != nil {
		log.Error("testimonials list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	response := map[string]interface{}{"testimonials": items}
	if payload, err := encodeJSON(response); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), testimonialsCacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("testimonials list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, response)
}
