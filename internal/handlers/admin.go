package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/transport"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/utils"
)

type CreateServiceRequest struct {
	Name            string `json:"name" validate:"required"`
	Slug            string `json:"slug" validate:"omitempty,slug"`
	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`
	Price           string `json:"price" validate:"required,number"`
	Currency        string `json:"currency"`
	Duration        int    `json:"duration" validate:"omitempty,min=0"`
	ImageURL        string `json:"imageUrl" validate:"omitempty,url"`
	Category        string `json:"category"`
}

type CreateCourseRequest struct {
	Name            string `json:"name" validate:"required"`
	Slug            string `json:"slug" validate:"omitempty,slug"`
	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`
	Price           string `json:"price" validate:"required,number"`
	Currency        string `json:"currency"`
	Duration        string `json:"duration"`
	ImageURL        string `json:"imageUrl" validate:"omitempty,url"`
	TrainerName     string `json:"trainerName"`
}

type CreateTestimonialRequest struct {
	ClientName     string `json:"clientName" validate:"required"`
	ClientLocation string `json:"clientLocation"`
	Content        string `json:"content" validate:"required"`
	Rating         int    `json:"rating" validate:"omitempty,min=1,max=5"`
	ImageURL       string `json:"imageUrl" validate:"omitempty,url"`
}

func (s *Server) invalidateCatalogCache(ctx context.Context, keys ...string) {
	if s.Cache == nil {
		return
	}
	for _, key := range keys {
		_ = s.Cache.Delete(ctx, key)
	}
}

func (s *Server) AdminStats(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stats, err := s.Store.Stats(ctx)
	if err != nil {
		log.Error("admin stats: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, stats)
}

// Services

func (s *Server) AdminListServices(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListServices(ctx, false)
	if err != nil {
		log.Error("admin services list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"services": items})
}

func (s *Server) AdminCreateService(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := s.Store.CreateService(ctx, models.Service{
		Name:            req.Name,
		Slug:            slug,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		Currency:        currency,
		Duration:        req.Duration,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		IsActive:        true,
	})
	if err != nil {
		log.Error("admin services create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusConflict, "could not create service", nil)
		return
	}

	s.invalidateCatalogCache(ctx, servicesCacheKey)
	log.Info("admin services create: stored", slog.Int64("service_id", svc.ID))
	transport.WriteJSON(w, http.StatusCreated, svc)
}

func (s *Server) AdminUpdateService(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var upd store.ServiceUpdate
	if err := decodeJSON(r, &upd); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	svc, err := s.Store.UpdateService(ctx, id, upd)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "service not found", nil)
		return
	}
	if err != nil {
		log.Error("admin services update: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	s.invalidateCatalogCache(ctx, servicesCacheKey)
	log.Info("admin services update: ok", slog.Int64("service_id", svc.ID))
	transport.WriteJSON(w, http.StatusOK, svc)
}

func (s *Server) AdminDeleteService(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.DeleteService(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "service not found", nil)
			return
		}
		log.Error("admin services delete: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	s.invalidateCatalogCache(ctx, servicesCacheKey)
	log.Info("admin services delete: ok", slog.Int64("service_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Courses

func (s *Server) AdminListCourses(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListCourses(ctx, false)
	if err != nil {
		log.Error("admin courses list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"courses": items})
}

func (s *Server) AdminCreateCourse(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateCourseRequest
	if err := decodeJSON(r, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := s.Store.CreateCourse(ctx, models.Course{
		Name:            req.Name,
		Slug:            slug,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Price:           req.Price,
		Currency:        currency,
		Duration:        req.Duration,
		ImageURL:        req.ImageURL,
		TrainerName:     req.TrainerName,
		IsActive:        true,
	})
	if err != nil {
		log.Error("admin courses create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusConflict, "could not create course", nil)
		return
	}

	s.invalidateCatalogCache(ctx, coursesCacheKey)
	log.Info("admin courses create: stored", slog.Int64("course_id", course.ID))
	transport.WriteJSON(w, http.StatusCreated, course)
}

func (s *Server) AdminUpdateCourse(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var upd store.CourseUpdate
	if err := decodeJSON(r, &upd); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := s.Store.UpdateCourse(ctx, id, upd)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "course not found", nil)
		return
	}
	if err != nil {
		log.Error("admin courses update: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	s.invalidateCatalogCache(ctx, coursesCacheKey)
	log.Info("admin courses update: ok", slog.Int64("course_id", course.ID))
	transport.WriteJSON(w, http.StatusOK, course)
}

func (s *Server) AdminDeleteCourse(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "course not found", nil)
			return
		}
		log.Error("admin courses delete: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	s.invalidateCatalogCache(ctx, coursesCacheKey)
	log.Info("admin courses delete: ok", slog.Int64("course_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Bookings and enrollments

func (s *Server) AdminListBookings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	limit, offset, err := pageParams(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid pagination", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListBookings(ctx)
	if err != nil {
		log.Error("admin bookings list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"bookings": pageSlice(items, limit, offset)})
}

func (s *Server) AdminDeleteBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
			return
		}
		log.Error("admin bookings delete: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin bookings delete: ok", slog.Int64("booking_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) AdminListEnrollments(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	limit, offset, err := pageParams(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid pagination", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListEnrollments(ctx)
	if err != nil {
		log.Error("admin enrollments list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"enrollments": pageSlice(items, limit, offset)})
}

func (s *Server) AdminDeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.DeleteEnrollment(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "enrollment not found", nil)
			return
		}
		log.Error("admin enrollments delete: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin enrollments delete: ok", slog.Int64("enrollment_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Testimonials

func (s *Server) AdminListTestimonials(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListTestimonials(ctx, false)
	if err != nil {
		log.Error("admin testimonials list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"testimonials": items})
}

func (s *Server) AdminCreateTestimonial(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	var req CreateTestimonialRequest
	if err := decodeJSON(r, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "validation error", validationDetails(s.Val.ValidationErrors(err)))
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	testimonial, err := s.Store.CreateTestimonial(ctx, models.Testimonial{
		ClientName:     req.ClientName,
		ClientLocation: req.ClientLocation,
		Content:        req.Content,
		Rating:         rating,
		ImageURL:       req.ImageURL,
		IsActive:       true,
	})
	if err != nil {
		log.Error("admin testimonials create: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	s.invalidateCatalogCache(ctx, testimonialsCacheKey)
	log.Info("admin testimonials create: stored", slog.Int64("testimonial_id", testimonial.ID))
	transport.WriteJSON(w, http.StatusCreated, testimonial)
}

func (s *Server) AdminUpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}
	var upd store.TestimonialUpdate
	if err := decodeJSON(r, &upd); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	testimonial, err := s.Store.UpdateTestimonial(ctx, id, upd)
	if errors.Is(err, store.ErrNotFound) {
		transport.WriteError(w, http.StatusNotFound, "testimonial not found", nil)
		return
	}
	if err != nil {
		log.Error("admin testimonials update: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	s.invalidateCatalogCache(ctx, testimonialsCacheKey)
	log.Info("admin testimonials update: ok", slog.Int64("testimonial_id", testimonial.ID))
	transport.WriteJSON(w, http.StatusOK, testimonial)
}

func (s *Server) AdminDeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.DeleteTestimonial(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "testimonial not found", nil)
			return
		}
		log.Error("admin testimonials delete: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	s.invalidateCatalogCache(ctx, testimonialsCacheKey)
	log.Info("admin testimonials delete: ok", slog.Int64("testimonial_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Contact messages

func (s *Server) AdminListMessages(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	limit, offset, err := pageParams(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid pagination", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := s.Store.ListContactMessages(ctx)
	if err != nil {
		log.Error("admin messages list: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"messages": pageSlice(items, limit, offset)})
}

func (s *Server) AdminMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.MarkContactMessageRead(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "message not found", nil)
			return
		}
		log.Error("admin messages read: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin messages read: ok", slog.Int64("message_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (s *Server) AdminDeleteMessage(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	id, err := idParam(r)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, "invalid id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.Store.DeleteContactMessage(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "message not found", nil)
			return
		}
		log.Error("admin messages delete: store error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin messages delete: ok", slog.Int64("message_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
