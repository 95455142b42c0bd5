package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
)

func TestGetServices(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)

	rec := doJSON(t, router, http.MethodGet, "/api/services", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Services []models.Service `json:"services"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Services) != 18 {
		t.Fatalf("expected 18 services, got %d", len(resp.Services))
	}
}

func TestGetServiceBySlug(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)

	rec := doJSON(t, router, http.MethodGet, "/api/services/slug/microblading", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var svc models.Service
	decodeBody(t, rec, &svc)
	if svc.Name != "Microblading" || svc.Price != "450" {
		t.Fatalf("unexpected service: %+v", svc)
	}

	rec = doJSON(t, router, http.MethodGet, "/api/services/slug/no-such-service", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetCourseBySlug(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)

	rec := doJSON(t, router, http.MethodGet, "/api/courses/slug/corrective-morphology", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var course models.Course
	decodeBody(t, rec, &course)
	if course.TrainerName != "Carmen Scortanu" || course.Price != "1000" {
		t.Fatalf("unexpected course: %+v", course)
	}
}

func TestGetTestimonialsActiveOnly(t *testing.T) {
	srv, st, _ := newTestServer(t)
	router := testRouter(srv)

	ctx := context.Background()
	if _, err := st.CreateTestimonial(ctx, models.Testimonial{ClientName: "A", Content: "great", Rating: 5, IsActive: true}); err != nil {
		t.Fatalf("seed testimonial: %v", err)
	}
	if _, err := st.CreateTestimonial(ctx, models.Testimonial{ClientName: "B", Content: "hidden", Rating: 4, IsActive: false}); err != nil {
		t.Fatalf("seed testimonial: %v", err)
	}

	rec := doJSON(t, router, http.MethodGet, "/api/testimonials", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Testimonials []models.Testimonial `json:"testimonials"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Testimonials) != 1 || resp.Testimonials[0].ClientName != "A" {
		t.Fatalf("expected only active testimonials, got %+v", resp.Testimonials)
	}
}

func TestCreateContact(t *testing.T) {
	srv, st, _ := newTestServer(t)
	router := testRouter(srv)

	rec := doJSON(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":    "Ana",
		"email":   "ana@example.com",
		"subject": "Programare",
		"message": "As dori o programare.",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]bool
	decodeBody(t, rec, &resp)
	if !resp["success"] {
		t.Fatalf("expected success response, got %s", rec.Body.String())
	}

	msgs, err := st.ListContactMessages(context.Background())
	if err != nil {
		t.Fatalf("ListContactMessages error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].IsRead {
		t.Fatalf("expected one unread message, got %+v", msgs)
	}
}

func TestCreateContactValidation(t *testing.T) {
	srv, _, _ := newTestServer(t)
	router := testRouter(srv)

	rec := doJSON(t, router, http.MethodPost, "/api/contact", map[string]interface{}{
		"name":  "Ana",
		"email": "ana@example.com",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
