// Seeds the Mongo database with the reference catalog and an admin account.
// Safe to run repeatedly: existing slugs and usernames are left alone.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/auth"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/catalog"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/config"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/models"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required for seeding")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Disconnect(context.Background())

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}

	created := 0
	for _, svc := range catalog.Services() {
		if _, err := st.ServiceBySlug(ctx, svc.Slug); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Fatal(err)
		}
		svc.Currency = models.DefaultCurrency
		svc.IsActive = true
		if _, err := st.CreateService(ctx, svc); err != nil {
			log.Fatal(err)
		}
		created++
	}
	log.Printf("services seeded: %d new", created)

	created = 0
	for _, course := range catalog.Courses() {
		if _, err := st.CourseBySlug(ctx, course.Slug); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Fatal(err)
		}
		course.Currency = models.DefaultCurrency
		course.IsActive = true
		if _, err := st.CreateCourse(ctx, course); err != nil {
			log.Fatal(err)
		}
		created++
	}
	log.Printf("courses seeded: %d new", created)

	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user")
		return
	}
	if _, err := st.UserByUsername(ctx, cfg.AdminUser); err == nil {
		log.Printf("admin user %q already exists", cfg.AdminUser)
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Fatal(err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal(err)
	}
	admin, err := st.CreateUser(ctx, models.User{
		Username:    cfg.AdminUser,
		Password:    hash,
		Email:       cfg.AdminEmail,
		Role:        models.UserRoleAdmin,
		LoginMethod: models.LoginMethodLocal,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("admin user created: id=%d username=%s", admin.ID, admin.Username)
}
