package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/auth"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/cache"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/catalog"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/config"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/handlers"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/middleware"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/notifications"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/payments"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/store"
	"github.com/laplaptop42-cpu/scortanu-beauty-skin-new/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// No MONGO_URI means the seeded in-memory store; a configured but
	// unreachable Mongo is a startup error, never a silent fallback.
	var st store.Store
	if cfg.MongoURI == "" {
		st = store.NewMemory(catalog.Services(), catalog.Courses())
		logger.Info("using in-memory store", slog.Int("services", len(catalog.Services())), slog.Int("courses", len(catalog.Courses())))
	} else {
		mongoStore, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
		defer mongoStore.Disconnect(context.Background())

		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		st = mongoStore
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, sessions will not survive restarts securely")
	}
	sessions := &auth.Manager{
		Secret: []byte(cfg.JWTSecret),
		TTL:    time.Duration(cfg.SessionTTLHours) * time.Hour,
		Issuer: "beautyskin-backend",
	}

	gateway := payments.NewGateway(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	if gateway == nil {
		logger.Info("stripe gateway disabled")
	} else {
		logger.Info("stripe gateway enabled")
	}

	mailer := notifications.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom)
	if mailer == nil {
		logger.Info("smtp mailer disabled")
	} else {
		logger.Info("smtp mailer enabled", slog.String("host", cfg.SMTPHost))
	}
	dispatcher := notifications.NewDispatcher(mailer, cfg.AdminEmail, logger)

	oauthClient := auth.NewOAuthClient(cfg.OAuthServerURL, cfg.OAuthAppID)
	if oauthClient == nil {
		logger.Info("oauth disabled")
	}

	server := &handlers.Server{
		Cfg:      cfg,
		Store:    st,
		Val:      validation.New(),
		Log:      logger,
		Cache:    cacheStore,
		Notifier: dispatcher,
		Sessions: sessions,
		OAuth:    oauthClient,
	}
	if gateway != nil {
		server.Gateway = gateway
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))
	r.Use(middleware.Session(sessions, st))

	bookingsLimiter := middleware.NewRateLimiter(cfg.RateLimitBookings, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", server.GetServices)
		api.Get("/services/{id}", server.GetServiceByID)
		api.Get("/services/slug/{slug}", server.GetServiceBySlug)
		api.Get("/courses", server.GetCourses)
		api.Get("/courses/{id}", server.GetCourseByID)
		api.Get("/courses/slug/{slug}", server.GetCourseBySlug)
		api.Get("/testimonials", server.GetTestimonials)
		api.With(contactLimiter.Middleware).Post("/contact", server.CreateContact)

		api.With(bookingsLimiter.Middleware).Post("/bookings", server.CreateBooking)
		api.Get("/bookings/{id}", server.GetBooking)
		api.With(bookingsLimiter.Middleware).Post("/enrollments", server.CreateEnrollment)
		api.Get("/enrollments/{id}", server.GetEnrollment)

		api.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth)
			protected.Get("/bookings/me", server.GetMyBookings)
			protected.Post("/bookings/{id}/payment-session", server.CreateBookingPaymentSession)
			protected.Patch("/bookings/{id}/status", server.UpdateBookingStatus)
			protected.Get("/enrollments/me", server.GetMyEnrollments)
			protected.Patch("/enrollments/{id}/status", server.UpdateEnrollmentStatus)
		})

		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", server.Register)
			ar.Post("/login", server.Login)
			ar.Post("/logout", server.Logout)
			ar.Get("/me", server.Me)
		})
		api.Get("/oauth/callback", server.OAuthCallback)

		api.Post("/stripe/webhook", server.StripeWebhook)

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin)
			admin.Get("/stats", server.AdminStats)

			admin.Get("/services", server.AdminListServices)
			admin.Post("/services", server.AdminCreateService)
			admin.Put("/services/{id}", server.AdminUpdateService)
			admin.Delete("/services/{id}", server.AdminDeleteService)

			admin.Get("/courses", server.AdminListCourses)
			admin.Post("/courses", server.AdminCreateCourse)
			admin.Put("/courses/{id}", server.AdminUpdateCourse)
			admin.Delete("/courses/{id}", server.AdminDeleteCourse)

			admin.Get("/bookings", server.AdminListBookings)
			admin.Patch("/bookings/{id}/status", server.UpdateBookingStatus)
			admin.Delete("/bookings/{id}", server.AdminDeleteBooking)

			admin.Get("/enrollments", server.AdminListEnrollments)
			admin.Patch("/enrollments/{id}/status", server.UpdateEnrollmentStatus)
			admin.Delete("/enrollments/{id}", server.AdminDeleteEnrollment)

			admin.Get("/testimonials", server.AdminListTestimonials)
			admin.Post("/testimonials", server.AdminCreateTestimonial)
			admin.Put("/testimonials/{id}", server.AdminUpdateTestimonial)
			admin.Delete("/testimonials/{id}", server.AdminDeleteTestimonial)

			admin.Get("/messages", server.AdminListMessages)
			admin.Patch("/messages/{id}/read", server.AdminMarkMessageRead)
			admin.Delete("/messages/{id}", server.AdminDeleteMessage)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
