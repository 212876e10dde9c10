package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/aligreat689-stack/Retlcommerce-Final/internal/auth"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/config"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/handlers"
	appmiddleware "github.com/aligreat689-stack/Retlcommerce-Final/internal/middleware"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/relay"
	"github.com/aligreat689-stack/Retlcommerce-Final/internal/store"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()

	var persister store.Persister
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresPersister(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer pg.Close()
		persister = pg
	} else {
		persister = store.NewFilePersister(cfg.StateFile)
	}

	st := store.New(ctx, persister)
	notifier := relay.New(cfg.RelayBaseURL, cfg.RelayTimeout, cfg.RelayDisabled)
	h := handlers.New(st, notifier, []byte(cfg.JWTSecret), cfg.RecoveryKey)

	publicLimiter := appmiddleware.NewRateLimiter(60, time.Minute)
	defer publicLimiter.Stop()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		// Public content, gated by maintenance mode and lightly rate
		// limited. Lead capture stays open even during maintenance.
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Maintenance(st.MaintenanceMode))
			r.Use(publicLimiter.Limit)
			r.Get("/site", h.Site)
			r.Get("/services", h.ListServices)
			r.Get("/services/{slug}", h.GetServiceBySlug)
			r.Get("/posts", h.ListPosts)
			r.Get("/posts/{id}", h.GetPostByID)
			r.Get("/team", h.ListTeam)
		})

		r.Post("/contact", h.Contact)
		r.Post("/newsletter", h.Newsletter)
		r.Post("/waitlist", h.Waitlist)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/recover", h.Recover)

			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware([]byte(cfg.JWTSecret)))
				r.Post("/logout", h.Logout)
				r.Get("/state", h.AdminState)
				r.Put("/config", h.ReplaceConfig)
				r.Put("/services", h.ReplaceServices)
				r.Put("/posts", h.ReplacePosts)
				r.Put("/team", h.ReplaceTeam)
				r.Put("/tasks", h.ReplaceTasks)
				r.Put("/testimonials", h.ReplaceTestimonials)
				r.Patch("/tasks/{id}/status", h.UpdateTaskStatus)
				r.Get("/submissions", h.ListSubmissions)
				r.Get("/submissions/export", h.ExportSubmissions)
				r.Delete("/submissions/{id}", h.DeleteSubmission)
				r.Put("/password", h.UpdatePassword)
				r.Post("/reset", h.ResetToDefaults)
				r.Post("/theme/toggle", h.ToggleDarkMode)
			})
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
