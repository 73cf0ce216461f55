// Entry point for the news API server. Wires configuration, the database
// pool, migrations, services and the HTTP router, and handles graceful
// shutdown.
//
// @title NC News API
// @version 1.0
// @description REST API for a news discussion platform: topics, articles, comments, users, authentication and per-user voting.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Howling-Techie/be-nc-news/articles"
	"github.com/Howling-Techie/be-nc-news/auth"
	"github.com/Howling-Techie/be-nc-news/comments"
	"github.com/Howling-Techie/be-nc-news/config"
	"github.com/Howling-Techie/be-nc-news/db"
	_ "github.com/Howling-Techie/be-nc-news/docs" // swagger spec registration
	"github.com/Howling-Techie/be-nc-news/topics"
	"github.com/Howling-Techie/be-nc-news/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug(".env file not loaded")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database pool")
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		logrus.WithError(err).Fatal("failed to run migrations")
	}

	tokenService := auth.NewTokenService(*cfg.Auth)
	authService := auth.NewService(pool, tokenService)
	authHandlers := auth.NewHandlers(authService)

	topicHandlers := topics.NewHandlers(topics.NewService(pool))
	userHandlers := users.NewHandlers(users.NewService(pool))
	articleHandlers := articles.NewHandlers(articles.NewService(pool, tokenService))
	commentHandlers := comments.NewHandlers(comments.NewService(pool, tokenService))

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		authHandlers.RegisterRoutes(r)
		topicHandlers.RegisterRoutes(r)
		userHandlers.RegisterRoutes(r)
		articleHandlers.RegisterRoutes(r)
		commentHandlers.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("server shutdown failed")
	}
	logrus.Info("server stopped")
}
