package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"article-catalog/app/articles"
	"article-catalog/app/categories"
	"article-catalog/app/server"
	"article-catalog/app/web"
	"article-catalog/config"
	"article-catalog/database"
	"article-catalog/models"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	articlesRepo := models.NewArticlesRepository(db)
	categoriesRepo := models.NewCategoriesRepository(db)

	renderer, err := web.NewHTMLRenderer(log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	articlesHandler := articles.NewHandler(articlesRepo, categoriesRepo, renderer)
	categoriesHandler := categories.NewHandler(categoriesRepo, renderer)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      server.NewRouter(articlesHandler, categoriesHandler, renderer, log),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.ServerAddr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
