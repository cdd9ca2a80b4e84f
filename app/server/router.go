package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"article-catalog/app/articles"
	"article-catalog/app/categories"
	"article-catalog/app/web"
)

// NewRouter wires the application routes. The static /article/* routes are
// registered alongside the /article/{id} pattern; chi matches static
// segments before parameters, so /article/save never resolves as an id.
func NewRouter(articlesHandler *articles.Handler, categoriesHandler *categories.Handler, renderer web.Renderer, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(log))
	r.Use(Recoverer(log))

	r.Get("/", articlesHandler.HandleIndex)

	r.Get("/article/save", articlesHandler.HandleSave)
	r.Get("/article/new", articlesHandler.HandleNew)
	r.Post("/article/new", articlesHandler.HandleNew)
	r.Get("/article/edit/{id}", articlesHandler.HandleEdit)
	r.Post("/article/edit/{id}", articlesHandler.HandleEdit)
	r.Get("/article/delete/{id}", articlesHandler.HandleDelete)
	r.Get("/article/{id}", articlesHandler.HandleShow)

	r.Get("/art_prix", articlesHandler.HandlePriceSearch)
	r.Get("/art_cat", articlesHandler.HandleCategorySearch)
	r.Post("/art_cat", articlesHandler.HandleCategorySearch)

	r.Get("/category/newCat", categoriesHandler.HandleNewCat)
	r.Post("/category/newCat", categoriesHandler.HandleNewCat)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderer.Render(w, http.StatusNotFound, "not_found.html", map[string]any{
			"Message": "page not found",
		})
	})

	return r
}
