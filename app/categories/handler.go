package categories

import (
	"net/http"

	"article-catalog/app/web"
	"article-catalog/models"
)

// CategoryProvider is the repository surface the category workflow needs.
type CategoryProvider interface {
	Create(category *models.Category) error
}

type Handler struct {
	categories CategoryProvider
	renderer   web.Renderer
}

func NewHandler(categories CategoryProvider, renderer web.Renderer) *Handler {
	return &Handler{
		categories: categories,
		renderer:   renderer,
	}
}

// HandleNewCat shows the category creation form on GET and inserts the
// category on POST, redirecting back to the form so several categories can
// be created in a row.
func (h *Handler) HandleNewCat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderer.Render(w, http.StatusOK, "category_new.html", map[string]any{
			"Form": categoryForm{},
		})
		return
	}

	form := categoryForm{Titre: r.PostFormValue("titre")}
	category := models.Category{Titre: form.Titre}
	if err := h.categories.Create(&category); err != nil {
		h.renderer.Render(w, http.StatusInternalServerError, "error.html", map[string]any{
			"Message": "failed to create category",
		})
		return
	}

	http.Redirect(w, r, "/category/newCat", http.StatusSeeOther)
}

type categoryForm struct {
	Titre string
}
