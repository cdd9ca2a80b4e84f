package articles

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"article-catalog/app/web"
	"article-catalog/models"
)

// ArticleProvider is the repository surface the article workflows need.
type ArticleProvider interface {
	FindAll() ([]models.Article, error)
	FindByID(id uint) (*models.Article, error)
	FindByName(name string) ([]models.Article, error)
	FindByPriceRange(min, max *int) ([]models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id uint) error
}

// CategoryProvider supplies the category choices for filter and edit forms
// and the category→articles traversal.
type CategoryProvider interface {
	FindAll() ([]models.Category, error)
	ArticlesFor(categoryID uint) ([]models.Article, error)
}

type Handler struct {
	articles   ArticleProvider
	categories CategoryProvider
	renderer   web.Renderer
}

func NewHandler(articles ArticleProvider, categories CategoryProvider, renderer web.Renderer) *Handler {
	return &Handler{
		articles:   articles,
		categories: categories,
		renderer:   renderer,
	}
}

// HandleIndex renders the article list with the name/category filter form.
// Until the form is submitted the list stays empty; a submitted non-empty
// name searches by exact name, a submission without a name lists everything.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	submitted := query.Has("name") || query.Has("category")
	form := searchForm{
		Name:     query.Get("name"),
		Category: query.Get("category"),
	}
	search := form.criteria()

	var (
		articles []models.Article
		err      error
	)
	switch {
	case search.Name != "":
		articles, err = h.articles.FindByName(search.Name)
	case submitted:
		articles, err = h.articles.FindAll()
	default:
		articles = []models.Article{}
	}
	if err != nil {
		h.renderError(w, "failed to load articles")
		return
	}

	categories, err := h.categories.FindAll()
	if err != nil {
		h.renderError(w, "failed to load categories")
		return
	}

	h.renderer.Render(w, http.StatusOK, "index.html", map[string]any{
		"Articles":   articles,
		"Categories": categories,
		"Search":     form,
		"Submitted":  submitted,
	})
}

// HandleNew shows the creation form on GET and inserts a new article on a
// valid POST. Resubmitting identical data inserts a second row; there is no
// deduplication.
func (h *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderArticleForm(w, http.StatusOK, "article_new.html", articleForm{}, nil, nil)
		return
	}

	form := bindArticleForm(r)
	input, errs := validateArticleForm(form)
	if errs != nil {
		h.renderArticleForm(w, http.StatusUnprocessableEntity, "article_new.html", form, errs, nil)
		return
	}

	article := models.Article{
		Name:       input.Name,
		Price:      input.Price,
		CategoryID: input.CategoryID,
	}
	if err := h.articles.Create(&article); err != nil {
		h.renderError(w, "failed to create article")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleShow renders one article, or a 404 page when the id is unknown.
func (h *Handler) HandleShow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	article, err := h.articles.FindByID(id)
	if err != nil {
		h.handleLookupError(w, err)
		return
	}

	h.renderer.Render(w, http.StatusOK, "article_show.html", map[string]any{
		"Article": article,
	})
}

// HandleEdit shows the prefilled edit form on GET and updates the row on a
// valid POST. The article must exist in both cases.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	article, err := h.articles.FindByID(id)
	if err != nil {
		h.handleLookupError(w, err)
		return
	}

	if r.Method != http.MethodPost {
		form := articleForm{
			Name:  article.Name,
			Price: article.Price.StringFixed(2),
		}
		if article.CategoryID != nil {
			form.Category = strconv.FormatUint(uint64(*article.CategoryID), 10)
		}
		h.renderArticleForm(w, http.StatusOK, "article_edit.html", form, nil, &id)
		return
	}

	form := bindArticleForm(r)
	input, errs := validateArticleForm(form)
	if errs != nil {
		h.renderArticleForm(w, http.StatusUnprocessableEntity, "article_edit.html", form, errs, &id)
		return
	}

	article.Name = input.Name
	article.Price = input.Price
	article.CategoryID = input.CategoryID
	if err := h.articles.Update(article); err != nil {
		h.renderError(w, "failed to update article")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleDelete removes the article and redirects to the list.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.articleID(w, r)
	if !ok {
		return
	}

	if err := h.articles.Delete(id); err != nil {
		h.handleLookupError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleSave inserts one hardcoded article and reports its generated id as
// plain text. Debug endpoint, not part of the regular workflows.
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	article := models.Article{
		Name:  "Article 1",
		Price: decimal.NewFromInt(1000),
	}
	if err := h.articles.Create(&article); err != nil {
		h.renderError(w, "failed to save article")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "article saved with id %d", article.ID)
}

// HandlePriceSearch renders the articles whose price lies in the submitted
// inclusive range; absent bounds are unconstrained.
func (h *Handler) HandlePriceSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	form := priceForm{
		MinPrice: query.Get("minPrice"),
		MaxPrice: query.Get("maxPrice"),
	}
	search := form.criteria()

	articles, err := h.articles.FindByPriceRange(search.MinPrice, search.MaxPrice)
	if err != nil {
		h.renderError(w, "failed to load articles")
		return
	}

	h.renderer.Render(w, http.StatusOK, "price_search.html", map[string]any{
		"Articles": articles,
		"Search":   form,
	})
}

// HandleCategorySearch renders the articles of the chosen category, or all
// articles when no category is selected.
func (h *Handler) HandleCategorySearch(w http.ResponseWriter, r *http.Request) {
	selected := r.FormValue("category")
	search := models.CategorySearch{CategoryID: parseCategoryID(selected)}

	var (
		articles []models.Article
		err      error
	)
	if search.CategoryID != nil {
		articles, err = h.categories.ArticlesFor(*search.CategoryID)
	} else {
		articles, err = h.articles.FindAll()
	}
	if err != nil {
		h.renderError(w, "failed to load articles")
		return
	}

	categories, err := h.categories.FindAll()
	if err != nil {
		h.renderError(w, "failed to load categories")
		return
	}

	h.renderer.Render(w, http.StatusOK, "category_search.html", map[string]any{
		"Articles":   articles,
		"Categories": categories,
		"Selected":   selected,
	})
}

func (h *Handler) renderArticleForm(w http.ResponseWriter, status int, name string, form articleForm, errs map[string]string, id *uint) {
	categories, err := h.categories.FindAll()
	if err != nil {
		h.renderError(w, "failed to load categories")
		return
	}

	data := map[string]any{
		"Form":       form,
		"Errors":     errs,
		"Categories": categories,
	}
	if id != nil {
		data["ID"] = *id
	}
	h.renderer.Render(w, status, name, data)
}

// articleID parses the {id} route parameter; an unparsable id renders the
// 404 page like a missing row would.
func (h *Handler) articleID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		h.renderNotFound(w)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) handleLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrArticleNotFound) {
		h.renderNotFound(w)
		return
	}
	h.renderError(w, "failed to load article")
}

func (h *Handler) renderNotFound(w http.ResponseWriter) {
	h.renderer.Render(w, http.StatusNotFound, "not_found.html", map[string]any{
		"Message": "article not found",
	})
}

func (h *Handler) renderError(w http.ResponseWriter, message string) {
	h.renderer.Render(w, http.StatusInternalServerError, "error.html", map[string]any{
		"Message": message,
	})
}
