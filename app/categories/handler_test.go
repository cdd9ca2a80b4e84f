package categories

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-catalog/models"
)

// --- Mock repository ---

type mockCategoryRepo struct {
	CreateErr error
	LastSaved *models.Category
}

func (m *mockCategoryRepo) Create(category *models.Category) error {
	m.LastSaved = category
	return m.CreateErr
}

// --- Recording renderer ---

type fakeRenderer struct {
	status int
	name   string
	data   map[string]any
}

func (f *fakeRenderer) Render(w http.ResponseWriter, status int, name string, data map[string]any) {
	f.status = status
	f.name = name
	f.data = data
	w.WriteHeader(status)
}

// --- Tests ---

func TestHandleNewCat(t *testing.T) {
	testCases := []struct {
		name               string
		request            func() *http.Request
		repoSetup          func() *mockCategoryRepo
		expectedStatusCode int
		expectedTemplate   string
		checkRepo          func(t *testing.T, repo *mockCategoryRepo)
	}{
		{
			name: "GET renders the form",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/category/newCat", nil)
			},
			repoSetup: func() *mockCategoryRepo {
				return &mockCategoryRepo{}
			},
			expectedStatusCode: http.StatusOK,
			expectedTemplate:   "category_new.html",
			checkRepo: func(t *testing.T, repo *mockCategoryRepo) {
				assert.Nil(t, repo.LastSaved, "GET must not create anything")
			},
		},
		{
			name: "POST creates and redirects back to the form",
			request: func() *http.Request {
				body := url.Values{"titre": {"Peripherals"}}.Encode()
				req := httptest.NewRequest(http.MethodPost, "/category/newCat", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			repoSetup: func() *mockCategoryRepo {
				return &mockCategoryRepo{}
			},
			expectedStatusCode: http.StatusSeeOther,
			checkRepo: func(t *testing.T, repo *mockCategoryRepo) {
				require.NotNil(t, repo.LastSaved)
				assert.Equal(t, "Peripherals", repo.LastSaved.Titre)
			},
		},
		{
			name: "repository error surfaces as 500",
			request: func() *http.Request {
				body := url.Values{"titre": {"Peripherals"}}.Encode()
				req := httptest.NewRequest(http.MethodPost, "/category/newCat", strings.NewReader(body))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				return req
			},
			repoSetup: func() *mockCategoryRepo {
				return &mockCategoryRepo{CreateErr: errors.New("insert failed")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedTemplate:   "error.html",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := tc.repoSetup()
			renderer := &fakeRenderer{}
			handler := NewHandler(repo, renderer)
			rec := httptest.NewRecorder()

			handler.HandleNewCat(rec, tc.request())

			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedTemplate != "" {
				assert.Equal(t, tc.expectedTemplate, renderer.name)
			}
			if tc.expectedStatusCode == http.StatusSeeOther {
				assert.Equal(t, "/category/newCat", rec.Header().Get("Location"))
			}
			if tc.checkRepo != nil {
				tc.checkRepo(t, repo)
			}
		})
	}
}
