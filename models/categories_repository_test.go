package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesFindAll(t *testing.T) {
	repo := NewCategoriesRepository(newTestDB(t))

	require.NoError(t, repo.Create(&Category{Titre: "Peripherals"}))
	require.NoError(t, repo.Create(&Category{Titre: "Displays"}))

	categories, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Peripherals", categories[0].Titre)
	assert.Equal(t, "Displays", categories[1].Titre)
}

func TestCategoriesFindByID(t *testing.T) {
	repo := NewCategoriesRepository(newTestDB(t))

	category := Category{Titre: "Peripherals"}
	require.NoError(t, repo.Create(&category))

	found, err := repo.FindByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peripherals", found.Titre)

	_, err = repo.FindByID(category.ID + 100)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestArticlesFor(t *testing.T) {
	db := newTestDB(t)
	categoriesRepo := NewCategoriesRepository(db)
	articlesRepo := NewArticlesRepository(db)

	peripherals := Category{Titre: "Peripherals"}
	displays := Category{Titre: "Displays"}
	require.NoError(t, categoriesRepo.Create(&peripherals))
	require.NoError(t, categoriesRepo.Create(&displays))

	require.NoError(t, articlesRepo.Create(&Article{
		Name:       "Mechanical keyboard",
		Price:      decimal.NewFromFloat(49.99),
		CategoryID: &peripherals.ID,
	}))
	require.NoError(t, articlesRepo.Create(&Article{
		Name:       "Wireless mouse",
		Price:      decimal.NewFromFloat(24.99),
		CategoryID: &peripherals.ID,
	}))
	require.NoError(t, articlesRepo.Create(&Article{
		Name:  "Uncategorized cable",
		Price: decimal.NewFromFloat(5.00),
	}))

	t.Run("returns associated articles", func(t *testing.T) {
		articles, err := categoriesRepo.ArticlesFor(peripherals.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"Mechanical keyboard", "Wireless mouse"}, articleNames(articles))
	})

	t.Run("empty for a category without articles", func(t *testing.T) {
		articles, err := categoriesRepo.ArticlesFor(displays.ID)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}
