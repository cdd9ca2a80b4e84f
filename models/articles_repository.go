package models

import (
	"errors"

	"gorm.io/gorm"
)

// ErrArticleNotFound is returned when an article is not found.
var ErrArticleNotFound = errors.New("article not found")

type ArticlesRepository struct {
	db *gorm.DB
}

func NewArticlesRepository(db *gorm.DB) *ArticlesRepository {
	return &ArticlesRepository{
		db: db,
	}
}

// FindAll returns every article in insertion order.
func (r *ArticlesRepository) FindAll() ([]Article, error) {
	var articles []Article
	if err := r.db.
		Preload("Category").
		Order("id").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticlesRepository) FindByID(id uint) (*Article, error) {
	var article Article
	if err := r.db.
		Preload("Category").
		First(&article, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err // Other DB error
	}
	return &article, nil
}

// FindByName returns the articles whose name matches exactly.
func (r *ArticlesRepository) FindByName(name string) ([]Article, error) {
	var articles []Article
	if err := r.db.
		Preload("Category").
		Where("name = ?", name).
		Order("id").
		Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByPriceRange returns the articles whose price lies in [min, max]
// inclusive. A nil bound leaves that side of the range unconstrained, so
// with both bounds nil the full set comes back.
func (r *ArticlesRepository) FindByPriceRange(min, max *int) ([]Article, error) {
	query := r.db.Preload("Category").Order("id")

	if min != nil {
		query = query.Where("price >= ?", *min)
	}
	if max != nil {
		query = query.Where("price <= ?", *max)
	}

	var articles []Article
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticlesRepository) Create(article *Article) error {
	return r.db.Create(article).Error
}

func (r *ArticlesRepository) Update(article *Article) error {
	return r.db.Save(article).Error
}

// Delete removes the article with the given id. Deleting an id that does
// not exist returns ErrArticleNotFound and leaves the store unchanged.
func (r *ArticlesRepository) Delete(id uint) error {
	res := r.db.Delete(&Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}
