package models

import (
	"github.com/shopspring/decimal"
)

// Article represents a catalog item.
// The name is constrained to 5..50 characters and the price must not be
// zero; both rules are enforced at the form boundary before an Article is
// handed to the repository.
type Article struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID *uint
	Category   *Category `gorm:"foreignKey:CategoryID"`
}

func (a *Article) TableName() string {
	return "articles"
}
