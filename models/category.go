package models

// Category groups articles under a human-readable title.
// An article belongs to at most one category.
type Category struct {
	ID       uint      `gorm:"primaryKey"`
	Titre    string    `gorm:"not null"`
	Articles []Article `gorm:"foreignKey:CategoryID"`
}

func (c *Category) TableName() string {
	return "categories"
}
