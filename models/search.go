package models

// Search criteria are transient: they carry filter parameters from a
// submitted form into a repository query and are never persisted.

// PropertySearch is the list page filter (by exact name and/or category).
type PropertySearch struct {
	Name       string
	CategoryID *uint
}

// CategorySearch filters articles by the chosen category.
type CategorySearch struct {
	CategoryID *uint
}

// PriceSearch filters articles by an inclusive price range. A nil bound is
// unconstrained.
type PriceSearch struct {
	MinPrice *int
	MaxPrice *int
}
