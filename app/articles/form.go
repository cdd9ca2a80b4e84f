package articles

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"article-catalog/models"
)

var validate = validator.New()

// articleForm holds the raw submitted field values so the template can
// re-render them verbatim when validation fails.
type articleForm struct {
	Name     string `validate:"required,min=5,max=50"`
	Price    string `validate:"required"`
	Category string `validate:"-"`
}

// articleInput is the validated value handed to the repository. It is only
// constructed once every field passed validation, so a partially populated
// article can never escape the form boundary.
type articleInput struct {
	Name       string
	Price      decimal.Decimal
	CategoryID *uint
}

func bindArticleForm(r *http.Request) articleForm {
	return articleForm{
		Name:     r.PostFormValue("name"),
		Price:    r.PostFormValue("price"),
		Category: r.PostFormValue("category"),
	}
}

// validateArticleForm checks the submitted fields and returns either the
// validated input or per-field error messages keyed by field name.
func validateArticleForm(form articleForm) (articleInput, map[string]string) {
	errs := map[string]string{}

	if err := validate.Struct(form); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.StructField() {
			case "Name":
				switch fe.Tag() {
				case "required":
					errs["name"] = "name is required"
				case "min":
					errs["name"] = "name must be at least 5 characters"
				case "max":
					errs["name"] = "name must be at most 50 characters"
				}
			case "Price":
				errs["price"] = "price is required"
			}
		}
	}

	var price decimal.Decimal
	if form.Price != "" {
		parsed, err := decimal.NewFromString(form.Price)
		switch {
		case err != nil:
			errs["price"] = "price must be a decimal number"
		case parsed.IsZero():
			errs["price"] = "price must not be zero"
		default:
			price = parsed
		}
	}

	if len(errs) > 0 {
		return articleInput{}, errs
	}

	return articleInput{
		Name:       form.Name,
		Price:      price,
		CategoryID: parseCategoryID(form.Category),
	}, nil
}

func parseCategoryID(value string) *uint {
	if value == "" {
		return nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil
	}
	out := uint(id)
	return &out
}

// searchForm holds the raw list page filter values.
type searchForm struct {
	Name     string
	Category string
}

// priceForm holds the raw price range filter values.
type priceForm struct {
	MinPrice string
	MaxPrice string
}

func (f priceForm) criteria() models.PriceSearch {
	return models.PriceSearch{
		MinPrice: parseOptionalInt(f.MinPrice),
		MaxPrice: parseOptionalInt(f.MaxPrice),
	}
}

func (f searchForm) criteria() models.PropertySearch {
	return models.PropertySearch{
		Name:       f.Name,
		CategoryID: parseCategoryID(f.Category),
	}
}

func parseOptionalInt(value string) *int {
	if value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &n
}
