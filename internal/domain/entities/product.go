package entities

import "time"

// ProductStatus controls catalog visibility: only ACTIVE products are listed
// on the public site.
type ProductStatus string

const (
	ProductStatusActive ProductStatus = "ACTIVE"
	ProductStatusDraft  ProductStatus = "DRAFT"
)

func (s ProductStatus) Valid() bool {
	return s == ProductStatusActive || s == ProductStatusDraft
}

// Dimensions are free-form measurements shown on the product sheet.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
}

// Product is one piece of equipment in the catalog.
//
// CategoryID is a plain reference: deleting the category leaves it dangling.
type Product struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"short_description"`
	SKU              string            `json:"sku"`
	Price            float64           `json:"price"`
	StockQty         int               `json:"stock_qty"`
	Status           ProductStatus     `json:"status"`
	CategoryID       string            `json:"category_id"`
	Images           []string          `json:"images"`
	TechnicalSpecs   map[string]string `json:"technical_specs"`
	Dimensions       *Dimensions       `json:"dimensions,omitempty"`
	SEOTitle         string            `json:"seo_title"`
	SEODescription   string            `json:"seo_description"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ProductPatch carries the fields of a create or partial update. A nil field
// was omitted by the caller.
type ProductPatch struct {
	Title            *string           `json:"title,omitempty"`
	Slug             *string           `json:"slug,omitempty"`
	Description      *string           `json:"description,omitempty"`
	ShortDescription *string           `json:"short_description,omitempty"`
	SKU              *string           `json:"sku,omitempty"`
	Price            *float64          `json:"price,omitempty"`
	StockQty         *int              `json:"stock_qty,omitempty"`
	Status           *ProductStatus    `json:"status,omitempty"`
	CategoryID       *string           `json:"category_id,omitempty"`
	Images           []string          `json:"images,omitempty"`
	TechnicalSpecs   map[string]string `json:"technical_specs,omitempty"`
	Dimensions       *Dimensions       `json:"dimensions,omitempty"`
	SEOTitle         *string           `json:"seo_title,omitempty"`
	SEODescription   *string           `json:"seo_description,omitempty"`
}

// Apply merges the provided fields onto p. Nested values are replaced whole.
func (patch ProductPatch) Apply(p *Product) {
	setString(&p.Title, patch.Title)
	setString(&p.Slug, patch.Slug)
	setString(&p.Description, patch.Description)
	setString(&p.ShortDescription, patch.ShortDescription)
	setString(&p.SKU, patch.SKU)
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.StockQty != nil {
		p.StockQty = *patch.StockQty
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	setString(&p.CategoryID, patch.CategoryID)
	if patch.Images != nil {
		p.Images = append([]string{}, patch.Images...)
	}
	if patch.TechnicalSpecs != nil {
		p.TechnicalSpecs = make(map[string]string, len(patch.TechnicalSpecs))
		for k, v := range patch.TechnicalSpecs {
			p.TechnicalSpecs[k] = v
		}
	}
	if patch.Dimensions != nil {
		d := *patch.Dimensions
		p.Dimensions = &d
	}
	setString(&p.SEOTitle, patch.SEOTitle)
	setString(&p.SEODescription, patch.SEODescription)
}

// ProductFilter narrows a product listing. Empty fields do not filter.
type ProductFilter struct {
	Search     string
	Status     ProductStatus
	CategoryID string
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
