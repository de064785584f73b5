package entities

import "time"

type NewsCategory string

const (
	NewsCategoryProduct NewsCategory = "PRODUCT"
	NewsCategoryMarket  NewsCategory = "MARKET"
	NewsCategoryCompany NewsCategory = "COMPANY"
)

func (c NewsCategory) Valid() bool {
	return c == NewsCategoryProduct || c == NewsCategoryMarket || c == NewsCategoryCompany
}

// NewsPost is an article of the institutional blog. A nil PublishedAt is a draft.
type NewsPost struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Category    NewsCategory `json:"category"`
	Summary     string       `json:"summary"`
	Content     string       `json:"content"`
	CoverImage  string       `json:"cover_image,omitempty"`
	Author      string       `json:"author"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// SortTime is the instant used to order the news feed.
func (n NewsPost) SortTime() time.Time {
	if n.PublishedAt != nil {
		return *n.PublishedAt
	}
	return n.CreatedAt
}

type NewsPostPatch struct {
	Title       *string       `json:"title,omitempty"`
	Slug        *string       `json:"slug,omitempty"`
	Category    *NewsCategory `json:"category,omitempty"`
	Summary     *string       `json:"summary,omitempty"`
	Content     *string       `json:"content,omitempty"`
	CoverImage  *string       `json:"cover_image,omitempty"`
	Author      *string       `json:"author,omitempty"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
}

func (patch NewsPostPatch) Apply(n *NewsPost) {
	setString(&n.Title, patch.Title)
	setString(&n.Slug, patch.Slug)
	if patch.Category != nil {
		n.Category = *patch.Category
	}
	setString(&n.Summary, patch.Summary)
	setString(&n.Content, patch.Content)
	setString(&n.CoverImage, patch.CoverImage)
	setString(&n.Author, patch.Author)
	if patch.PublishedAt != nil {
		ts := *patch.PublishedAt
		n.PublishedAt = &ts
	}
}

type NewsFilter struct {
	Search   string
	Category NewsCategory
}
