package entities

import "time"

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryPatch struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

func (patch CategoryPatch) Apply(c *Category) {
	setString(&c.Name, patch.Name)
	setString(&c.Slug, patch.Slug)
}

type CategoryFilter struct {
	Search string
}
