package request

import (
	"errors"
	"strings"

	"vitrine_industrial/internal/domain/entities"

	"github.com/gosimple/slug"
)

var ErrInvalidSlug = errors.New("slug must be lowercase letters, digits and hyphens")

// validateSlug accepts an omitted slug (generated from the title) and rejects
// anything that is not already in slug form.
func validateSlug(s *string) error {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" || !slug.IsSlug(v) {
		return ErrInvalidSlug
	}
	*s = v
	return nil
}

// ProductRequest is the admin create/update payload. Omitted fields are nil.
type ProductRequest struct {
	entities.ProductPatch
}

func (r *ProductRequest) Validate() error {
	return validateSlug(r.Slug)
}

type CategoryRequest struct {
	entities.CategoryPatch
}

func (r *CategoryRequest) Validate() error {
	return validateSlug(r.Slug)
}

type NewsRequest struct {
	entities.NewsPostPatch
}

func (r *NewsRequest) Validate() error {
	return validateSlug(r.Slug)
}

type DownloadRequest struct {
	entities.DownloadAssetPatch
}

type DistributorRequest struct {
	entities.DistributorPatch
}
