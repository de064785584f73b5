package entities

import "time"

type DownloadCategory string

const (
	DownloadCategoryCatalog       DownloadCategory = "CATALOG"
	DownloadCategoryTechnical     DownloadCategory = "TECHNICAL"
	DownloadCategoryManual        DownloadCategory = "MANUAL"
	DownloadCategoryCertification DownloadCategory = "CERTIFICATION"
	DownloadCategoryImage         DownloadCategory = "IMAGE"
)

func (c DownloadCategory) Valid() bool {
	switch c {
	case DownloadCategoryCatalog, DownloadCategoryTechnical, DownloadCategoryManual,
		DownloadCategoryCertification, DownloadCategoryImage:
		return true
	}
	return false
}

// DownloadAsset is a file offered in the downloads area (catalogs, manuals...).
type DownloadAsset struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Category      DownloadCategory `json:"category"`
	Description   string           `json:"description,omitempty"`
	FileURL       string           `json:"file_url"`
	FileSize      string           `json:"file_size"`
	FileType      string           `json:"file_type"`
	DownloadCount int              `json:"download_count"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type DownloadAssetPatch struct {
	Title         *string           `json:"title,omitempty"`
	Category      *DownloadCategory `json:"category,omitempty"`
	Description   *string           `json:"description,omitempty"`
	FileURL       *string           `json:"file_url,omitempty"`
	FileSize      *string           `json:"file_size,omitempty"`
	FileType      *string           `json:"file_type,omitempty"`
	DownloadCount *int              `json:"download_count,omitempty"`
}

func (patch DownloadAssetPatch) Apply(d *DownloadAsset) {
	setString(&d.Title, patch.Title)
	if patch.Category != nil {
		d.Category = *patch.Category
	}
	setString(&d.Description, patch.Description)
	setString(&d.FileURL, patch.FileURL)
	setString(&d.FileSize, patch.FileSize)
	setString(&d.FileType, patch.FileType)
	if patch.DownloadCount != nil {
		d.DownloadCount = *patch.DownloadCount
	}
}

type DownloadFilter struct {
	Search   string
	Category DownloadCategory
}
