package repository

import (
	_ "embed"

	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/infrastructure/seed"
)

//go:embed seed.yaml
var catalogSeedYAML []byte

// catalogData is the shape of both the seed document and the backup export.
type catalogData struct {
	Products     []entities.Product       `json:"products"`
	Quotes       []entities.QuoteRequest  `json:"quotes"`
	Downloads    []entities.DownloadAsset `json:"downloads"`
	News         []entities.NewsPost      `json:"news"`
	Distributors []entities.Distributor   `json:"distributors"`
	Categories   []entities.Category      `json:"categories"`
}

func loadCatalogSeed() (catalogData, error) {
	var data catalogData
	if err := seed.Decode(catalogSeedYAML, &data); err != nil {
		return catalogData{}, err
	}
	return data, nil
}
