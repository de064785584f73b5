package datalayer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
)

func (d *DataLayer) ExportData(ctx context.Context) (string, error) {
	if d.store == nil {
		return "{}", nil
	}
	orcamentos, err := d.Orcamentos.load(ctx)
	if err != nil {
		return "", err
	}
	settings, err := d.Settings.GetSettings(ctx)
	if err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(painelData{Orcamentos: orcamentos, Settings: settings}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal backup: %w", err)
	}
	return string(b), nil
}

// ImportData accepts a document with "orcamentos" and/or "settings". Both are
// decoded before either is written. A member set to null counts as absent.
func (d *DataLayer) ImportData(ctx context.Context, data string) (bool, error) {
	if d.store == nil {
		return false, nil
	}
	if err := d.ensureInitialized(ctx); err != nil {
		return false, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &doc); err != nil || doc == nil {
		log.Printf("[datalayer][%s] import rejected: not a JSON object", d.namespace)
		return false, nil
	}

	var (
		orcamentos []entities.Orcamento
		settings   *entities.Settings
	)
	raw, hasOrcamentos := doc[keyOrcamentos]
	hasOrcamentos = hasOrcamentos && !kv.IsNull(raw)
	if hasOrcamentos {
		if err := json.Unmarshal(raw, &orcamentos); err != nil {
			log.Printf("[datalayer][%s] import rejected: orcamentos: %v", d.namespace, err)
			return false, nil
		}
	}
	if raw, ok := doc[keySettings]; ok && !kv.IsNull(raw) {
		var s entities.Settings
		if err := json.Unmarshal(raw, &s); err != nil {
			log.Printf("[datalayer][%s] import rejected: settings: %v", d.namespace, err)
			return false, nil
		}
		settings = &s
	}

	if hasOrcamentos {
		if err := kv.SaveList(ctx, d.store, d.key(keyOrcamentos), orcamentos); err != nil {
			return false, err
		}
	}
	if settings != nil {
		if err := kv.SaveValue(ctx, d.store, d.key(keySettings), settings); err != nil {
			return false, err
		}
	}
	return true, nil
}
