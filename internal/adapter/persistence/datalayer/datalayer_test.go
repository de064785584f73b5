package datalayer

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"vitrine_industrial/internal/adapter/persistence/storage"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/usecase/interfaces"
)

func fixedClock() func() time.Time {
	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	}
}

func strPtr(s string) *string { return &s }

func TestOrcamentoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults", func(t *testing.T) {
		dl := New(storage.NewMemoryStorage(), WithClock(fixedClock()))
		qtd := 3
		o, err := dl.Orcamentos.Create(ctx, entities.OrcamentoPatch{
			Nome:       strPtr("João Pereira"),
			Email:      strPtr("joao@transjp.com.br"),
			Produto:    strPtr("Bomba de Abastecimento 12V"),
			Quantidade: &qtd,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OrcamentoStatusNovo || o.ID == "" || !o.CriadoEm.Equal(o.AtualizadoEm) {
			t.Fatalf("unexpected orcamento %+v", o)
		}
		got, _ := dl.Orcamentos.Get(ctx, o.ID)
		if got == nil || !reflect.DeepEqual(*got, o) {
			t.Fatalf("stored orcamento differs: %+v", got)
		}

		items, _ := dl.Orcamentos.List(ctx, entities.OrcamentoFilter{})
		if len(items) != 3 || items[0].ID != o.ID {
			t.Fatalf("expected newest first, got %+v", items)
		}
	})

	t.Run("update and filter", func(t *testing.T) {
		dl := New(storage.NewMemoryStorage(), WithClock(fixedClock()))
		done := entities.OrcamentoStatusConcluido
		updated, err := dl.Orcamentos.Update(ctx, "lx2k1a00-orc000001", entities.OrcamentoPatch{
			Status:        &done,
			NotasInternas: strPtr("Fechado por telefone."),
		})
		if err != nil || updated == nil {
			t.Fatalf("expected update, got %v err=%v", updated, err)
		}
		if updated.Nome != "Carlos Mendes" || updated.Status != done {
			t.Fatalf("unexpected merge %+v", updated)
		}
		if !updated.AtualizadoEm.After(updated.CriadoEm) {
			t.Fatalf("expected atualizadoEm refresh")
		}

		items, _ := dl.Orcamentos.List(ctx, entities.OrcamentoFilter{Status: done, Search: "usinasaojose"})
		if len(items) != 1 {
			t.Fatalf("expected 1 match, got %d", len(items))
		}
		items, _ = dl.Orcamentos.List(ctx, entities.OrcamentoFilter{Status: entities.OrcamentoStatusNovo})
		if len(items) != 0 {
			t.Fatalf("expected no novo orcamentos, got %d", len(items))
		}
	})

	t.Run("delete", func(t *testing.T) {
		dl := New(storage.NewMemoryStorage())
		if ok, _ := dl.Orcamentos.Delete(ctx, "lx2k1a00-orc000002"); !ok {
			t.Fatalf("expected delete true")
		}
		if got, _ := dl.Orcamentos.Get(ctx, "lx2k1a00-orc000002"); got != nil {
			t.Fatalf("expected absence after delete")
		}
		if ok, _ := dl.Orcamentos.Delete(ctx, "lx2k1a00-orc000002"); ok {
			t.Fatalf("expected false for missing id")
		}
	})

	t.Run("unavailable storage", func(t *testing.T) {
		dl := New(nil)
		if _, err := dl.Orcamentos.Create(ctx, entities.OrcamentoPatch{}); !errors.Is(err, interfaces.ErrStorageUnavailable) {
			t.Fatalf("expected ErrStorageUnavailable, got %v", err)
		}
		if got, err := dl.Orcamentos.Update(ctx, "x", entities.OrcamentoPatch{}); got != nil || err != nil {
			t.Fatalf("expected nil update, got %v err=%v", got, err)
		}
		if items, err := dl.Orcamentos.List(ctx, entities.OrcamentoFilter{}); err != nil || len(items) != 0 {
			t.Fatalf("expected empty list, got %v err=%v", items, err)
		}
	})
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("shallow merge replaces whole member", func(t *testing.T) {
		dl := New(storage.NewMemoryStorage())
		before, err := dl.Settings.GetSettings(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := dl.Settings.UpdateSettings(ctx, entities.SettingsPatch{
			Empresa: &entities.Empresa{Nome: "Nova Razão Social"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Empresa.Nome != "Nova Razão Social" || updated.Empresa.CNPJ != "" {
			t.Fatalf("expected empresa replaced entirely, got %+v", updated.Empresa)
		}
		if !reflect.DeepEqual(updated.Aparencia, before.Aparencia) || !reflect.DeepEqual(updated.Usuarios, before.Usuarios) {
			t.Fatalf("expected untouched siblings")
		}

		again, _ := dl.Settings.GetSettings(ctx)
		if !reflect.DeepEqual(again, updated) {
			t.Fatalf("expected persisted settings, got %+v", again)
		}
	})

	t.Run("defaults without stored value", func(t *testing.T) {
		store := storage.NewMemoryStorage()
		_ = store.SetItem(ctx, "painel:initialized", "true")
		dl := New(store)
		s, err := dl.Settings.GetSettings(ctx)
		if err != nil || !reflect.DeepEqual(s, DefaultSettings()) {
			t.Fatalf("expected defaults, got %+v err=%v", s, err)
		}
	})

	t.Run("unavailable storage", func(t *testing.T) {
		dl := New(nil)
		off := entities.Notificacoes{AvisarNovosOrcamentos: false}
		s, err := dl.Settings.UpdateSettings(ctx, entities.SettingsPatch{Notificacoes: &off})
		if err != nil || s.Notificacoes.AvisarNovosOrcamentos {
			t.Fatalf("expected merged defaults, got %+v err=%v", s, err)
		}
		s, _ = dl.Settings.GetSettings(ctx)
		if !s.Notificacoes.AvisarNovosOrcamentos {
			t.Fatalf("expected nothing persisted")
		}
	})
}

func TestDataLayer_Backup(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		src := New(storage.NewMemoryStorage())
		_, _ = src.Settings.UpdateSettings(ctx, entities.SettingsPatch{Aparencia: &entities.Aparencia{CorPrimaria: "#000000"}})
		exported, err := src.ExportData(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		dst := New(storage.NewMemoryStorage(), WithNamespace("painel-restore"))
		ok, err := dst.ImportData(ctx, exported)
		if err != nil || !ok {
			t.Fatalf("expected import success, got %v err=%v", ok, err)
		}
		reexported, _ := dst.ExportData(ctx)
		if reexported != exported {
			t.Fatalf("round trip changed data:\n%s\n%s", exported, reexported)
		}
	})

	t.Run("bad settings rejects orcamentos too", func(t *testing.T) {
		dl := New(storage.NewMemoryStorage())
		ok, err := dl.ImportData(ctx, `{"orcamentos": [], "settings": []}`)
		if err != nil || ok {
			t.Fatalf("expected rejection, got %v err=%v", ok, err)
		}
		items, _ := dl.Orcamentos.List(ctx, entities.OrcamentoFilter{})
		if len(items) != 2 {
			t.Fatalf("expected seed kept, got %d", len(items))
		}
	})

	t.Run("null members are ignored", func(t *testing.T) {
		dl := New(storage.NewMemoryStorage())
		ok, err := dl.ImportData(ctx, `{"orcamentos": null, "settings": null}`)
		if err != nil || !ok {
			t.Fatalf("expected import success, got %v err=%v", ok, err)
		}
		items, _ := dl.Orcamentos.List(ctx, entities.OrcamentoFilter{})
		if len(items) != 2 {
			t.Fatalf("expected seed kept, got %d", len(items))
		}
		got, _ := dl.Settings.GetSettings(ctx)
		if !reflect.DeepEqual(got, DefaultSettings()) {
			t.Fatalf("expected default settings, got %+v", got)
		}
		updated, _ := dl.Settings.UpdateSettings(ctx, entities.SettingsPatch{Notificacoes: &entities.Notificacoes{}})
		if !reflect.DeepEqual(updated.Empresa, DefaultSettings().Empresa) {
			t.Fatalf("expected empresa kept after update, got %+v", updated.Empresa)
		}
	})

	t.Run("reset restores seed", func(t *testing.T) {
		dl := New(storage.NewMemoryStorage())
		seeded, _ := dl.ExportData(ctx)
		_, _ = dl.Orcamentos.Delete(ctx, "lx2k1a00-orc000001")
		_, _ = dl.Settings.UpdateSettings(ctx, entities.SettingsPatch{Usuarios: []entities.Usuario{}})

		if err := dl.Reset(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		after, _ := dl.ExportData(ctx)
		if after != seeded {
			t.Fatalf("expected seed after reset")
		}
	})

	t.Run("seed matches defaults", func(t *testing.T) {
		data, err := loadPainelSeed()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(data.Settings, DefaultSettings()) {
			t.Fatalf("seed settings drifted from defaults: %+v", data.Settings)
		}
	})
}
