// Package datalayer persists the admin panel data: the simple quote
// collection (orcamentos) and the settings singleton.
//
// It is seeded and namespaced independently from the catalog repository.
// Both layers can hold quote data side by side; they are not reconciled.
package datalayer

import (
	"context"
	_ "embed"
	"log"
	"sync/atomic"

	"vitrine_industrial/internal/adapter/persistence/kv"
	"vitrine_industrial/internal/domain/entities"
	"vitrine_industrial/internal/infrastructure/seed"
	"vitrine_industrial/internal/usecase/interfaces"
	"vitrine_industrial/pkg/ident"
)

const (
	DefaultNamespace = "painel"

	keyOrcamentos  = "orcamentos"
	keySettings    = "settings"
	keyInitialized = "initialized"
)

//go:embed seed.yaml
var painelSeedYAML []byte

type painelData struct {
	Orcamentos []entities.Orcamento `json:"orcamentos"`
	Settings   entities.Settings    `json:"settings"`
}

type DataLayer struct {
	store     interfaces.IStorage
	namespace string
	now       ident.Clock

	initialized atomic.Bool

	Orcamentos *OrcamentoRepository
	Settings   *SettingsRepository
}

var _ interfaces.IBackupStore = (*DataLayer)(nil)

type Option func(*DataLayer)

func WithNamespace(ns string) Option {
	return func(d *DataLayer) {
		if ns != "" {
			d.namespace = ns
		}
	}
}

func WithClock(clock ident.Clock) Option {
	return func(d *DataLayer) {
		if clock != nil {
			d.now = clock
		}
	}
}

func New(store interfaces.IStorage, opts ...Option) *DataLayer {
	d := &DataLayer{store: store, namespace: DefaultNamespace, now: ident.Now}
	for _, opt := range opts {
		opt(d)
	}
	d.Orcamentos = &OrcamentoRepository{dl: d}
	d.Settings = &SettingsRepository{dl: d}
	return d
}

func (d *DataLayer) Namespace() string {
	return d.namespace
}

func (d *DataLayer) key(name string) string {
	return kv.Key(d.namespace, name)
}

func (d *DataLayer) ensureInitialized(ctx context.Context) error {
	if d.store == nil || d.initialized.Load() {
		return nil
	}
	return d.Init(ctx)
}

func (d *DataLayer) Init(ctx context.Context) error {
	if d.store == nil {
		return nil
	}
	_, found, err := d.store.GetItem(ctx, d.key(keyInitialized))
	if err != nil {
		return err
	}
	if !found {
		log.Printf("[datalayer][%s] seeding namespace", d.namespace)
		data, err := loadPainelSeed()
		if err != nil {
			return err
		}
		if err := kv.SaveList(ctx, d.store, d.key(keyOrcamentos), data.Orcamentos); err != nil {
			return err
		}
		if err := kv.SaveValue(ctx, d.store, d.key(keySettings), data.Settings); err != nil {
			return err
		}
		if err := d.store.SetItem(ctx, d.key(keyInitialized), "true"); err != nil {
			return err
		}
	}
	d.initialized.Store(true)
	return nil
}

func (d *DataLayer) Reset(ctx context.Context) error {
	if d.store == nil {
		return nil
	}
	if err := d.store.RemoveItem(ctx, d.key(keyInitialized)); err != nil {
		return err
	}
	d.initialized.Store(false)
	log.Printf("[datalayer][%s] reset requested", d.namespace)
	return d.Init(ctx)
}

func loadPainelSeed() (painelData, error) {
	var data painelData
	if err := seed.Decode(painelSeedYAML, &data); err != nil {
		return painelData{}, err
	}
	return data, nil
}

// DefaultSettings is what GetSettings returns when nothing was ever saved.
func DefaultSettings() entities.Settings {
	return entities.Settings{
		Empresa: entities.Empresa{
			Nome:     "Vitrine Industrial Equipamentos Ltda.",
			CNPJ:     "00.000.000/0001-00",
			Endereco: "Rod. BR-050, Km 180, Distrito Industrial, Uberaba - MG",
			Telefone: "(34) 3333-0000",
			Email:    "contato@vitrineindustrial.com.br",
		},
		Aparencia: entities.Aparencia{
			CorPrimaria: "#F59E0B",
			CorFundo:    "#0F172A",
			LogoURL:     "/images/logo.svg",
			FaviconURL:  "/favicon.ico",
		},
		Notificacoes: entities.Notificacoes{AvisarNovosOrcamentos: true},
		Usuarios: []entities.Usuario{
			{ID: "usr-admin", Nome: "Administrador", Email: "admin@vitrineindustrial.com.br", Role: "admin"},
		},
	}
}
