package entities

import "time"

// OrcamentoStatus is the admin panel workflow of a simple quote.
type OrcamentoStatus string

const (
	OrcamentoStatusNovo      OrcamentoStatus = "novo"
	OrcamentoStatusEmContato OrcamentoStatus = "em_contato"
	OrcamentoStatusConcluido OrcamentoStatus = "concluido"
)

func (s OrcamentoStatus) Valid() bool {
	switch s {
	case OrcamentoStatusNovo, OrcamentoStatusEmContato, OrcamentoStatusConcluido:
		return true
	}
	return false
}

// Orcamento (orçamento) is the contact-form quote handled by the admin panel.
//
// Storage model:
//   - one JSON array under "<ns>:orcamentos"
//   - independent from QuoteRequest; the schemas are never merged
type Orcamento struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Telefone      string          `json:"telefone"`
	Email         string          `json:"email"`
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	Mensagem      string          `json:"mensagem"`
	Status        OrcamentoStatus `json:"status"`
	NotasInternas string          `json:"notasInternas"`
	CriadoEm      time.Time       `json:"criadoEm"`
	AtualizadoEm  time.Time       `json:"atualizadoEm"`
}

type OrcamentoPatch struct {
	Nome          *string          `json:"nome,omitempty"`
	Telefone      *string          `json:"telefone,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Produto       *string          `json:"produto,omitempty"`
	Quantidade    *int             `json:"quantidade,omitempty"`
	Mensagem      *string          `json:"mensagem,omitempty"`
	Status        *OrcamentoStatus `json:"status,omitempty"`
	NotasInternas *string          `json:"notasInternas,omitempty"`
}

func (patch OrcamentoPatch) Apply(o *Orcamento) {
	setString(&o.Nome, patch.Nome)
	setString(&o.Telefone, patch.Telefone)
	setString(&o.Email, patch.Email)
	setString(&o.Produto, patch.Produto)
	if patch.Quantidade != nil {
		o.Quantidade = *patch.Quantidade
	}
	setString(&o.Mensagem, patch.Mensagem)
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	setString(&o.NotasInternas, patch.NotasInternas)
}

type OrcamentoFilter struct {
	Search string
	Status OrcamentoStatus
}
