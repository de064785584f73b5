package entities

// Settings is the admin panel singleton: company data, look and feel,
// notification switches and the panel user list.
type Settings struct {
	Empresa      Empresa      `json:"empresa"`
	Aparencia    Aparencia    `json:"aparencia"`
	Notificacoes Notificacoes `json:"notificacoes"`
	Usuarios     []Usuario    `json:"usuarios"`
}

type Empresa struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

type Aparencia struct {
	CorPrimaria string `json:"corPrimaria"`
	CorFundo    string `json:"corFundo"`
	LogoURL     string `json:"logoUrl"`
	FaviconURL  string `json:"faviconUrl"`
}

type Notificacoes struct {
	AvisarNovosOrcamentos bool `json:"avisarNovosOrcamentos"`
}

type Usuario struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SettingsPatch is merged at the top level only: a provided member replaces
// the stored member entirely, sibling keys inside it are not kept.
type SettingsPatch struct {
	Empresa      *Empresa      `json:"empresa,omitempty"`
	Aparencia    *Aparencia    `json:"aparencia,omitempty"`
	Notificacoes *Notificacoes `json:"notificacoes,omitempty"`
	Usuarios     []Usuario     `json:"usuarios,omitempty"`
}

func (patch SettingsPatch) Apply(s *Settings) {
	if patch.Empresa != nil {
		s.Empresa = *patch.Empresa
	}
	if patch.Aparencia != nil {
		s.Aparencia = *patch.Aparencia
	}
	if patch.Notificacoes != nil {
		s.Notificacoes = *patch.Notificacoes
	}
	if patch.Usuarios != nil {
		s.Usuarios = append([]Usuario{}, patch.Usuarios...)
	}
}
