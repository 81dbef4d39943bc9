package reajuste

// CreateReajusteDTO é o payload de criação de reajuste.
type CreateReajusteDTO struct {
	Valor      float64 `json:"valor" validate:"required,gt=0"`
	Tipo       string  `json:"tipo" validate:"required,oneof=positivo negativo"`
	Mes        int     `json:"mes" validate:"required,min=1,max=12"`
	Ano        int     `json:"ano" validate:"required,min=2000"`
	Observacao string  `json:"observacao"`
}

// ReajusteComCascataDTO devolve o reajuste criado junto com o avanço da cascata.
type ReajusteComCascataDTO struct {
	Reajuste *Reajuste        `json:"reajuste"`
	Cascata  ResultadoCascata `json:"cascata"`
	Erro     string           `json:"erro,omitempty"`
}
