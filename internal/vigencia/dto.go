package vigencia

// CreateBaselineDTO é o payload de criação de vigência de baseline.
type CreateBaselineDTO struct {
	BaselineHoras   float64 `json:"baselineHoras" validate:"gte=0"`
	BaselineTickets int     `json:"baselineTickets" validate:"gte=0"`
	DataInicio      string  `json:"dataInicio" validate:"required"`
	DataFim         string  `json:"dataFim"`
	Motivo          string  `json:"motivo" validate:"required"`
	Observacao      string  `json:"observacao"`
}

// CreateRepasseDTO é o payload de criação de vigência de repasse.
type CreateRepasseDTO struct {
	PercentualRepasse float64 `json:"percentualRepasse" validate:"gte=0,lte=100"`
	DataInicio        string  `json:"dataInicio" validate:"required"`
	DataFim           string  `json:"dataFim"`
	Motivo            string  `json:"motivo" validate:"required"`
	Observacao        string  `json:"observacao"`
}
