package requerimento

// CreateRequerimentoDTO é o payload de criação de requerimento.
type CreateRequerimentoDTO struct {
	Titulo      string  `json:"titulo" validate:"required"`
	Horas       float64 `json:"horas" validate:"gte=0"`
	Tickets     int     `json:"tickets" validate:"gte=0"`
	MesCobranca int     `json:"mesCobranca" validate:"required,min=1,max=12"`
	AnoCobranca int     `json:"anoCobranca" validate:"required,min=2000"`
}
