package empresa

// CreateEmpresaDTO é o payload de criação/atualização de empresa.
type CreateEmpresaDTO struct {
	Nome            string  `json:"nome" validate:"required"`
	CNPJ            string  `json:"cnpj" validate:"required"`
	TipoFaturamento string  `json:"tipoFaturamento" validate:"omitempty,oneof=mensal trimestral anual"`
	ValorHoraTicket float64 `json:"valorHoraTicket" validate:"gte=0"`
}
