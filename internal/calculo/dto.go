package calculo

// RecalcularPeriodoDTO é o payload do recálculo em faixa. Quando ateMes/ateAno
// são omitidos, a faixa vai até o mês corrente.
type RecalcularPeriodoDTO struct {
	DeMes  int `json:"deMes"`
	DeAno  int `json:"deAno"`
	AteMes int `json:"ateMes"`
	AteAno int `json:"ateAno"`
}

// ResultadoCascataDTO reporta o avanço da cascata de recálculo.
// Recalculados menor que esperados indica cascata interrompida: os meses
// seguintes ficam desatualizados até nova tentativa.
type ResultadoCascataDTO struct {
	MesesRecalculados int    `json:"mesesRecalculados"`
	MesesEsperados    int    `json:"mesesEsperados"`
	Erro              string `json:"erro,omitempty"`
}
