package calculo

// mesAnterior devolve o mês imediatamente anterior a (mes, ano).
func mesAnterior(mes, ano int) (int, int) {
	if mes == 1 {
		return 12, ano - 1
	}
	return mes - 1, ano
}

// mesSeguinte devolve o mês imediatamente posterior a (mes, ano).
func mesSeguinte(mes, ano int) (int, int) {
	if mes == 12 {
		return 1, ano + 1
	}
	return mes + 1, ano
}

// antesOuIgual informa se (mesA, anoA) não vem depois de (mesB, anoB).
func antesOuIgual(mesA, anoA, mesB, anoB int) bool {
	if anoA != anoB {
		return anoA < anoB
	}
	return mesA <= mesB
}

// contarMeses conta os meses do intervalo fechado [(deMes, deAno), (ateMes, ateAno)].
func contarMeses(deMes, deAno, ateMes, ateAno int) int {
	if !antesOuIgual(deMes, deAno, ateMes, ateAno) {
		return 0
	}
	return (ateAno-deAno)*12 + ateMes - deMes + 1
}
