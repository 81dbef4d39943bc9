package vigencia

import "time"

// Janela é qualquer registro com intervalo de efetividade [inicio, fim).
type Janela interface {
	Periodo() (inicio time.Time, fim *time.Time)
}

// ResolverVigente seleciona a vigência efetiva para a data de referência:
// data_inicio <= referência e (data_fim nula ou referência < data_fim).
// Função pura sobre os registros já carregados; não repara sobreposições —
// mais de uma candidata é ErrVigenciaAmbigua, nenhuma é ErrVigenciaNaoEncontrada.
func ResolverVigente[T Janela](vigencias []T, dataReferencia time.Time) (T, error) {
	var vigente T
	encontrou := false
	for _, v := range vigencias {
		inicio, fim := v.Periodo()
		if inicio.After(dataReferencia) {
			continue
		}
		if fim != nil && !dataReferencia.Before(*fim) {
			continue
		}
		if encontrou {
			var vazia T
			return vazia, ErrVigenciaAmbigua
		}
		vigente = v
		encontrou = true
	}
	if !encontrou {
		var vazia T
		return vazia, ErrVigenciaNaoEncontrada
	}
	return vigente, nil
}

// sobrepoe verifica interseção entre dois intervalos [inicio, fim),
// com fim nulo tratado como aberto.
func sobrepoe(aInicio time.Time, aFim *time.Time, bInicio time.Time, bFim *time.Time) bool {
	if aFim != nil && !bInicio.Before(*aFim) {
		return false
	}
	if bFim != nil && !aInicio.Before(*bFim) {
		return false
	}
	return true
}
