package dto

// RegistrarPoblacionRequest registra un conteo de población de gallinas.
type RegistrarPoblacionRequest struct {
	Fecha            string  `json:"fecha" binding:"required"`
	Hora             string  `json:"hora" binding:"required"`
	CantidadGallinas int     `json:"cantidad_gallinas"`
	Descartes        int     `json:"descartes"`
	Observaciones    *string `json:"observaciones"`
}

// RegistrarConsumoAlimentoRequest registra el consumo de alimento del día;
// el total se calcula como consumo por gallina × cantidad de gallinas.
type RegistrarConsumoAlimentoRequest struct {
	Fecha             string  `json:"fecha" binding:"required"`
	Hora              string  `json:"hora" binding:"required"`
	ConsumoPorGallina float64 `json:"consumo_por_gallina"`
	CantidadGallinas  int     `json:"cantidad_gallinas"`
	Observaciones     *string `json:"observaciones"`
}
