package dto

import "github.com/Dbaena34/Pio-Pio-Baena/internal/model"

// RegistrarProduccionRequest carga una recolección de huevos.
type RegistrarProduccionRequest struct {
	Fecha         string       `json:"fecha" binding:"required"`
	Hora          string       `json:"hora" binding:"required"`
	Conteo        model.Conteo `json:"conteo"`
	Observaciones *string      `json:"observaciones"`
}

// TotalesProduccion agrega la producción de un período por categoría.
type TotalesProduccion struct {
	TotalC           int   `gorm:"column:total_c" json:"total_c"`
	TotalB           int   `gorm:"column:total_b" json:"total_b"`
	TotalA           int   `gorm:"column:total_a" json:"total_a"`
	TotalAA          int   `gorm:"column:total_aa" json:"total_aa"`
	TotalAAA         int   `gorm:"column:total_aaa" json:"total_aaa"`
	TotalJumbo       int   `gorm:"column:total_jumbo" json:"total_jumbo"`
	DiasRegistrados  int64 `gorm:"column:dias_registrados" json:"dias_registrados"`
}

// Total suma las seis categorías del período.
func (t TotalesProduccion) Total() int {
	return t.TotalC + t.TotalB + t.TotalA + t.TotalAA + t.TotalAAA + t.TotalJumbo
}

// AjusteStockRequest registra una merma o corrección sobre el stock de
// huevos. Para mermas las cantidades se pasan como magnitudes no negativas;
// el servicio las niega antes de aplicarlas.
type AjusteStockRequest struct {
	TipoAjuste string       `json:"tipo_ajuste" binding:"required,oneof=merma correccion"`
	Conteo     model.Conteo `json:"conteo"`
	Motivo     *string      `json:"motivo"`
}
