package dto

// RangoFechas filtra consultas por período (fechas YYYY-MM-DD, inclusive).
type RangoFechas struct {
	FechaInicio string `form:"fecha_inicio" json:"fecha_inicio" binding:"required"`
	FechaFin    string `form:"fecha_fin" json:"fecha_fin" binding:"required"`
}

// IDResponse es la respuesta estándar de toda operación de alta.
type IDResponse struct {
	ID string `json:"id"`
}
