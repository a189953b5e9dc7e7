package dto

// CrearClienteRequest da de alta un cliente.
type CrearClienteRequest struct {
	Nombre   string  `json:"nombre" binding:"required"`
	Contacto *string `json:"contacto"`
}

// ActualizarClienteRequest edita nombre y contacto.
type ActualizarClienteRequest struct {
	Nombre   string  `json:"nombre" binding:"required"`
	Contacto *string `json:"contacto"`
}

// CrearTrabajadorRequest da de alta un trabajador.
type CrearTrabajadorRequest struct {
	Nombre string  `json:"nombre" binding:"required"`
	Cargo  *string `json:"cargo"`
}

// ActualizarTrabajadorRequest edita nombre y cargo.
type ActualizarTrabajadorRequest struct {
	Nombre string  `json:"nombre" binding:"required"`
	Cargo  *string `json:"cargo"`
}
