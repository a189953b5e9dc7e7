package router

import (
	"github.com/Dbaena34/Pio-Pio-Baena/internal/config"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/handler"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/middleware"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New arma todas las dependencias y devuelve el engine configurado.
// Grafo: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// El orden de la cadena importa
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Repositorios ─────────────────────────────────────────────────────────
	produccionRepo := repository.NewProduccionRepository(db)
	stockRepo := repository.NewStockHuevosRepository(db)
	insumoRepo := repository.NewInsumoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	trabajadorRepo := repository.NewTrabajadorRepository(db)
	pagoRepo := repository.NewPagoTrabajadorRepository(db)
	precioRepo := repository.NewPrecioRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	movimientoRepo := repository.NewMovimientoFinancieroRepository(db)
	gallinasRepo := repository.NewGallinasRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	// ── Servicios ────────────────────────────────────────────────────────────
	produccionSvc := service.NewProduccionService(produccionRepo, stockRepo)
	stockSvc := service.NewStockService(stockRepo)
	insumoSvc := service.NewInsumoService(insumoRepo, movimientoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	trabajadorSvc := service.NewTrabajadorService(trabajadorRepo, pagoRepo, movimientoRepo, db)
	precioSvc := service.NewPrecioService(precioRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, clienteRepo, stockRepo, movimientoRepo)
	gallinasSvc := service.NewGallinasService(gallinasRepo)
	reporteSvc := service.NewReporteService(reporteRepo, movimientoRepo, stockRepo, insumoRepo, cfg.TopClientesDefault)

	// ── Handlers ─────────────────────────────────────────────────────────────
	produccionH := handler.NewProduccionHandler(produccionSvc)
	stockH := handler.NewStockHandler(stockSvc)
	insumosH := handler.NewInsumosHandler(insumoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	trabajadoresH := handler.NewTrabajadoresHandler(trabajadorSvc)
	preciosH := handler.NewPreciosHandler(precioSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	gallinasH := handler.NewGallinasHandler(gallinasSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Rutas ────────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	v1 := r.Group("/v1")
	{
		prod := v1.Group("/produccion")
		{
			prod.POST("", produccionH.Registrar)
			prod.GET("", produccionH.Listar)
			prod.GET("/fecha/:fecha", produccionH.ListarPorFecha)
			prod.GET("/totales", produccionH.Totales)
		}

		stock := v1.Group("/stock-huevos")
		{
			stock.GET("", stockH.Obtener)
			stock.GET("/estadisticas", stockH.Estadisticas)
			stock.POST("/ajustes", stockH.Ajustar)
			stock.GET("/ajustes", stockH.HistorialAjustes)
		}

		insumos := v1.Group("/insumos")
		{
			insumos.POST("/compras", insumosH.RegistrarCompra)
			insumos.GET("/compras", insumosH.HistorialCompras)
			insumos.GET("/compras/categorias", insumosH.ComprasPorCategoria)
			insumos.POST("/consumos", insumosH.RegistrarConsumo)
			insumos.GET("/stock", insumosH.ListarStock)
			insumos.GET("/alertas", insumosH.Alertas)
			insumos.PATCH("/stock/:id/minimo", insumosH.ActualizarStockMinimo)
			insumos.PATCH("/stock/:id/ajuste", insumosH.AjustarStock)
			insumos.GET("/movimientos", insumosH.HistorialMovimientos)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Desactivar)
			clientes.GET("/:id/pedidos", clientesH.Historial)
		}

		trabajadores := v1.Group("/trabajadores")
		{
			trabajadores.POST("", trabajadoresH.Crear)
			trabajadores.GET("", trabajadoresH.Listar)
			trabajadores.GET("/:id", trabajadoresH.Obtener)
			trabajadores.PUT("/:id", trabajadoresH.Actualizar)
			trabajadores.DELETE("/:id", trabajadoresH.Desactivar)
			trabajadores.GET("/:id/pagos", trabajadoresH.PagosPorTrabajador)
			trabajadores.GET("/:id/pagos/total", trabajadoresH.TotalPagado)
		}

		pagos := v1.Group("/pagos")
		{
			pagos.POST("", trabajadoresH.RegistrarPago)
			pagos.GET("", trabajadoresH.HistorialPagos)
		}

		precios := v1.Group("/precios")
		{
			precios.GET("/actual", preciosH.Actual)
			precios.POST("", preciosH.Crear)
			precios.GET("/historial", preciosH.Historial)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("/pendientes", pedidosH.ListarPendientes)
			pedidos.GET("/:id", pedidosH.Obtener)
			pedidos.PUT("/:id", pedidosH.Actualizar)
			pedidos.POST("/:id/cancelar", pedidosH.Cancelar)
			pedidos.POST("/:id/despachar", pedidosH.Despachar)
		}
		v1.GET("/ventas", pedidosH.HistorialVentas)

		gallinas := v1.Group("/gallinas")
		{
			gallinas.POST("/poblacion", gallinasH.RegistrarPoblacion)
			gallinas.GET("/poblacion/actual", gallinasH.PoblacionActual)
			gallinas.GET("/poblacion", gallinasH.HistorialPoblacion)
			gallinas.POST("/consumo", gallinasH.RegistrarConsumo)
			gallinas.GET("/consumo", gallinasH.HistorialConsumo)
		}

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/balance", reportesH.Balance)
			reportes.GET("/movimientos", reportesH.Movimientos)
			reportes.GET("/movimientos/categorias", reportesH.MovimientosPorCategoria)
			reportes.GET("/produccion-ventas", reportesH.ResumenProduccionVentas)
			reportes.GET("/produccion-diaria", reportesH.ProduccionDiaria)
			reportes.GET("/ventas-diarias", reportesH.VentasDiarias)
			reportes.GET("/ventas-categorias", reportesH.VentasPorCategoria)
			reportes.GET("/top-clientes", reportesH.TopClientes)
			reportes.GET("/costo-por-huevo", reportesH.CostoPorHuevo)
			reportes.GET("/compras-categorias", reportesH.ComprasPorCategoria)

			export := reportes.Group("/export")
			{
				export.GET("/produccion.csv", reportesH.ExportarProduccionCSV)
				export.GET("/ventas.csv", reportesH.ExportarVentasCSV)
				export.GET("/movimientos.csv", reportesH.ExportarMovimientosCSV)
				export.GET("/libro.xlsx", reportesH.ExportarLibroXLSX)
			}
		}
	}

	return r
}
