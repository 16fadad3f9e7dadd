package router

import (
	"time"

	"finanzas/api"
	"finanzas/config"
	_ "finanzas/docs"
	"finanzas/middleware"
	"finanzas/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configura las rutas de la API
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Modo de ejecución
	gin.SetMode(cfg.Server.Mode)

	// gin.Default incluye Recovery: cualquier fallo inesperado
	// termina en un 500 genérico sin detalles
	r := gin.Default()

	// Middleware CORS
	r.Use(CORSMiddleware())

	// Estado del servicio
	healthHandler := api.NewHealthHandler(db)
	r.GET("/", healthHandler.Banner)
	r.GET("/health", healthHandler.Health)

	// Documentación Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	uploader := service.NewImgBBClient(&cfg.ImgBB)

	apiGroup := r.Group("/api")
	{
		// Gastos
		expenseHandler := api.NewExpenseHandler(db)
		expenses := apiGroup.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		// Recibos
		receiptHandler := api.NewReceiptHandler(db, uploader, cfg)
		receipts := apiGroup.Group("/receipts")
		{
			receipts.POST("", receiptHandler.Create)
			receipts.GET("", receiptHandler.List)
			receipts.GET("/expense/:expenseId", receiptHandler.ListByExpense)
			receipts.PUT("/:id", receiptHandler.Update)
			receipts.DELETE("/:id", receiptHandler.Delete)
			receipts.GET("/:id/download", receiptHandler.Download)
		}
		apiGroup.POST("/upload", receiptHandler.Upload)

		// Usuarios
		userHandler := api.NewUserHandler(db)
		users := apiGroup.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("", userHandler.List)
			users.PUT("/:id", userHandler.Update)
			users.DELETE("/:id", userHandler.Delete)
		}
		apiGroup.POST("/login", middleware.LoginRateLimit(10, time.Minute), userHandler.Login)

		// Exportación
		exportHandler := api.NewExportHandler(db)
		export := apiGroup.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	return r
}

// CORSMiddleware middleware CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
