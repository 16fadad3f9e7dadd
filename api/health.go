package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version versión de la API
const Version = "1.0.0"

// HealthHandler expone el banner del servicio y el health check
type HealthHandler struct {
	db        *gorm.DB
	startedAt time.Time
}

// NewHealthHandler crea el handler de estado
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startedAt: time.Now(),
	}
}

// Banner mensaje de bienvenida del servicio
// @Summary Banner del servicio
// @Description Mensaje de bienvenida con la versión de la API
// @Tags Estado
// @Produce json
// @Success 200 {object} map[string]interface{} "Banner"
// @Router / [get]
func (h *HealthHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API Finanzas Espacio Nova funcionando correctamente",
		"version": Version,
	})
}

// Health estado del servicio
// @Summary Health check
// @Description Estado del servicio: tiempo en línea y conectividad con la base de datos
// @Tags Estado
// @Produce json
// @Success 200 {object} map[string]interface{} "Estado del servicio"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "Connected"
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.Ping() != nil {
		dbStatus = "Disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now(),
		"uptime":    time.Since(h.startedAt).Seconds(),
		"service":   "Finanzas Espacio Nova API",
		"version":   Version,
		"database": gin.H{
			"status": dbStatus,
		},
	})
}
