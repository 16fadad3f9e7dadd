package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"finanzas/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DefaultUserID usuario al que se asignan los gastos creados,
// temporal hasta implementar autenticación real
const DefaultUserID = 1

// Formatos de fecha aceptados en las peticiones
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ExpenseHandler gestiona las operaciones sobre gastos
type ExpenseHandler struct {
	db *gorm.DB
}

// NewExpenseHandler crea el handler de gastos
func NewExpenseHandler(db *gorm.DB) *ExpenseHandler {
	return &ExpenseHandler{db: db}
}

// CreateExpenseRequest petición de creación de gasto
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" example:"50.25"`
	Description string  `json:"description" example:"Compra de materiales"`
	Category    string  `json:"category" example:"Materiales"`
	Date        string  `json:"date" example:"2024-01-01"`
}

// UpdateExpenseRequest petición de actualización parcial de gasto.
// Los campos son punteros para distinguir "no enviado" (nil, se conserva
// el valor almacenado) de "enviado" (se valida y sobreescribe).
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount,omitempty" example:"99.99"`
	Description *string  `json:"description,omitempty" example:"Compra de materiales"`
	Category    *string  `json:"category,omitempty" example:"Materiales"`
	Date        *string  `json:"date,omitempty" example:"2024-01-01"`
	Status      *string  `json:"status,omitempty" example:"approved"`
}

// Create crea un nuevo gasto
// @Summary Crear un nuevo gasto
// @Description Crea un gasto con monto, descripción, categoría y fecha. Todos los campos son requeridos y el monto debe ser positivo.
// @Tags Gastos
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "Datos del gasto"
// @Success 201 {object} models.Expense "Gasto creado exitosamente"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Petición inválida"))
		return
	}

	if req.Amount == 0 || req.Description == "" || req.Category == "" || req.Date == "" {
		BadRequest(c, "Faltan campos requeridos")
		return
	}

	if req.Amount < 0 {
		BadRequest(c, "El monto debe ser un número positivo")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		BadRequest(c, "Formato de fecha inválido, se espera YYYY-MM-DD")
		return
	}

	expense := models.Expense{
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Date:        date,
		Status:      models.StatusPending,
		UserID:      DefaultUserID,
	}

	if err := h.db.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el gasto"))
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// List obtiene todos los gastos
// @Summary Obtener todos los gastos
// @Description Devuelve la lista completa de gastos con sus recibos asociados
// @Tags Gastos
// @Produce json
// @Success 200 {array} models.Expense "Lista de gastos"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var expenses []models.Expense
	if err := h.db.Preload("Receipts").Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al obtener gastos"))
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// Get obtiene un gasto por su ID
// @Summary Obtener un gasto
// @Description Devuelve el detalle de un gasto por su ID
// @Tags Gastos
// @Produce json
// @Param id path int true "ID del gasto"
// @Success 200 {object} models.Expense "Gasto encontrado"
// @Failure 400 {object} ErrorResponse "ID inválido"
// @Failure 404 {object} ErrorResponse "Gasto no encontrado"
// @Router /api/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var expense models.Expense
	if err := h.db.Preload("Receipts").First(&expense, id).Error; err != nil {
		NotFound(c, "Gasto no encontrado")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update actualiza parcialmente un gasto
// @Summary Actualizar un gasto
// @Description Actualización parcial: solo se modifican los campos presentes en el cuerpo. Un campo enviado con valor inválido (monto no positivo, texto vacío) se rechaza con 400 en lugar de ignorarse.
// @Tags Gastos
// @Accept json
// @Produce json
// @Param id path int true "ID del gasto"
// @Param request body UpdateExpenseRequest true "Campos a modificar"
// @Success 200 {object} models.Expense "Gasto actualizado"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 404 {object} ErrorResponse "Gasto no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var expense models.Expense
	if err := h.db.First(&expense, id).Error; err != nil {
		NotFound(c, "Gasto no encontrado")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Petición inválida"))
		return
	}

	updates := make(map[string]interface{})
	if req.Amount != nil {
		if *req.Amount <= 0 {
			BadRequest(c, "El monto debe ser un número positivo")
			return
		}
		updates["amount"] = *req.Amount
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if desc == "" {
			BadRequest(c, "La descripción no puede estar vacía")
			return
		}
		updates["description"] = desc
	}
	if req.Category != nil {
		cat := strings.TrimSpace(*req.Category)
		if cat == "" {
			BadRequest(c, "La categoría no puede estar vacía")
			return
		}
		updates["category"] = cat
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			BadRequest(c, "Formato de fecha inválido, se espera YYYY-MM-DD")
			return
		}
		updates["date"] = date
	}
	if req.Status != nil {
		valid := false
		for _, s := range models.GetStatuses() {
			if *req.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			BadRequest(c, "Estado inválido, valores permitidos: pending, approved, rejected")
			return
		}
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := h.db.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Error al actualizar el gasto"))
			return
		}
	}

	// Releer el registro actualizado
	h.db.First(&expense, expense.ID)
	c.JSON(http.StatusOK, expense)
}

// Delete elimina un gasto y sus recibos asociados
// @Summary Eliminar un gasto
// @Description Elimina el gasto indicado; los recibos asociados se eliminan en cascada
// @Tags Gastos
// @Produce json
// @Param id path int true "ID del gasto"
// @Success 204 "Gasto eliminado exitosamente"
// @Failure 400 {object} ErrorResponse "ID inválido"
// @Failure 404 {object} ErrorResponse "Gasto no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var expense models.Expense
	if err := h.db.First(&expense, id).Error; err != nil {
		NotFound(c, "Gasto no encontrado")
		return
	}

	// Borrado en cascada de los recibos del gasto
	if err := h.db.Where("expense_id = ?", expense.ID).Delete(&models.Receipt{}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el gasto"))
		return
	}

	if err := h.db.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el gasto"))
		return
	}

	c.Status(http.StatusNoContent)
}
