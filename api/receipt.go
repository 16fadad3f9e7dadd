package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"finanzas/config"
	"finanzas/models"
	"finanzas/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ImageUploader sube imágenes al servicio de alojamiento externo
type ImageUploader interface {
	Upload(data []byte, name string) (*service.ImageData, error)
}

// ReceiptHandler gestiona las operaciones sobre recibos
type ReceiptHandler struct {
	db                   *gorm.DB
	uploader             ImageUploader
	emptyReceiptsAsError bool
	httpClient           *http.Client
}

// NewReceiptHandler crea el handler de recibos
func NewReceiptHandler(db *gorm.DB, uploader ImageUploader, cfg *config.Config) *ReceiptHandler {
	return &ReceiptHandler{
		db:                   db,
		uploader:             uploader,
		emptyReceiptsAsError: cfg.API.EmptyReceiptsAsError,
		httpClient:           &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateReceiptRequest petición de creación de recibo con URL directa
type CreateReceiptRequest struct {
	URL       string `json:"url" example:"https://i.ibb.co/abc123/recibo.jpg"`
	Filename  string `json:"filename" example:"recibo.jpg"`
	ExpenseID uint   `json:"expenseId" example:"1"`
}

// UpdateReceiptRequest petición de actualización parcial de recibo.
// Punteros para distinguir "no enviado" de "enviado": la URL enviada no
// puede quedar vacía, el nombre de archivo sí puede limpiarse.
type UpdateReceiptRequest struct {
	URL      *string `json:"url,omitempty" example:"https://i.ibb.co/abc123/recibo.jpg"`
	Filename *string `json:"filename,omitempty" example:"recibo.jpg"`
}

// Create crea un recibo a partir de una URL ya existente
// @Summary Crear un recibo
// @Description Registra un recibo cuya imagen ya está alojada; el gasto referenciado debe existir
// @Tags Recibos
// @Accept json
// @Produce json
// @Param request body CreateReceiptRequest true "Datos del recibo"
// @Success 201 {object} models.Receipt "Recibo creado exitosamente"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 404 {object} ErrorResponse "Gasto no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/receipts [post]
func (h *ReceiptHandler) Create(c *gin.Context) {
	var req CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Petición inválida"))
		return
	}

	if req.URL == "" || req.ExpenseID == 0 {
		BadRequest(c, "Faltan campos requeridos (url, expenseId)")
		return
	}

	// El gasto referenciado debe existir
	var expense models.Expense
	if err := h.db.First(&expense, req.ExpenseID).Error; err != nil {
		NotFound(c, "Gasto no encontrado")
		return
	}

	receipt := models.Receipt{
		URL:       req.URL,
		Filename:  req.Filename,
		ExpenseID: req.ExpenseID,
	}

	if err := h.db.Create(&receipt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el recibo"))
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

// List obtiene todos los recibos
// @Summary Obtener todos los recibos
// @Description Devuelve la lista completa de recibos sin filtrar
// @Tags Recibos
// @Produce json
// @Success 200 {array} models.Receipt "Lista de recibos"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/receipts [get]
func (h *ReceiptHandler) List(c *gin.Context) {
	var receipts []models.Receipt
	if err := h.db.Find(&receipts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al obtener recibos"))
		return
	}

	c.JSON(http.StatusOK, receipts)
}

// ListByExpense obtiene los recibos de un gasto
// @Summary Obtener recibos por gasto
// @Description Devuelve los recibos asociados a un gasto. Según configuración, una lista vacía responde 404.
// @Tags Recibos
// @Produce json
// @Param expenseId path int true "ID del gasto"
// @Success 200 {array} models.Receipt "Lista de recibos"
// @Failure 400 {object} ErrorResponse "ID inválido"
// @Failure 404 {object} ErrorResponse "No se encontraron recibos"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/receipts/expense/{expenseId} [get]
func (h *ReceiptHandler) ListByExpense(c *gin.Context) {
	expenseID, err := strconv.ParseUint(c.Param("expenseId"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	receipts := make([]models.Receipt, 0)
	if err := h.db.Where("expense_id = ?", expenseID).Find(&receipts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al obtener recibos"))
		return
	}

	if len(receipts) == 0 && h.emptyReceiptsAsError {
		NotFound(c, "No se encontraron recibos para este gasto")
		return
	}

	c.JSON(http.StatusOK, receipts)
}

// Update actualiza parcialmente un recibo
// @Summary Actualizar un recibo
// @Description Actualización parcial de url y filename; solo se modifican los campos presentes
// @Tags Recibos
// @Accept json
// @Produce json
// @Param id path int true "ID del recibo"
// @Param request body UpdateReceiptRequest true "Campos a modificar"
// @Success 200 {object} models.Receipt "Recibo actualizado"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 404 {object} ErrorResponse "Recibo no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/receipts/{id} [put]
func (h *ReceiptHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var receipt models.Receipt
	if err := h.db.First(&receipt, id).Error; err != nil {
		NotFound(c, "Recibo no encontrado")
		return
	}

	var req UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Petición inválida"))
		return
	}

	updates := make(map[string]interface{})
	if req.URL != nil {
		if *req.URL == "" {
			BadRequest(c, "La URL no puede estar vacía")
			return
		}
		updates["url"] = *req.URL
	}
	if req.Filename != nil {
		updates["filename"] = *req.Filename
	}

	if len(updates) > 0 {
		if err := h.db.Model(&receipt).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Error al actualizar el recibo"))
			return
		}
	}

	h.db.First(&receipt, receipt.ID)
	c.JSON(http.StatusOK, receipt)
}

// Delete elimina un recibo
// @Summary Eliminar un recibo
// @Description Elimina el recibo indicado
// @Tags Recibos
// @Produce json
// @Param id path int true "ID del recibo"
// @Success 204 "Recibo eliminado exitosamente"
// @Failure 400 {object} ErrorResponse "ID inválido"
// @Failure 404 {object} ErrorResponse "Recibo no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/receipts/{id} [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var receipt models.Receipt
	if err := h.db.First(&receipt, id).Error; err != nil {
		NotFound(c, "Recibo no encontrado")
		return
	}

	if err := h.db.Delete(&receipt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el recibo"))
		return
	}

	c.Status(http.StatusNoContent)
}

// Upload sube la imagen de un recibo al servicio externo y crea el recibo
// @Summary Subir una imagen de recibo
// @Description Recibe un formulario multipart con la imagen y el ID del gasto, sube la imagen a ImgBB y registra el recibo con las URLs resultantes
// @Tags Recibos
// @Accept mpfd
// @Produce json
// @Param file formData file true "Imagen del recibo"
// @Param expenseId formData int true "ID del gasto asociado"
// @Success 201 {object} map[string]interface{} "Recibo creado exitosamente"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 404 {object} ErrorResponse "Gasto no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servicio de imágenes"
// @Router /api/upload [post]
func (h *ReceiptHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "No se ha proporcionado ningún archivo")
		return
	}

	expenseIDStr := c.PostForm("expenseId")
	if expenseIDStr == "" {
		BadRequest(c, "Se requiere el ID del gasto (expenseId)")
		return
	}
	expenseID, err := strconv.ParseUint(expenseIDStr, 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var expense models.Expense
	if err := h.db.First(&expense, expenseID).Error; err != nil {
		NotFound(c, "Gasto no encontrado")
		return
	}

	src, err := file.Open()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al procesar el recibo"))
		return
	}
	defer src.Close()

	data := make([]byte, file.Size)
	if _, err := io.ReadFull(src, data); err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al procesar el recibo"))
		return
	}

	imageData, err := h.uploader.Upload(data, file.Filename)
	if err != nil {
		UpstreamError(c, "Error al procesar el recibo", err)
		return
	}

	receipt := models.Receipt{
		URL:          imageData.URL,
		Filename:     file.Filename,
		ThumbnailURL: imageData.ThumbnailURL,
		DeleteURL:    imageData.DeleteURL,
		ExpenseID:    uint(expenseID),
	}

	// Si el insert falla, la imagen ya subida no se limpia del host externo
	if err := h.db.Create(&receipt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el recibo"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recibo creado exitosamente",
		"data": gin.H{
			"receipt": receipt,
			"imageData": gin.H{
				"url":        imageData.URL,
				"delete_url": imageData.DeleteURL,
				"thumbnail":  imageData.ThumbnailURL,
			},
		},
	})
}

// Download descarga la imagen de un recibo reenviándola desde su URL
// @Summary Descargar un recibo
// @Description Recupera la imagen del recibo desde su URL remota y la reenvía como adjunto, conservando el tipo de contenido original
// @Tags Recibos
// @Produce octet-stream
// @Param id path int true "ID del recibo"
// @Success 200 {file} file "Imagen del recibo"
// @Failure 400 {object} ErrorResponse "ID inválido"
// @Failure 404 {object} ErrorResponse "Recibo no encontrado"
// @Failure 500 {object} ErrorResponse "Error al descargar"
// @Router /api/receipts/{id}/download [get]
func (h *ReceiptHandler) Download(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var receipt models.Receipt
	if err := h.db.First(&receipt, id).Error; err != nil {
		NotFound(c, "Recibo no encontrado")
		return
	}

	resp, err := h.httpClient.Get(receipt.URL)
	if err != nil {
		InternalError(c, "Error al descargar el recibo")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		InternalError(c, "Error al descargar el recibo")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", receipt.Filename))
	c.DataFromReader(http.StatusOK, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, nil)
}
