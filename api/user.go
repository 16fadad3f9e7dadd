package api

import (
	"net/http"
	"strconv"
	"strings"

	"finanzas/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler gestiona las operaciones sobre usuarios
type UserHandler struct {
	db *gorm.DB
}

// NewUserHandler crea el handler de usuarios
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// CreateUserRequest petición de creación de usuario
type CreateUserRequest struct {
	Name     string `json:"name" example:"Ana García"`
	Email    string `json:"email" example:"ana@espacionova.org"`
	Password string `json:"password" example:"secreto123"`
	Role     string `json:"role" example:"user"`
}

// UpdateUserRequest petición de actualización parcial de usuario
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" example:"Ana García"`
	Email    *string `json:"email,omitempty" example:"ana@espacionova.org"`
	Password *string `json:"password,omitempty" example:"secreto123"`
	Role     *string `json:"role,omitempty" example:"admin"`
}

// LoginRequest petición de inicio de sesión
type LoginRequest struct {
	Email    string `json:"email" example:"ana@espacionova.org"`
	Password string `json:"password" example:"secreto123"`
}

// Create registra un nuevo usuario
// @Summary Crear un usuario
// @Description Crea una cuenta de usuario; la contraseña se almacena con hash bcrypt
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Datos del usuario"
// @Success 201 {object} models.User "Usuario creado exitosamente"
// @Failure 400 {object} ErrorResponse "Datos inválidos o email ya registrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Petición inválida"))
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		BadRequest(c, "Faltan campos requeridos (name, email, password)")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		BadRequest(c, "Rol inválido, valores permitidos: admin, user")
		return
	}

	// Comprobar que el email no esté registrado
	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		BadRequest(c, "El email ya está registrado")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, "Error al procesar la contraseña")
		return
	}

	user := models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: string(hashed),
		Role:     role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al crear el usuario"))
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List obtiene todos los usuarios
// @Summary Obtener todos los usuarios
// @Description Devuelve la lista de usuarios; la contraseña nunca se serializa
// @Tags Usuarios
// @Produce json
// @Success 200 {array} models.User "Lista de usuarios"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al obtener usuarios"))
		return
	}

	c.JSON(http.StatusOK, users)
}

// Update actualiza parcialmente un usuario
// @Summary Actualizar un usuario
// @Description Actualización parcial; si se envía una contraseña nueva se vuelve a aplicar el hash
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param request body UpdateUserRequest true "Campos a modificar"
// @Success 200 {object} models.User "Usuario actualizado"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 404 {object} ErrorResponse "Usuario no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		NotFound(c, "Usuario no encontrado")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Petición inválida"))
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			BadRequest(c, "El nombre no puede estar vacío")
			return
		}
		updates["name"] = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email == "" {
			BadRequest(c, "El email no puede estar vacío")
			return
		}
		updates["email"] = email
	}
	if req.Password != nil {
		if *req.Password == "" {
			BadRequest(c, "La contraseña no puede estar vacía")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			InternalError(c, "Error al procesar la contraseña")
			return
		}
		updates["password"] = string(hashed)
	}
	if req.Role != nil {
		if *req.Role != models.RoleAdmin && *req.Role != models.RoleUser {
			BadRequest(c, "Rol inválido, valores permitidos: admin, user")
			return
		}
		updates["role"] = *req.Role
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Error al actualizar el usuario"))
			return
		}
	}

	h.db.First(&user, user.ID)
	c.JSON(http.StatusOK, user)
}

// Delete elimina un usuario
// @Summary Eliminar un usuario
// @Description Elimina el usuario indicado
// @Tags Usuarios
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 204 "Usuario eliminado exitosamente"
// @Failure 400 {object} ErrorResponse "ID inválido"
// @Failure 404 {object} ErrorResponse "Usuario no encontrado"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "ID inválido")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		NotFound(c, "Usuario no encontrado")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al eliminar el usuario"))
		return
	}

	c.Status(http.StatusNoContent)
}

// Login comprueba las credenciales de un usuario.
// No emite tokens ni mantiene sesión: es la única comprobación de
// autorización del sistema.
// @Summary Iniciar sesión
// @Description Comprueba email y contraseña; en caso de éxito devuelve el usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciales"
// @Success 200 {object} models.User "Credenciales válidas"
// @Failure 400 {object} ErrorResponse "Datos inválidos"
// @Failure 401 {object} ErrorResponse "Credenciales inválidas"
// @Router /api/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Petición inválida"))
		return
	}

	if req.Email == "" || req.Password == "" {
		BadRequest(c, "Faltan campos requeridos (email, password)")
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		Unauthorized(c, "Credenciales inválidas")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		Unauthorized(c, "Credenciales inválidas")
		return
	}

	c.JSON(http.StatusOK, user)
}
