package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	return gormDB, mock, func() {
		sqlDB.Close()
	}
}

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "amount", "description", "category", "date", "status", "user_id", "created_at", "updated_at", "deleted_at"})
}

func TestExpenseHandler_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "expenses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/api/expenses", NewExpenseHandler(db).Create)

	body := `{"amount":50.25,"description":"Compra de materiales","category":"Materiales","date":"2024-01-01"}`
	req := httptest.NewRequest("POST", "/api/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 50.25, resp["amount"])
	assert.Equal(t, "pending", resp["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_MissingFields(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/expenses", NewExpenseHandler(db).Create)

	// Sin descripción ni categoría
	body := `{"amount":50.25,"date":"2024-01-01"}`
	req := httptest.NewRequest("POST", "/api/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Faltan campos requeridos")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_NegativeAmount(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/expenses", NewExpenseHandler(db).Create)

	body := `{"amount":-10,"description":"Compra","category":"Materiales","date":"2024-01-01"}`
	req := httptest.NewRequest("POST", "/api/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "positivo")
}

func TestExpenseHandler_Create_InvalidDate(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/expenses", NewExpenseHandler(db).Create)

	body := `{"amount":10,"description":"Compra","category":"Materiales","date":"01/01/2024"}`
	req := httptest.NewRequest("POST", "/api/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "fecha")
}

func TestExpenseHandler_List(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows().
			AddRow(1, 99.99, "Almuerzo", "Comida", time.Now(), "pending", 1, time.Now(), time.Now(), nil))

	// Preload de los recibos asociados
	mock.ExpectQuery(`SELECT .* FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "filename", "expense_id", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "https://i.ibb.co/abc123/recibo.jpg", "recibo.jpg", 1, time.Now(), time.Now(), nil))

	router := gin.New()
	router.GET("/api/expenses", NewExpenseHandler(db).List)

	req := httptest.NewRequest("GET", "/api/expenses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Almuerzo", resp[0]["description"])
	receipts, ok := resp[0]["receipts"].([]interface{})
	require.True(t, ok)
	assert.Len(t, receipts, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows().
			AddRow(5, 25.50, "Taxi", "Transporte", time.Now(), "approved", 1, time.Now(), time.Now(), nil))

	mock.ExpectQuery(`SELECT .* FROM "receipts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "filename", "expense_id", "created_at", "updated_at", "deleted_at"}))

	router := gin.New()
	router.GET("/api/expenses/:id", NewExpenseHandler(db).Get)

	req := httptest.NewRequest("GET", "/api/expenses/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(5), resp["id"])
	assert.Equal(t, "approved", resp["status"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows())

	router := gin.New()
	router.GET("/api/expenses/:id", NewExpenseHandler(db).Get)

	req := httptest.NewRequest("GET", "/api/expenses/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Gasto no encontrado")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_InvalidID(t *testing.T) {
	db, _, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/api/expenses/:id", NewExpenseHandler(db).Get)

	req := httptest.NewRequest("GET", "/api/expenses/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "ID inválido")
}

func TestExpenseHandler_Update_Partial(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows().
			AddRow(1, 99.99, "Almuerzo", "Comida", time.Now(), "pending", 1, time.Now(), time.Now(), nil))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "expenses" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Relectura tras la actualización
	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows().
			AddRow(1, 150.00, "Almuerzo", "Comida", time.Now(), "pending", 1, time.Now(), time.Now(), nil))

	router := gin.New()
	router.PUT("/api/expenses/:id", NewExpenseHandler(db).Update)

	// Solo se envía el monto, el resto de campos se conserva
	body := `{"amount":150.00}`
	req := httptest.NewRequest("PUT", "/api/expenses/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(150), resp["amount"])
	assert.Equal(t, "Almuerzo", resp["description"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_ZeroAmount(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows().
			AddRow(1, 99.99, "Almuerzo", "Comida", time.Now(), "pending", 1, time.Now(), time.Now(), nil))

	router := gin.New()
	router.PUT("/api/expenses/:id", NewExpenseHandler(db).Update)

	// Un monto enviado explícitamente debe ser positivo
	body := `{"amount":0}`
	req := httptest.NewRequest("PUT", "/api/expenses/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "positivo")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_InvalidStatus(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows().
			AddRow(1, 99.99, "Almuerzo", "Comida", time.Now(), "pending", 1, time.Now(), time.Now(), nil))

	router := gin.New()
	router.PUT("/api/expenses/:id", NewExpenseHandler(db).Update)

	body := `{"status":"archivado"}`
	req := httptest.NewRequest("PUT", "/api/expenses/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Estado inválido")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Update_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows())

	router := gin.New()
	router.PUT("/api/expenses/:id", NewExpenseHandler(db).Update)

	body := `{"amount":10}`
	req := httptest.NewRequest("PUT", "/api/expenses/999", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete_Cascade(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows().
			AddRow(1, 99.99, "Almuerzo", "Comida", time.Now(), "pending", 1, time.Now(), time.Now(), nil))

	// Primero se eliminan los recibos del gasto
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "receipts" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Después el gasto
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "expenses" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/api/expenses/:id", NewExpenseHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/api/expenses/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	assert.Empty(t, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "expenses"`).
		WillReturnRows(expenseRows())

	router := gin.New()
	router.DELETE("/api/expenses/:id", NewExpenseHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/api/expenses/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Gasto no encontrado")
	require.NoError(t, mock.ExpectationsWereMet())
}
