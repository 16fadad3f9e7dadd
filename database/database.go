package database

import (
	"errors"
	"fmt"
	"log"

	"finanzas/config"
	"finanzas/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init abre la conexión a postgres, configura el pool y migra los modelos.
// Devuelve el manejador para inyectarlo en los handlers; no se guarda
// ningún estado global.
func Init(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL no configurada")
	}

	logLevel := logger.Info
	if cfg.Server.Mode == "release" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("error conectando a la base de datos: %w", err)
	}

	// Parámetros del pool sobre el *sql.DB subyacente
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("la base de datos no responde: %w", err)
	}

	// Migración automática de tablas
	if err := db.AutoMigrate(
		&models.User{},
		&models.Expense{},
		&models.Receipt{},
	); err != nil {
		return nil, err
	}

	log.Println("base de datos inicializada correctamente")
	return db, nil
}
