package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuración de la aplicación
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	ImgBB    ImgBBConfig    `mapstructure:"imgbb"`
	API      APIConfig      `mapstructure:"api"`
}

// ServerConfig configuración del servidor HTTP
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig configuración de la base de datos
type DatabaseConfig struct {
	URL                string        `mapstructure:"url"`
	MaxOpenConns       int           `mapstructure:"max_open_conns"`
	MaxIdleConns       int           `mapstructure:"max_idle_conns"`
	ConnMaxIdleSeconds int           `mapstructure:"conn_max_idle_seconds"`
	ConnMaxIdleTime    time.Duration `mapstructure:"-"`
}

// ImgBBConfig configuración del servicio externo de imágenes
type ImgBBConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Endpoint string `mapstructure:"endpoint"`
}

// APIConfig ajustes de comportamiento de la API
type APIConfig struct {
	EmptyReceiptsAsError bool `mapstructure:"empty_receipts_as_error"`
}

var (
	// GlobalConfig instancia global de configuración
	GlobalConfig *Config
)

// LoadConfig carga la configuración
// Prioridad: variables de entorno > archivo externo > configuración embebida
// configPath: ruta opcional a un archivo de configuración externo
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Cargar la configuración por defecto embebida
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("error leyendo configuración embebida: %w", err)
	}

	// 2. Intentar cargar un archivo de configuración externo (opcional)
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("aviso: no se pudo leer el archivo de configuración %s: %v", configPath, err)
		} else {
			log.Printf("configuración externa aplicada: %s", configPath)
		}
	} else {
		externalViper := viper.New()
		externalViper.SetConfigName("config")
		externalViper.SetConfigType("yaml")
		externalViper.AddConfigPath(".")
		externalViper.AddConfigPath("./config")
		externalViper.AddConfigPath("/etc/finanzas")

		if err := externalViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(externalViper.AllSettings()); err != nil {
				log.Printf("aviso: no se pudo combinar la configuración externa: %v", err)
			} else {
				log.Printf("configuración externa aplicada: %s", externalViper.ConfigFileUsed())
			}
		}
	}

	// 3. Variables de entorno
	v.SetEnvPrefix("FINANZAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Variables históricas del despliegue original
	_ = v.BindEnv("database.url", "FINANZAS_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("imgbb.api_key", "FINANZAS_IMGBB_API_KEY", "IMGBB_API_KEY")
	_ = v.BindEnv("server.port", "FINANZAS_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.mode", "FINANZAS_SERVER_MODE", "NODE_ENV")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error interpretando configuración: %w", err)
	}

	// NODE_ENV usa otros nombres de modo
	switch cfg.Server.Mode {
	case "production":
		cfg.Server.Mode = "release"
	case "development":
		cfg.Server.Mode = "debug"
	}

	// El puerto puede venir sin el prefijo ":" (variable PORT)
	if cfg.Server.Port != "" && !strings.HasPrefix(cfg.Server.Port, ":") {
		cfg.Server.Port = ":" + cfg.Server.Port
	}

	// Parámetros del pool de conexiones
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 5
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Database.ConnMaxIdleSeconds <= 0 {
		cfg.Database.ConnMaxIdleSeconds = 10
	}
	cfg.Database.ConnMaxIdleTime = time.Duration(cfg.Database.ConnMaxIdleSeconds) * time.Second

	// Guardar en la variable global
	GlobalConfig = &cfg

	return &cfg, nil
}

// GetConfig devuelve la configuración global
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("configuración no inicializada, llamar primero a LoadConfig")
	}
	return GlobalConfig
}

// SafeErrorMessage en modo release no expone al cliente los detalles
// internos del error, para evitar fugas de información
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig imprime la configuración actual (ocultando datos sensibles)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("configuración actual:")
	log.Printf("  servidor: %s (modo: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  base de datos configurada: %v", GlobalConfig.Database.URL != "")
	log.Printf("  pool: max_open=%d max_idle=%d", GlobalConfig.Database.MaxOpenConns, GlobalConfig.Database.MaxIdleConns)
	log.Printf("  imgbb configurado: %v", GlobalConfig.ImgBB.APIKey != "")
}
