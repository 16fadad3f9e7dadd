package main

import (
	"flag"
	"log"
	"strings"

	"finanzas/config"
	"finanzas/database"
	"finanzas/router"
)

// @title API Finanzas Espacio Nova
// @version 1.0
// @description API REST para la gestión de gastos, recibos y usuarios de Espacio Nova
// @host localhost:3000
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "ruta a un archivo de configuración externo (opcional)")
	flag.StringVar(&configFile, "c", "", "ruta a un archivo de configuración externo (forma corta)")
	flag.StringVar(&port, "port", "", "puerto de escucha, ej: 3000 o :3000")
	flag.StringVar(&port, "p", "", "puerto de escucha (forma corta)")
	flag.BoolVar(&showVersion, "version", false, "mostrar la versión")
	flag.BoolVar(&showVersion, "v", false, "mostrar la versión (forma corta)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("API Finanzas Espacio Nova v1.0.0")
		return
	}

	// Cargar configuración (embebida + archivo externo + entorno)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("error cargando la configuración: %v", err)
	}

	// El puerto por línea de comandos tiene prioridad
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("puerto indicado por línea de comandos: %s", port)
	}

	config.PrintConfig()

	// Inicializar la base de datos
	db, err := database.Init(cfg)
	if err != nil {
		log.Fatalf("error inicializando la base de datos: %v", err)
	}

	// Configurar rutas
	r := router.SetupRouter(cfg, db)

	log.Printf("==========================================")
	log.Printf("  API Finanzas Espacio Nova iniciada")
	log.Printf("  API:     http://localhost%s/api/", cfg.Server.Port)
	log.Printf("  Swagger: http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("error arrancando el servidor: %v", err)
	}
}
