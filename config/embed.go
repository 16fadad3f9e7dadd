package config

import _ "embed"

// DefaultConfigYAML configuración por defecto embebida
//
//go:embed default.yaml
var DefaultConfigYAML []byte
