package api

import (
	"finanzas/config"
)

// SafeErrorMessage en producción no expone al cliente los detalles internos del error
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
