package entity

import "time"

// Roles de firmante admitidos en los reportes.
const (
	SignerTecnico = "tecnico"
	SignerCliente = "cliente"
)

// Signature firma manuscrita capturada sobre un reporte. Pertenece a exactamente
// uno de {FumigationReport, CleanupReport}: uno de los dos IDs es no-nil, nunca ambos.
// Los bytes de la imagen viven en disco; la fila guarda la referencia y su hash.
type Signature struct {
	ID                 string
	FumigationReportID *string
	CleanupReportID    *string
	SignerRole         string // ver constantes Signer*
	ImagePath          string // ruta relativa dentro del directorio de firmas
	ImageHash          string // sha256 hex del contenido
	CreatedAt          time.Time
}

// Valid verifica la relación exclusiva con el reporte padre.
func (s *Signature) Valid() bool {
	return (s.FumigationReportID != nil) != (s.CleanupReportID != nil)
}
