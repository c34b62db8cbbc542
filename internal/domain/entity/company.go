package entity

import "time"

// Company representa una empresa exportadora de cacao.
// LegalRepID referencia al User que actúa como representante legal; la propiedad
// de solicitudes y fumigaciones se resuelve siempre a través de este vínculo.
type Company struct {
	ID           string
	Name         string
	RUC          string // RUC ecuatoriano, único entre empresas
	BusinessLine string // actividad comercial (ej. exportación de cacao en grano)
	Address      string
	Phone        string
	LegalRepID   string // User.ID del representante legal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
