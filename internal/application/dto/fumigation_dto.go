package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FumigationRequest datos de un lote dentro de una solicitud de fumigación.
type FumigationRequest struct {
	LotNumber    string          `json:"lot_number" validate:"required,max=50"`
	Tonnage      decimal.Decimal `json:"tonnage" validate:"required"`
	SackCount    int             `json:"sack_count" validate:"required,min=1"`
	QualityGrade string          `json:"quality_grade" validate:"required,max=20"`
	PortDestiny  string          `json:"port_destiny" validate:"required,max=100"`
	DateTime     time.Time       `json:"date_time" validate:"required"`
}

// FumigationResponse salida de una fumigación.
type FumigationResponse struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	LotNumber     string          `json:"lot_number"`
	Tonnage       decimal.Decimal `json:"tonnage"`
	SackCount     int             `json:"sack_count"`
	QualityGrade  string          `json:"quality_grade"`
	PortDestiny   string          `json:"port_destiny"`
	DateTime      time.Time       `json:"date_time"`
	Status        string          `json:"status"`
	Message       string          `json:"message,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// UpdateStatusRequest entrada para cambiar el estado de una fumigación.
// Message es obligatorio solo cuando status es REJECTED.
type UpdateStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Message string `json:"message" validate:"omitempty,max=500"`
}
