package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de una fumigación.
// PENDING es el estado inicial; FINISHED, REJECTED y FAILED son terminales
// a efectos de negocio, pero las filas nunca se borran (auditoría).
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusFumigated = "FUMIGATED"
	StatusFailed    = "FAILED"
	StatusFinished  = "FINISHED"
)

// Fumigation es la orden de trabajo de control de plagas sobre un lote de cacao.
// Invariante: Message no vacío si y solo si Status == REJECTED; en cualquier
// otra transición el motivo se limpia.
type Fumigation struct {
	ID            string
	ApplicationID string
	LotNumber     string
	Tonnage       decimal.Decimal // toneladas del lote
	SackCount     int
	QualityGrade  string // ej. ASE, ASS, ASSS
	PortDestiny   string
	DateTime      time.Time // fecha/hora programada
	Status        string    // ver constantes Status*
	Message       string    // motivo de rechazo; vacío salvo en REJECTED
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
