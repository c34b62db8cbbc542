package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Technician integrante de la cuadrilla que ejecutó el trabajo de campo.
type Technician struct {
	Name   string
	Cedula string
	Role   string // líder, auxiliar, etc.
}

// Supply insumo aplicado durante la fumigación (ej. fosfina).
type Supply struct {
	Name     string
	Quantity decimal.Decimal
	Dosage   string // dosis aplicada por unidad
	Kind     string // pastilla, cinta, etc.
}

// Dimensions dimensiones del lote fumigado.
type Dimensions struct {
	Height decimal.Decimal // metros
	Width  decimal.Decimal
	Length decimal.Decimal
}

// EnvironmentalConditions condiciones ambientales al momento del trabajo.
type EnvironmentalConditions struct {
	Temperature  decimal.Decimal // °C
	Humidity     decimal.Decimal // % HR
	PhosphinePPM decimal.Decimal // concentración medida de fosfina
}

// SafetyConditions banderas de peligro de seguridad industrial observadas en campo.
// Cualquier bandera en true fuerza la fumigación a estado FAILED.
type SafetyConditions struct {
	ElectricDanger bool
	FallingDanger  bool
	HitDanger      bool
	OtherDanger    string // descripción libre de otros riesgos; informativa
}

// AnyDanger indica si alguna bandera booleana de peligro está activa.
// OtherDanger es solo descriptivo y no dispara el fallo.
func (s SafetyConditions) AnyDanger() bool {
	return s.ElectricDanger || s.FallingDanger || s.HitDanger
}

// FumigationReport reporte técnico de la fumigación, uno por fumigación.
// Inmutable después de creado.
type FumigationReport struct {
	ID            string
	FumigationID  string
	Technicians   []Technician
	Supplies      []Supply
	Dimensions    Dimensions
	Environmental EnvironmentalConditions
	Safety        SafetyConditions
	Observations  string
	StartedAt     time.Time
	FinishedAt    time.Time
	CreatedAt     time.Time
}

// CleanupReport reporte de limpieza/descontaminación posterior, uno por fumigación.
// A diferencia del reporte técnico, su registro no depende del estado de la fumigación.
type CleanupReport struct {
	ID             string
	FumigationID   string
	Technicians    []Technician
	StripsState    string // estado de las cintas al retirarlas
	LotCondition   string
	Safety         SafetyConditions
	Observations   string
	StartedAt      time.Time
	FinishedAt     time.Time
	CreatedAt      time.Time
}
