package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TechnicianDTO integrante de la cuadrilla en un reporte.
type TechnicianDTO struct {
	Name   string `json:"name" validate:"required,max=200"`
	Cedula string `json:"cedula" validate:"required,numeric,len=10"`
	Role   string `json:"role" validate:"omitempty,max=50"`
}

// SupplyDTO insumo aplicado.
type SupplyDTO struct {
	Name     string          `json:"name" validate:"required,max=200"`
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	Dosage   string          `json:"dosage" validate:"omitempty,max=100"`
	Kind     string          `json:"kind" validate:"omitempty,max=50"`
}

// SafetyConditionsDTO banderas de peligro de seguridad industrial.
type SafetyConditionsDTO struct {
	ElectricDanger bool   `json:"electric_danger"`
	FallingDanger  bool   `json:"falling_danger"`
	HitDanger      bool   `json:"hit_danger"`
	OtherDanger    string `json:"other_danger" validate:"omitempty,max=300"`
}

// CreateFumigationReportRequest entrada del reporte técnico de fumigación.
type CreateFumigationReportRequest struct {
	Technicians  []TechnicianDTO     `json:"technicians" validate:"required,min=1,dive"`
	Supplies     []SupplyDTO         `json:"supplies" validate:"required,min=1,dive"`
	Height       decimal.Decimal     `json:"height"`
	Width        decimal.Decimal     `json:"width"`
	Length       decimal.Decimal     `json:"length"`
	Temperature  decimal.Decimal     `json:"temperature"`
	Humidity     decimal.Decimal     `json:"humidity"`
	PhosphinePPM decimal.Decimal     `json:"phosphine_ppm"`
	Safety       SafetyConditionsDTO `json:"safety"`
	Observations string              `json:"observations" validate:"omitempty,max=1000"`
	StartedAt    time.Time           `json:"started_at" validate:"required"`
	FinishedAt   time.Time           `json:"finished_at" validate:"required"`
}

// CreateCleanupReportRequest entrada del reporte de limpieza posterior.
type CreateCleanupReportRequest struct {
	Technicians  []TechnicianDTO     `json:"technicians" validate:"required,min=1,dive"`
	StripsState  string              `json:"strips_state" validate:"omitempty,max=200"`
	LotCondition string              `json:"lot_condition" validate:"omitempty,max=200"`
	Safety       SafetyConditionsDTO `json:"safety"`
	Observations string              `json:"observations" validate:"omitempty,max=1000"`
	StartedAt    time.Time           `json:"started_at" validate:"required"`
	FinishedAt   time.Time           `json:"finished_at" validate:"required"`
}

// FumigationReportResult resultado de registrar el reporte técnico.
// SafetyViolation true indica que una bandera de peligro forzó la fumigación
// a FAILED; en ese camino Message viene vacío. Es la señal explícita que
// reemplaza al "retornar null" del comportamiento heredado.
type FumigationReportResult struct {
	ReportID        string `json:"report_id"`
	FinalStatus     string `json:"final_status"`
	SafetyViolation bool   `json:"safety_violation"`
	Message         string `json:"message,omitempty"`
}

// FumigationReportResponse salida de lectura del reporte técnico.
type FumigationReportResponse struct {
	ID           string              `json:"id"`
	FumigationID string              `json:"fumigation_id"`
	Technicians  []TechnicianDTO     `json:"technicians"`
	Supplies     []SupplyDTO         `json:"supplies"`
	Height       decimal.Decimal     `json:"height"`
	Width        decimal.Decimal     `json:"width"`
	Length       decimal.Decimal     `json:"length"`
	Temperature  decimal.Decimal     `json:"temperature"`
	Humidity     decimal.Decimal     `json:"humidity"`
	PhosphinePPM decimal.Decimal     `json:"phosphine_ppm"`
	Safety       SafetyConditionsDTO `json:"safety"`
	Observations string              `json:"observations,omitempty"`
	StartedAt    time.Time           `json:"started_at"`
	FinishedAt   time.Time           `json:"finished_at"`
	CreatedAt    time.Time           `json:"created_at"`
}

// CleanupReportResponse salida de lectura del reporte de limpieza.
type CleanupReportResponse struct {
	ID           string              `json:"id"`
	FumigationID string              `json:"fumigation_id"`
	Technicians  []TechnicianDTO     `json:"technicians"`
	StripsState  string              `json:"strips_state,omitempty"`
	LotCondition string              `json:"lot_condition,omitempty"`
	Safety       SafetyConditionsDTO `json:"safety"`
	Observations string              `json:"observations,omitempty"`
	StartedAt    time.Time           `json:"started_at"`
	FinishedAt   time.Time           `json:"finished_at"`
	CreatedAt    time.Time           `json:"created_at"`
}
