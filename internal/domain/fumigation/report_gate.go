package fumigation

import (
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
)

// ReportCreatedMessage confirmación que recibe el caller cuando el reporte
// técnico se registra sin banderas de peligro.
const ReportCreatedMessage = "Fumigation report created successfully"

// CanReceiveReport indica si la fumigación admite un reporte técnico en su
// estado actual. Solo APPROVED y FAILED lo permiten: APPROVED es el flujo
// normal y FAILED permite reintentar el trabajo de campo tras subsanar el
// riesgo. Devuelve domain.ErrInvalidStatus en cualquier otro estado.
func CanReceiveReport(status string) error {
	if status == entity.StatusApproved || status == entity.StatusFailed {
		return nil
	}
	return domain.ErrInvalidStatus
}

// ReportOutcome resultado de aplicar un reporte técnico sobre la fumigación.
// SafetyViolation true significa que alguna bandera de peligro forzó FAILED;
// en ese caso Message queda vacío (no hay confirmación de éxito que dar).
type ReportOutcome struct {
	Status          string
	Message         string
	SafetyViolation bool
}

// EvaluateReport decide el estado resultante de la fumigación a partir del
// contenido del reporte: cualquier bandera de peligro de seguridad industrial
// fuerza FAILED; sin peligros, la fumigación queda (o vuelve a quedar) APPROVED.
func EvaluateReport(safety entity.SafetyConditions) ReportOutcome {
	if safety.AnyDanger() {
		return ReportOutcome{Status: entity.StatusFailed, SafetyViolation: true}
	}
	return ReportOutcome{Status: entity.StatusApproved, Message: ReportCreatedMessage}
}
