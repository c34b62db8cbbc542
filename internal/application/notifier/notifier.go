// Package notifier define el puerto de notificaciones del dominio. El core
// emite eventos estructurados (tipo + destinatarios + datos); el formato del
// correo (asunto, plantilla, colores) es asunto exclusivo del adaptador de
// infraestructura.
package notifier

import "context"

// Tipos de evento emitidos por los casos de uso.
const (
	EventApplicationSubmitted = "application_submitted"
	EventStatusChanged        = "status_changed"
	EventReportCreated        = "report_created"
)

// Event evento de dominio a notificar. Data lleva contexto plano para la
// plantilla (ids, lote, estado nuevo, nombre de la empresa...).
type Event struct {
	Kind       string            `json:"kind"`
	Recipients []string          `json:"recipients"` // direcciones de correo
	Data       map[string]string `json:"data"`
}

// Notifier contrato fire-and-forget: la implementación encola y retorna; los
// fallos de entrega se registran en el log y jamás llegan al caller. El fallo
// de un destinatario no bloquea a los demás.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// Noop implementación nula para tests y arranques sin cola configurada.
type Noop struct{}

// Notify no hace nada.
func (Noop) Notify(context.Context, Event) {}
