// Package fumigation contiene la lógica pura del ciclo de vida de una
// fumigación: transiciones de estado, el guard del motivo de rechazo y la
// compuerta de reportes técnicos. No toca persistencia ni transporte; los
// casos de uso cargan la entidad, invocan estas funciones y persisten el
// resultado dentro de su propia transacción.
package fumigation

import (
	"strings"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
)

// validStatuses dominio cerrado del enum de estado.
var validStatuses = map[string]struct{}{
	entity.StatusPending:   {},
	entity.StatusApproved:  {},
	entity.StatusRejected:  {},
	entity.StatusFumigated: {},
	entity.StatusFailed:    {},
	entity.StatusFinished:  {},
}

// ParseStatus valida que s pertenezca al enum de estados.
// Devuelve domain.ErrInvalidInput si no es un estado conocido.
func ParseStatus(s string) (string, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := validStatuses[up]; !ok {
		return "", domain.ErrInvalidInput
	}
	return up, nil
}

// ChangeStatus aplica una transición de estado sobre la fumigación.
//
// Reglas:
//   - REJECTED exige un motivo no vacío; si falta, devuelve
//     domain.ErrRejectionMsgRequired y no muta nada.
//   - El motivo se guarda solo en REJECTED y se limpia en cualquier otra
//     transición (invariante: Message != "" ⟺ Status == REJECTED).
//   - No se valida un grafo de transiciones: cualquier estado puede pasar a
//     cualquier otro. Ese es el comportamiento acordado con operaciones;
//     endurecerlo requiere decisión de negocio, no de código.
//
// La fumigación se muta in place; el caller persiste.
func ChangeStatus(f *entity.Fumigation, newStatus, message string) error {
	status, err := ParseStatus(newStatus)
	if err != nil {
		return err
	}
	if status == entity.StatusRejected {
		if strings.TrimSpace(message) == "" {
			return domain.ErrRejectionMsgRequired
		}
		f.Message = strings.TrimSpace(message)
	} else {
		f.Message = ""
	}
	f.Status = status
	return nil
}

// NotifiesAdmins indica si el nuevo estado dispara, además de la notificación
// al cliente (que ocurre en todo cambio), una notificación a los administradores.
func NotifiesAdmins(status string) bool {
	switch status {
	case entity.StatusPending, entity.StatusRejected, entity.StatusFinished, entity.StatusFailed:
		return true
	}
	return false
}
