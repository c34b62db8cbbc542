// Package authz contiene la decisión pura de autorización por propiedad:
// un recurso puede ser operado por el representante legal de la empresa
// dueña o por cualquier administrador. La identidad del actor llega siempre
// como parámetro explícito; nunca hay estado global de "usuario actual".
package authz

import "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"

// Decision resultado de la evaluación de acceso. Cuando es denegada, conserva
// el tipo y el ID del recurso y el actor para el log de auditoría.
type Decision struct {
	Allowed      bool
	ResourceType string
	ResourceID   string
	ActorID      string
}

// Decide evalúa el acceso: permitido si el actor es el dueño del recurso
// (representante legal resuelto por el caller) o si tiene el rol admin.
// Función pura sobre datos ya cargados; no consulta nada.
func Decide(resourceType, resourceID, ownerUserID, actorID string, actorRoles []string) Decision {
	d := Decision{
		ResourceType: resourceType,
		ResourceID:   resourceID,
		ActorID:      actorID,
	}
	if actorID != "" && actorID == ownerUserID {
		d.Allowed = true
		return d
	}
	for _, r := range actorRoles {
		if r == entity.RoleAdmin {
			d.Allowed = true
			return d
		}
	}
	return d
}
