package dto

import "time"

// CreateApplicationRequest entrada para presentar una solicitud de fumigación.
// Todas las fumigaciones se crean juntas, en PENDING, dentro de una transacción;
// el conjunto no admite altas ni bajas después.
type CreateApplicationRequest struct {
	CompanyID   string              `json:"company_id" validate:"required,uuid"`
	Fumigations []FumigationRequest `json:"fumigations" validate:"required,min=1,dive"`
}

// ApplicationResponse salida de una solicitud con sus fumigaciones.
type ApplicationResponse struct {
	ID          string               `json:"id"`
	CompanyID   string               `json:"company_id"`
	Fumigations []FumigationResponse `json:"fumigations"`
	CreatedAt   time.Time            `json:"created_at"`
}

// ApplicationListResponse listado paginado de solicitudes.
type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
