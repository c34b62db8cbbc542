package dto

import "time"

// CreateCompanyRequest entrada para registrar una empresa. El representante
// legal es el usuario autenticado que hace la petición; no viaja en el body.
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	RUC          string `json:"ruc" validate:"required,numeric,len=13"`
	BusinessLine string `json:"business_line" validate:"omitempty,max=200"`
	Address      string `json:"address" validate:"omitempty,max=300"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
}

// UpdateCompanyRequest entrada para editar una empresa. El RUC puede venir,
// pero su unicidad se verifica contra las demás empresas (no contra sí misma).
type UpdateCompanyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	RUC          string `json:"ruc" validate:"required,numeric,len=13"`
	BusinessLine string `json:"business_line" validate:"omitempty,max=200"`
	Address      string `json:"address" validate:"omitempty,max=300"`
	Phone        string `json:"phone" validate:"omitempty,max=20"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RUC          string    `json:"ruc"`
	BusinessLine string    `json:"business_line,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	LegalRepID   string    `json:"legal_rep_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
