package entity

import "time"

// FumigationApplication agrupa las fumigaciones solicitadas por una empresa
// en un mismo envío. El conjunto de fumigaciones se crea completo al momento
// de la solicitud y es inmutable después (solo cambian las fumigaciones ya
// existentes, nunca se agregan ni quitan).
type FumigationApplication struct {
	ID        string
	CompanyID string
	CreatedAt time.Time
}
