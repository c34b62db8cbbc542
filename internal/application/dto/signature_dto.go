package dto

import "time"

// SignatureResponse salida de una firma registrada sobre un reporte.
type SignatureResponse struct {
	ID                 string    `json:"id"`
	FumigationReportID string    `json:"fumigation_report_id,omitempty"`
	CleanupReportID    string    `json:"cleanup_report_id,omitempty"`
	SignerRole         string    `json:"signer_role"`
	ImageHash          string    `json:"image_hash"`
	CreatedAt          time.Time `json:"created_at"`
}
