package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
)

// CertificateHandler sirve el certificado de fumigación (PDF y rendición XML).
type CertificateHandler struct {
	uc *usecase.CertificateUseCase
}

// NewCertificateHandler construye el handler inyectando el caso de uso.
func NewCertificateHandler(uc *usecase.CertificateUseCase) *CertificateHandler {
	return &CertificateHandler{uc: uc}
}

// PDF godoc
// @Summary      Certificado de fumigación en PDF (solo FINISHED)
// @Tags         certificates
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la fumigación"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id}/certificate [get]
func (h *CertificateHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GeneratePDF(c.Context(), GetUserID(c), GetRoles(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="certificado-`+id+`.pdf"`)
	return c.Send(out)
}

// XML godoc
// @Summary      Rendición XML del certificado para la agencia (solo FINISHED)
// @Tags         certificates
// @Produce      application/xml
// @Param        id   path  string  true  "ID de la fumigación"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id}/certificate.xml [get]
func (h *CertificateHandler) XML(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GenerateXML(GetUserID(c), GetRoles(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	return c.Send(out)
}
