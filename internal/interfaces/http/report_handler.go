package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
)

// ReportHandler maneja los reportes de campo (técnico y de limpieza).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler inyectando el caso de uso.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CreateFumigationReport godoc
// @Summary      Registrar reporte técnico de fumigación
// @Description  Solo se acepta con la fumigación en APPROVED o FAILED. Cualquier
// @Description  bandera de peligro de seguridad fuerza el estado a FAILED y la
// @Description  respuesta llega sin mensaje de confirmación.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path  string                             true  "ID de la fumigación"
// @Param        body  body  dto.CreateFumigationReportRequest  true  "contenido del reporte"
// @Success      201   {object}  dto.FumigationReportResult
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id}/report [post]
func (h *ReportHandler) CreateFumigationReport(c *fiber.Ctx) error {
	fumigationID := c.Params("id")
	if fumigationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateFumigationReportRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.CreateFumigationReport(c.Context(), GetUserID(c), GetRoles(c), fumigationID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetFumigationReport godoc
// @Summary      Leer reporte técnico de una fumigación (dueño o admin)
// @Tags         reports
// @Produce      json
// @Param        id   path  string  true  "ID de la fumigación"
// @Success      200  {object}  dto.FumigationReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id}/report [get]
func (h *ReportHandler) GetFumigationReport(c *fiber.Ctx) error {
	fumigationID := c.Params("id")
	if fumigationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetFumigationReport(GetUserID(c), GetRoles(c), fumigationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateCleanupReport godoc
// @Summary      Registrar reporte de limpieza posterior
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID de la fumigación"
// @Param        body  body  dto.CreateCleanupReportRequest  true  "contenido del reporte"
// @Success      201   {object}  dto.CleanupReportResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id}/cleanup [post]
func (h *ReportHandler) CreateCleanupReport(c *fiber.Ctx) error {
	fumigationID := c.Params("id")
	if fumigationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.CreateCleanupReportRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.CreateCleanupReport(c.Context(), GetUserID(c), GetRoles(c), fumigationID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCleanupReport godoc
// @Summary      Leer reporte de limpieza de una fumigación (dueño o admin)
// @Tags         reports
// @Produce      json
// @Param        id   path  string  true  "ID de la fumigación"
// @Success      200  {object}  dto.CleanupReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id}/cleanup [get]
func (h *ReportHandler) GetCleanupReport(c *fiber.Ctx) error {
	fumigationID := c.Params("id")
	if fumigationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetCleanupReport(GetUserID(c), GetRoles(c), fumigationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
