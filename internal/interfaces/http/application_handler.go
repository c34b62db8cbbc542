package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
)

// ApplicationHandler maneja las solicitudes de fumigación.
type ApplicationHandler struct {
	uc *usecase.ApplicationUseCase
}

// NewApplicationHandler construye el handler inyectando el caso de uso.
func NewApplicationHandler(uc *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Submit godoc
// @Summary      Presentar solicitud de fumigación (empresa + lotes, todo en PENDING)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateApplicationRequest  true  "empresa y lotes"
// @Success      201   {object}  dto.ApplicationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var in dto.CreateApplicationRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Submit(c.Context(), GetUserID(c), GetRoles(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener solicitud con sus fumigaciones (dueño o admin)
// @Tags         applications
// @Produce      json
// @Param        id   path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.ApplicationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetUserID(c), GetRoles(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByCompany godoc
// @Summary      Listar solicitudes de una empresa (dueño o admin)
// @Tags         applications
// @Produce      json
// @Param        company_id  query  string  true   "ID de la empresa"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ApplicationListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/applications [get]
func (h *ApplicationHandler) ListByCompany(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COMPANY", Message: "company_id es requerido"})
	}
	limit, offset := pageFromQuery(c)
	out, err := h.uc.ListByCompany(GetUserID(c), GetRoles(c), companyID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todas las solicitudes (solo admin)
// @Tags         applications
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ApplicationListResponse
// @Router       /api/admin/applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageFromQuery(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
