package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
)

// FumigationHandler consulta fumigaciones y aplica cambios de estado.
type FumigationHandler struct {
	uc *usecase.FumigationUseCase
}

// NewFumigationHandler construye el handler inyectando el caso de uso.
func NewFumigationHandler(uc *usecase.FumigationUseCase) *FumigationHandler {
	return &FumigationHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener fumigación por ID (dueño o admin)
// @Tags         fumigations
// @Produce      json
// @Param        id   path  string  true  "ID de la fumigación"
// @Success      200  {object}  dto.FumigationResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id} [get]
func (h *FumigationHandler) GetByID(c *fiber.Ctx) error {
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

// UpdateStatus godoc
// @Summary      Cambiar estado de una fumigación
// @Description  REJECTED exige un motivo no vacío en message; cualquier otro estado lo descarta.
// @Tags         fumigations
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la fumigación"
// @Param        body  body  dto.UpdateStatusRequest  true  "status y motivo opcional"
// @Success      200   {object}  dto.FumigationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fumigations/{id}/status [put]
func (h *FumigationHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateStatusRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetUserID(c), GetRoles(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
