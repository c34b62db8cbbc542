package http

import (
	"io"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
)

// maxSignatureSize tope del archivo de firma (2 MiB).
const maxSignatureSize = 2 << 20

// SignatureHandler maneja las firmas manuscritas sobre reportes. La imagen
// llega como multipart/form-data: campo "image" (archivo) y "signer_role".
type SignatureHandler struct {
	uc *usecase.SignatureUseCase
}

// NewSignatureHandler construye el handler inyectando el caso de uso.
func NewSignatureHandler(uc *usecase.SignatureUseCase) *SignatureHandler {
	return &SignatureHandler{uc: uc}
}

// SignFumigationReport godoc
// @Summary      Firmar el reporte técnico
// @Tags         signatures
// @Accept       mpfd
// @Produce      json
// @Param        id           path      string  true  "ID del reporte técnico"
// @Param        signer_role  formData  string  true  "tecnico o cliente"
// @Param        image        formData  file    true  "imagen de la firma"
// @Success      201  {object}  dto.SignatureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/fumigation/{id}/signatures [post]
func (h *SignatureHandler) SignFumigationReport(c *fiber.Ctx) error {
	reportID := c.Params("id")
	signerRole, image, ext, ok := h.readForm(c)
	if !ok {
		return nil
	}
	out, err := h.uc.SignFumigationReport(GetUserID(c), GetRoles(c), reportID, signerRole, image, ext)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SignCleanupReport godoc
// @Summary      Firmar el reporte de limpieza
// @Tags         signatures
// @Accept       mpfd
// @Produce      json
// @Param        id           path      string  true  "ID del reporte de limpieza"
// @Param        signer_role  formData  string  true  "tecnico o cliente"
// @Param        image        formData  file    true  "imagen de la firma"
// @Success      201  {object}  dto.SignatureResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/cleanup/{id}/signatures [post]
func (h *SignatureHandler) SignCleanupReport(c *fiber.Ctx) error {
	reportID := c.Params("id")
	signerRole, image, ext, ok := h.readForm(c)
	if !ok {
		return nil
	}
	out, err := h.uc.SignCleanupReport(GetUserID(c), GetRoles(c), reportID, signerRole, image, ext)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetImage godoc
// @Summary      Descargar la imagen de una firma (dueño o admin)
// @Tags         signatures
// @Produce      png
// @Param        id   path  string  true  "ID de la firma"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/signatures/{id}/image [get]
func (h *SignatureHandler) GetImage(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	image, err := h.uc.GetImage(GetUserID(c), GetRoles(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	return c.Send(image)
}

// readForm extrae signer_role y los bytes de la imagen del multipart. Cuando el
// form viene incompleto escribe la respuesta 400 y devuelve ok=false; el handler
// debe cortar ahí.
func (h *SignatureHandler) readForm(c *fiber.Ctx) (signerRole string, image []byte, ext string, ok bool) {
	badRequest := func(msg string) (string, []byte, string, bool) {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
		return "", nil, "", false
	}
	signerRole = c.FormValue("signer_role")
	if signerRole == "" {
		return badRequest("signer_role es requerido")
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return badRequest("archivo image es requerido")
	}
	if fileHeader.Size > maxSignatureSize {
		return badRequest("la imagen supera el tamaño máximo permitido")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return badRequest("no se pudo leer la imagen")
	}
	defer file.Close()
	image, err = io.ReadAll(file)
	if err != nil {
		return badRequest("no se pudo leer la imagen")
	}
	return signerRole, image, filepath.Ext(fileHeader.Filename), true
}
