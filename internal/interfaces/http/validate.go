package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
)

// validate instancia compartida; los tags viven en los structs del paquete dto.
var validate = validator.New()

// parseAndValidate parsea el body JSON y corre las reglas de validación del DTO.
// Cuando algo falla escribe la respuesta 400 y devuelve false; el handler debe
// cortar ahí y no tocar el caso de uso.
func parseAndValidate(c *fiber.Ctx, out any) (ok bool) {
	if err := c.BodyParser(out); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		fields := map[string]string{}
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = fe.Tag()
			}
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "la petición no cumple las reglas de validación",
			Fields:  fields,
		})
		return false
	}
	return true
}

// pageFromQuery lee limit/offset del query string con topes razonables.
func pageFromQuery(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
