package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
)

// buildValidatedApp monta una ruta que usa parseAndValidate como guard y marca
// en *reached si el cuerpo del handler llegó a ejecutarse.
func buildValidatedApp(reached *bool) *fiber.App {
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		var in dto.LoginRequest
		if !parseAndValidate(c, &in) {
			return nil
		}
		*reached = true
		return c.JSON(fiber.Map{"logged": true, "email": in.Email})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// parseAndValidate: el guard debe cortar el handler, no solo escribir el 400
// ──────────────────────────────────────────────────────────────────────────────

func TestParseAndValidate_CuerpoInvalidoNoAlcanzaElHandler(t *testing.T) {
	var reached bool
	app := buildValidatedApp(&reached)

	resp := postJSON(t, app, `{"email":"no-es-email"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, reached,
		"un cuerpo que no valida jamás debe ejecutar la lógica del handler")

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "email", "el detalle debe señalar el campo inválido")
	assert.Contains(t, out.Fields, "password")
}

func TestParseAndValidate_RespuestaDeErrorNoEsSobrescrita(t *testing.T) {
	var reached bool
	app := buildValidatedApp(&reached)

	resp := postJSON(t, app, `{"email":"no-es-email"}`)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "logged",
		"el cuerpo de la respuesta debe ser el 400, no la salida del handler")
}

func TestParseAndValidate_JSONMalformado(t *testing.T) {
	var reached bool
	app := buildValidatedApp(&reached)

	resp := postJSON(t, app, `{"email":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, reached)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}

func TestParseAndValidate_CuerpoValidoSigueAlHandler(t *testing.T) {
	var reached bool
	app := buildValidatedApp(&reached)

	resp := postJSON(t, app, `{"email":"cliente@cacao.ec","password":"secreta123"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, reached, "un cuerpo válido debe llegar al handler")
}

// ──────────────────────────────────────────────────────────────────────────────
// pageFromQuery: topes de paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestPageFromQuery_Topes(t *testing.T) {
	app := fiber.New()
	app.Get("/page", func(c *fiber.Ctx) error {
		limit, offset := pageFromQuery(c)
		return c.JSON(fiber.Map{"limit": limit, "offset": offset})
	})

	cases := []struct {
		query  string
		limit  int
		offset int
	}{
		{"", 20, 0},
		{"?limit=0&offset=-5", 20, 0},
		{"?limit=500&offset=10", 100, 10},
		{"?limit=7&offset=3", 7, 3},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/page"+tc.query, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		var out struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		resp.Body.Close()
		assert.Equal(t, tc.limit, out.Limit, "query %q", tc.query)
		assert.Equal(t, tc.offset, out.Offset, "query %q", tc.query)
	}
}
