package main

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIDescription(t *testing.T) {
	api, err := LoadAPIDescription(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"DELETE /scenarios/{id}",
		"DELETE /vehicles/{id}",
		"GET /scenarios",
		"GET /scenarios/{scenarioId}/vehicles",
		"POST /scenarios",
		"POST /vehicles",
		"PUT /scenarios/{id}",
		"PUT /vehicles/{id}",
	}, api.Endpoints())
}

func TestEveryRouteIsDocumented(t *testing.T) {
	api, err := LoadAPIDescription(context.Background())
	require.NoError(t, err)

	h := NewHandler(nil, NewLogger(nil))
	for _, r := range h.routes() {
		op := api.Operation(r.method, r.path)
		if assert.NotNil(t, op, "%s %s", r.method, r.path) {
			assert.NotEmpty(t, op.OperationID)
		}
	}
	assert.Nil(t, api.Operation(fiber.MethodPatch, "/scenarios/:id"))
	assert.Nil(t, api.Operation(fiber.MethodGet, "/unknown"))
}

func TestOpenAPIPath(t *testing.T) {
	assert.Equal(t, "/scenarios", openAPIPath("/scenarios"))
	assert.Equal(t, "/scenarios/{id}", openAPIPath("/scenarios/:id"))
	assert.Equal(t, "/scenarios/{scenarioId}/vehicles", openAPIPath("/scenarios/:scenarioId/vehicles"))
	assert.Equal(t, "/vehicles/{id}", openAPIPath("/vehicles/:id?"))
}

func TestOpenAPIDocumentIsServed(t *testing.T) {
	env := newTestEnv(t, "")

	code, body := env.do(t, http.MethodGet, "/openapi.json", "")
	require.Equal(t, http.StatusOK, code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.Contains(t, doc["paths"], "/scenarios/{scenarioId}/vehicles")
}
