package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type route struct {
	method  string
	path    string
	handler fiber.Handler
}

func (h *Handler) routes() []route {
	return []route{
		{fiber.MethodGet, "/scenarios", h.listScenarios},
		{fiber.MethodPost, "/scenarios", h.createScenario},
		{fiber.MethodPut, "/scenarios/:id", h.updateScenario},
		{fiber.MethodDelete, "/scenarios/:id", h.deleteScenario},
		{fiber.MethodPost, "/vehicles", h.createVehicle},
		{fiber.MethodGet, "/scenarios/:scenarioId/vehicles", h.listVehicles},
		{fiber.MethodPut, "/vehicles/:id", h.updateVehicle},
		{fiber.MethodDelete, "/vehicles/:id", h.deleteVehicle},
	}
}

// RegisterRoutes mounts the resource routes on app. Every route must be
// described in api.
func RegisterRoutes(app *fiber.App, h *Handler, api *APIDescription) error {
	for _, r := range h.routes() {
		op := api.Operation(r.method, r.path)
		if op == nil {
			return fmt.Errorf("route %s %s has no documented operation", r.method, r.path)
		}
		app.Add(r.method, r.path, traced(h.logger, op.OperationID, r.handler))
	}
	return nil
}

// LogEndpoints prints the documented endpoints.
func LogEndpoints(logger *Logger, api *APIDescription) {
	endpoints := api.Endpoints()
	if len(endpoints) == 0 {
		return
	}
	logger.Info(ComponentRouter, "Available endpoints:")
	for _, e := range endpoints {
		logger.Info(ComponentRouter, "  "+e)
	}
}

func traced(logger *Logger, operationID string, next fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logger.Info(ComponentRouter, "Matched operation "+operationID)
		return next(c)
	}
}

// requestLogger opens and closes the log block of every request.
func requestLogger(logger *Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logger.RequestReceived(c.Method(), c.Path())
		err := c.Next()
		logger.Responded(statusOf(c, err))
		return err
	}
}
