package main

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the scenario and vehicle routes from an injected Store.
type Handler struct {
	store  *Store
	logger *Logger
}

// NewHandler binds the HTTP handlers to store.
func NewHandler(store *Store, logger *Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) listScenarios(c *fiber.Ctx) error {
	scenarios := h.store.Scenarios()
	h.logger.Success(ComponentRouter, fmt.Sprintf("Found %d scenarios. Responding with collection", len(scenarios)))
	return c.JSON(scenarios)
}

func (h *Handler) createScenario(c *fiber.Ctx) error {
	rec, err := decodeRecord(c.Body())
	if err != nil {
		return err
	}
	created, err := h.store.CreateScenario(c.UserContext(), rec)
	if err != nil {
		return err
	}
	return c.JSON(created)
}

func (h *Handler) updateScenario(c *fiber.Ctx) error {
	rec, err := decodeRecord(c.Body())
	if err != nil {
		return err
	}
	updated, err := h.store.UpdateScenario(c.UserContext(), c.Params("id"), rec)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteScenario(c *fiber.Ctx) error {
	removed, err := h.store.DeleteScenario(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if removed == 0 {
		h.logger.Info(ComponentRouter, fmt.Sprintf("No scenario matched id %q", c.Params("id")))
	}
	return c.JSON(fiber.Map{"message": "Scenario deleted successfully"})
}

func (h *Handler) createVehicle(c *fiber.Ctx) error {
	rec, err := decodeRecord(c.Body())
	if err != nil {
		return err
	}
	created, err := h.store.CreateVehicle(c.UserContext(), rec)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(created)
}

func (h *Handler) listVehicles(c *fiber.Ctx) error {
	vehicles, err := h.store.Vehicles(c.Params("scenarioId"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(vehicles)
}

func (h *Handler) updateVehicle(c *fiber.Ctx) error {
	rec, err := decodeRecord(c.Body())
	if err != nil {
		return err
	}
	updated, err := h.store.UpdateVehicle(c.UserContext(), c.Params("id"), rec)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteVehicle(c *fiber.Ctx) error {
	if err := h.store.DeleteVehicle(c.UserContext(), c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}

// respondError answers not-found errors with a 404 message body and passes
// everything else on to the app's ErrorHandler.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var message string
	switch {
	case errors.Is(err, ErrScenarioNotFound):
		message = "Scenario not found"
	case errors.Is(err, ErrSelectedScenarioNotFound):
		message = "Selected scenario not found"
	case errors.Is(err, ErrVehicleNotFound):
		message = "Vehicle not found"
	default:
		return err
	}
	h.logger.Warning(ComponentRouter, message)
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": message})
}

// errorHandler answers unrecognized failures with a bare status line.
func errorHandler(logger *Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusOf(c, err)
		logger.Error(ComponentHTTPServer, err.Error())
		return c.SendStatus(code)
	}
}

// statusOf is the status a request ends with once err has been handled.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
