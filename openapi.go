package main

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

//go:embed openapi.yaml
var openapiDocument []byte

// APIDescription is the OpenAPI document of the HTTP surface.
type APIDescription struct {
	doc *openapi3.T
}

// LoadAPIDescription parses and validates the embedded document.
func LoadAPIDescription(ctx context.Context) (*APIDescription, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(openapiDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi schema: %w", err)
	}
	return &APIDescription{doc: doc}, nil
}

// Operation returns the documented operation for a Fiber route, or nil.
func (a *APIDescription) Operation(method, route string) *openapi3.Operation {
	if a == nil || a.doc == nil {
		return nil
	}
	item := a.doc.Paths.Find(openAPIPath(route))
	if item == nil {
		return nil
	}
	return item.GetOperation(strings.ToUpper(method))
}

// Endpoints lists "METHOD /path" for every documented operation, sorted.
func (a *APIDescription) Endpoints() []string {
	var endpoints []string
	for path, item := range a.doc.Paths {
		for method := range item.Operations() {
			endpoints = append(endpoints, strings.ToUpper(method)+" "+path)
		}
	}
	sort.Strings(endpoints)
	return endpoints
}

// Handler serves the document as JSON.
func (a *APIDescription) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(a.doc)
	}
}

// openAPIPath turns a Fiber route such as /scenarios/:id into the templated
// form /scenarios/{id}.
func openAPIPath(route string) string {
	segments := strings.Split(route, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + strings.TrimSuffix(strings.TrimPrefix(seg, ":"), "?") + "}"
		}
	}
	return strings.Join(segments, "/")
}
