package http

import (
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

//go:embed api/openapi.yml
var openapiSpec []byte

// LoadOpenAPIDocument parses and validates the committed OpenAPI document.
// Called at startup so a malformed contract fails the boot, not a request.
func LoadOpenAPIDocument() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	return doc, nil
}

// RegisterOpenAPIRoute serves the API contract as JSON.
func RegisterOpenAPIRoute(e *echo.Echo, doc *openapi3.T) {
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	})
}
