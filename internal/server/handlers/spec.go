package handlers

import (
	"net/http"

	"github.com/appsec-training/misconfig-lab/internal/openapi"
)

// HandleSwaggerSpec godoc
//
//	@Summary		API specification
//	@Description	Serves the full OpenAPI document with no access check,
//	@Description	handing any caller a complete map of the API surface.
//	@Tags			Misconfiguration
//	@Produce		json
//	@Success		200	{object}	map[string]any	"OpenAPI document"
//	@Router			/swagger.json [get]
func HandleSwaggerSpec(doc *openapi.Document) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(doc.JSON)
	}
}
