package handlers

import (
	"net/http"
)

type HelloResponse struct {
	Message string `json:"message" example:"Hello World"`
}

// HandleHello godoc
//
//	@Summary		Hello World
//	@Description	Returns a fixed greeting. The one deliberately boring endpoint.
//	@Tags			Demo
//	@Produce		json
//	@Success		200	{object}	HelloResponse
//	@Router			/hello [get]
func HandleHello(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, HelloResponse{Message: "Hello World"})
}
