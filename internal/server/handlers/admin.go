package handlers

import (
	"net/http"
)

// HandleAdmin godoc
//
//	@Summary		Admin panel
//	@Description	Administrative route with no authentication or authorization
//	@Description	check of any kind. Demonstrates a missing access control.
//	@Tags			Misconfiguration
//	@Produce		plain
//	@Success		200	{string}	string	"welcome message"
//	@Router			/admin [get]
func HandleAdmin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to the admin panel. No credentials were required to see this."))
}
