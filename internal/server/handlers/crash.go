package handlers

import (
	"net/http"
)

// HandleCrash godoc
//
//	@Summary		Trigger an unhandled fault
//	@Description	Panics inside the handler. The recoverer turns the panic into
//	@Description	a 500 whose body contains the panic value and the full stack
//	@Description	trace, demonstrating diagnostic information disclosure.
//	@Tags			Misconfiguration
//	@Produce		plain
//	@Failure		500	{string}	string	"panic value and stack trace"
//	@Router			/crash [get]
func HandleCrash(w http.ResponseWriter, r *http.Request) {
	panic("simulated unhandled failure in config reload worker")
}
