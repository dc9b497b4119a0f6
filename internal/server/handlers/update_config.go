package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/appsec-training/misconfig-lab/internal/demo"
	"github.com/appsec-training/misconfig-lab/internal/logger"
)

type UpdateConfigRequest struct {
	User string `json:"user" example:"alice"`
}

// HandleUpdateConfig godoc
//
//	@Summary		Simulated config update
//	@Description	The only mutating endpoint in the system. Accepts a JSON body
//	@Description	with an optional user field (default "anonymous") and records
//	@Description	who last "changed the config" and when. No validation, no
//	@Description	authorization - anyone on the network can claim a change.
//	@Tags			Misconfiguration
//	@Accept			json
//	@Produce		json
//	@Param			update	body		UpdateConfigRequest	false	"Update details"
//	@Success		200		{object}	demo.Snapshot
//	@Failure		400		{string}	string	"Invalid request body"
//	@Router			/api/update-config [post]
func HandleUpdateConfig(state *demo.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqLogger := logger.ContextRequestLogger(r.Context())

		var req UpdateConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if req.User == "" {
			req.User = "anonymous"
		}

		snapshot := state.RecordUpdate(req.User)

		reqLogger.Info("demo state updated", slog.String("user", req.User))

		RespondWithJSON(w, http.StatusOK, snapshot)
	}
}
