package handlers

import (
	"net/http"

	"github.com/appsec-training/misconfig-lab/internal/version"
)

// HandleVersion godoc
//
//	@Summary		Get version information
//	@Description	Returns the version and build information for the service
//	@Tags			Common
//	@Produce		json
//	@Success		200	{object}	VersionResponse	"Version information"
//	@Router			/version [get]
func HandleVersion(info version.Info) http.HandlerFunc {
	// Pre-create the response to avoid allocating on every request
	response := VersionResponse{
		Version:   info.Version,
		GitCommit: info.GitCommit,
		BuildDate: info.BuildDate,
		Service:   "misconfig-server",
	}

	return func(w http.ResponseWriter, r *http.Request) {
		RespondWithJSON(w, http.StatusOK, response)
	}
}

type VersionResponse struct {
	Version   string `json:"version" example:"1.0.0"`
	GitCommit string `json:"git_commit" example:"a1b2c3d"`
	BuildDate string `json:"build_date" example:"2026-01-28T10:00:00Z"`
	Service   string `json:"service" example:"misconfig-server"`
}
