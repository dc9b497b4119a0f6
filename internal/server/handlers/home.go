package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/appsec-training/misconfig-lab/internal/config"
	"github.com/appsec-training/misconfig-lab/internal/demo"
	"github.com/appsec-training/misconfig-lab/internal/logger"
)

// RouteInfo is one row of the home page route inventory.
type RouteInfo struct {
	Method string
	Path   string
	Issue  string
}

// routeInventory is the fixed list of demonstrated misconfigurations shown on
// the home page. Kept here rather than derived from the router so the
// descriptions can name the risk, not the handler.
var routeInventory = []RouteInfo{
	{"GET", "/hello", "Nothing wrong here. Baseline endpoint."},
	{"GET", "/admin", "Administrative route with no authentication."},
	{"GET", "/crash", "Unhandled fault returns a stack trace to the caller."},
	{"GET", "/actuator/env", "Management endpoint leaking credentials and the signing key."},
	{"GET", "/swagger.json", "Raw API specification, no access check."},
	{"GET", "/api-docs/", "Interactive API documentation (aliases: /swagger/, /swagger-ui.html)."},
	{"ALL", "/graphql", "GraphQL with introspection and GraphiQL enabled."},
	{"GET", "/files/", "Static file share with directory listing."},
	{"POST", "/api/update-config", "Unauthenticated mutation of server state."},
}

const homePage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>misconfig-lab</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 52rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f2f2f2; }
code { background: #f6f6f6; padding: 0.1rem 0.3rem; }
.warn { color: #a00; }
</style>
</head>
<body>
<h1>misconfig-lab</h1>
<p class="warn">Every endpoint below is intentionally insecure. Training use only.</p>
<p>Environment: <code>{{.Environment}}</code></p>

<h2>Demonstrated misconfigurations</h2>
<table>
<tr><th>Method</th><th>Path</th><th>What is wrong</th></tr>
{{range .Routes}}<tr><td>{{.Method}}</td><td><code>{{.Path}}</code></td><td>{{.Issue}}</td></tr>
{{end}}</table>

<h2>Last simulated config update</h2>
<table>
<tr><th>Field</th><th>Value</th></tr>
<tr><td>last_modified_by</td><td>{{.LastModifiedBy}}</td></tr>
<tr><td>last_modified_at</td><td>{{.LastModifiedAt}}</td></tr>
</table>
<p>Change it: <code>curl -X POST -d '{"user":"yourname"}' /api/update-config</code></p>
</body>
</html>
`

var homeTemplate = template.Must(template.New("home").Parse(homePage))

type homeData struct {
	Environment    string
	Routes         []RouteInfo
	LastModifiedBy string
	LastModifiedAt string
}

// HandleHome godoc
//
//	@Summary		Demo report page
//	@Description	HTML overview of the demonstrated misconfigurations and the
//	@Description	current demo state.
//	@Tags			Demo
//	@Produce		html
//	@Success		200	{string}	string	"report page"
//	@Router			/ [get]
func HandleHome(cfg *config.ServerEnvironment, state *demo.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := state.Snapshot()

		data := homeData{
			Environment:    cfg.Environment,
			Routes:         routeInventory,
			LastModifiedBy: "-",
			LastModifiedAt: "-",
		}
		if snapshot.LastModifiedBy != nil {
			data.LastModifiedBy = *snapshot.LastModifiedBy
			data.LastModifiedAt = snapshot.LastModifiedAt.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := homeTemplate.Execute(w, data); err != nil {
			reqLogger := logger.ContextRequestLogger(r.Context())
			reqLogger.Error("failed to render home page", slog.String("error", err.Error()))
		}
	}
}
