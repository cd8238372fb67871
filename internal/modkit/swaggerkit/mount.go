// Package swaggerkit serves the API's OpenAPI document and Swagger UI
package swaggerkit

import (
	"net/http"

	phttp "mailvet/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// paths the UI and document are served from
const (
	DocsPath    = "/api/docs"
	DocJSONPath = DocsPath + "/doc.json"
)

// Mount serves the UI under DocsPath and the rewritten document at DocJSONPath when enabled
// the UI opens with every operation expanded since the API only has a handful
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocJSONPath, serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(DocJSONPath),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("full"),
	))
}
