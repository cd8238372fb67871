package httpkit

import (
	"net/http"
	"strings"
)

// APIPrefix is the path every versioned API route lives under
const APIPrefix = "/api/"

// MountAPI scopes mount to /api/{version} with mw applied to that scope only
//
//	httpkit.MountAPI(r, "v1", httpkit.APIStack(opts), func(api httpkit.Router) {
//		validate.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(APIPrefix+strings.Trim(version, "/"), func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPIV1 mounts under /api/v1, the only version served today
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
