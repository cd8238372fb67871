// Package http provides HTTP transport for the validate API
package http

import (
	stdhttp "net/http"

	"mailvet/internal/modkit/httpkit"
	"mailvet/internal/services/api/validate/domain"
)

// maxBody caps the request body; an address never comes close
const maxBody = 16 << 10

// Register mounts the validate endpoint on the given router
// the reply is the combined body itself, errors are {"error": msg}
func Register(r httpkit.Router, s domain.ServicePort) {
	h := &handlers{svc: s}
	httpkit.PostBare[domain.ValidationRequest](r, "/validate", h.validate,
		httpkit.JSONOptions{MaxBytes: maxBody, DisallowUnknown: false})
}

type handlers struct{ svc domain.ServicePort }

// swagger:route POST /validate Validate validateEmail
// @Summary Validate an email address
// @Tags validate
// @Accept json
// @Produce json
// @Param payload body domain.ValidationRequest true "Address"
// @Success 200 {object} domain.CombinedValidationResult "ok"
// @Failure 400 {object} net.ErrorBody "email missing"
// @Failure 500 {object} net.ErrorBody "email check failed"
// @Router /validate [post]
func (h *handlers) validate(r *stdhttp.Request, in domain.ValidationRequest) (any, error) {
	return h.svc.Validate(r.Context(), in.Email)
}
