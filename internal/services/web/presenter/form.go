package presenter

import (
	"context"

	perr "mailvet/internal/platform/errors"
	"mailvet/internal/platform/logger"
	"mailvet/internal/services/api/validate/domain"
)

// Form is the page state: the typed address, whether a submission is in flight,
// and at most one of a result or an error message
type Form struct {
	Email   string
	Loading bool
	Result  *domain.CombinedValidationResult
	Error   string
}

// Submit validates f.Email through v; Loading is cleared on every exit path
func (f *Form) Submit(ctx context.Context, v Validator) {
	f.Loading = true
	f.Result = nil
	f.Error = ""
	defer func() { f.Loading = false }()

	res, err := v.Validate(ctx, f.Email)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("validation request failed")
		f.Error = ErrorText(err)
		return
	}
	f.Result = &res
}

// ErrorText is the message a failed submission shows
func ErrorText(err error) string {
	if e, ok := perr.As(err); ok && e.Message() != "" {
		return e.Message()
	}
	return DefaultErrorText
}
