package module

import (
	"mailvet/internal/adapters/intel/authenticity"
	"mailvet/internal/adapters/intel/mailcheck"
	"mailvet/internal/adapters/intel/reputation"
	"mailvet/internal/adapters/intel/upstream"
	"mailvet/internal/platform/config"
)

// Options holds the settings for every upstream
type Options struct {
	Email        mailcheck.Options
	Authenticity authenticity.Options
	Reputation   reputation.Options
}

// OptionsFromConfig reads MAILVET_* values; the email base url is required
func OptionsFromConfig(c config.Conf) Options {
	c = c.Prefix("MAILVET_")
	ua := c.MayString("USER_AGENT", upstream.DefaultUserAgent)
	return Options{
		Email: mailcheck.Options{
			BaseURL:   c.MustURL("EMAIL_BASE_URL").String(),
			Path:      c.MayString("EMAIL_PATH", mailcheck.DefaultPath),
			UserAgent: ua,
			Timeout:   c.MayDuration("EMAIL_TIMEOUT", mailcheck.DefaultTimeout),
		},
		Authenticity: authenticity.Options{
			BaseURL:   c.MayURL("AUTH_BASE_URL", authenticity.DefaultBaseURL).String(),
			Path:      c.MayString("AUTH_PATH", authenticity.DefaultPath),
			UserAgent: ua,
			Timeout:   c.MayDuration("AUTH_TIMEOUT", authenticity.DefaultTimeout),
		},
		Reputation: reputation.Options{
			BaseURL:   c.MayURL("REPUTATION_BASE_URL", reputation.DefaultBaseURL).String(),
			Path:      c.MayString("REPUTATION_PATH", reputation.DefaultPath),
			UserAgent: ua,
			Timeout:   c.MayDuration("REPUTATION_TIMEOUT", reputation.DefaultTimeout),
		},
	}
}

// Targets lists upstream names and base urls for readiness reporting
func (o Options) Targets() map[string]string {
	return map[string]string{
		"email":        o.Email.BaseURL,
		"authenticity": o.Authenticity.BaseURL,
		"reputation":   o.Reputation.BaseURL,
	}
}
