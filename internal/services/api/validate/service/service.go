// Package service implements the validate fan out
package service

import (
	"context"
	"time"

	perr "mailvet/internal/platform/errors"
	"mailvet/internal/platform/logger"
	pstrings "mailvet/internal/platform/strings"
	"mailvet/internal/services/api/validate/domain"
	"mailvet/internal/services/api/validate/metrics"

	"golang.org/x/sync/errgroup"
)

// ErrEmailRequired is returned before any upstream is called
var ErrEmailRequired = perr.WithField(perr.Validationf("Email is required"), "email")

// failedMsg is the only text a caller sees when the email check fails
const failedMsg = "Failed to validate email"

// Service is the concrete implementation of domain.ServicePort
type Service struct {
	email   domain.EmailChecker
	auth    domain.AuthenticityChecker
	rep     domain.ReputationChecker
	metrics *metrics.Metrics
	now     func() time.Time
}

// New constructs a validate service; m may be nil
func New(email domain.EmailChecker, auth domain.AuthenticityChecker, rep domain.ReputationChecker, m *metrics.Metrics) *Service {
	if email == nil {
		panic("validate.Service requires a non-nil EmailChecker")
	}
	if auth == nil {
		panic("validate.Service requires a non-nil AuthenticityChecker")
	}
	if rep == nil {
		panic("validate.Service requires a non-nil ReputationChecker")
	}
	return &Service{email: email, auth: auth, rep: rep, metrics: m, now: time.Now}
}

// Validate runs the three checks concurrently and merges them
// only the email check can fail the request; the domain checks degrade to nil
func (s *Service) Validate(ctx context.Context, email string) (domain.CombinedValidationResult, error) {
	if email == "" {
		s.metrics.IncrementValidation(metrics.ResultBadRequest)
		return domain.CombinedValidationResult{}, ErrEmailRequired
	}
	d := pstrings.DomainOf(email)
	start := s.now()

	var (
		fields map[string]any
		auth   *domain.AuthenticityResult
		rep    *domain.ReputationResult
	)

	// a plain group so a failed email check does not cancel the domain checks
	var g errgroup.Group

	g.Go(func() error {
		t := s.now()
		out, err := s.email.CheckEmail(ctx, email)
		if err != nil {
			s.metrics.ObserveUpstream(metrics.UpstreamEmail, metrics.OutcomeFailed, s.now().Sub(t))
			return err
		}
		s.metrics.ObserveUpstream(metrics.UpstreamEmail, metrics.OutcomeOK, s.now().Sub(t))
		fields = out
		return nil
	})

	g.Go(func() error {
		t := s.now()
		auth = s.auth.CheckAuthenticity(ctx, d)
		s.metrics.ObserveUpstream(metrics.UpstreamAuthenticity, outcomeOf(auth != nil), s.now().Sub(t))
		return nil
	})

	g.Go(func() error {
		t := s.now()
		rep = s.rep.CheckReputation(ctx, d)
		s.metrics.ObserveUpstream(metrics.UpstreamReputation, outcomeOf(rep != nil), s.now().Sub(t))
		return nil
	})

	err := g.Wait()
	s.metrics.ObserveValidate(s.now().Sub(start))
	if err != nil {
		logger.C(ctx).Error().Err(err).Str("domain", d).Msg("email check failed")
		s.metrics.IncrementValidation(metrics.ResultFailed)
		return domain.CombinedValidationResult{}, perr.Wrap(err, perr.ErrorCodeUnknown, failedMsg)
	}

	s.metrics.IncrementValidation(metrics.ResultOK)
	return domain.Merge(fields, auth, rep), nil
}

func outcomeOf(ok bool) string {
	if ok {
		return metrics.OutcomeOK
	}
	return metrics.OutcomeDegraded
}
