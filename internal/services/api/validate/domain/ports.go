package domain

import "context"

// EmailChecker is the mandatory upstream; its body becomes the top level of the reply
type EmailChecker interface {
	CheckEmail(ctx context.Context, email string) (map[string]any, error)
}

// AuthenticityChecker never fails; nil means the check was unavailable
type AuthenticityChecker interface {
	CheckAuthenticity(ctx context.Context, domain string) *AuthenticityResult
}

// ReputationChecker never fails; nil means the check was unavailable
type ReputationChecker interface {
	CheckReputation(ctx context.Context, domain string) *ReputationResult
}

// ServicePort defines the validate service interface
type ServicePort interface {
	Validate(ctx context.Context, email string) (CombinedValidationResult, error)
}
