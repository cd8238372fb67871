// Package domain holds DTOs and ports for the validate API
package domain

import (
	"bytes"
	"encoding/json"
	"maps"
)

// ValidationRequest is the inbound body of POST /validate
type ValidationRequest struct {
	Email string `json:"email" validate:"required" example:"someone@example.com"`
}

// ReputationResult summarises a blacklist sweep of the domain
// IsClean is true exactly when ListedCount is zero
type ReputationResult struct {
	ListedCount  int  `json:"listedCount"  example:"0"`
	TotalChecked int  `json:"totalChecked" example:"52"`
	CleanCount   int  `json:"cleanCount"   example:"50"`
	ErrorCount   int  `json:"errorCount"   example:"2"`
	IsClean      bool `json:"isClean"      example:"true"`
}

// AuthenticityResult carries the domain intel overview
// Whois and Dimensions are passed through as the upstream sent them
type AuthenticityResult struct {
	Whois      any      `json:"whois"`
	Score      *float64 `json:"score"`
	Dimensions any      `json:"dimensions"`
}

// Keys the orchestrator owns on the combined body
const (
	KeyAuthenticity = "domain_authenticity"
	KeyReputation   = "domain_reputation"
)

// CombinedValidationResult is the email check body with the two domain checks attached
// Fields is opaque; whatever the email check returned is echoed at the top level
type CombinedValidationResult struct {
	Fields             map[string]any
	DomainAuthenticity *AuthenticityResult
	DomainReputation   *ReputationResult
}

// Merge builds a combined result; the domain keys win over same named upstream keys
func Merge(fields map[string]any, auth *AuthenticityResult, rep *ReputationResult) CombinedValidationResult {
	return CombinedValidationResult{
		Fields:             maps.Clone(fields),
		DomainAuthenticity: auth,
		DomainReputation:   rep,
	}
}

// MarshalJSON spreads Fields and then sets the two domain keys, null when absent
func (c CombinedValidationResult) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Fields)+2)
	maps.Copy(out, c.Fields)
	if c.DomainAuthenticity != nil {
		out[KeyAuthenticity] = c.DomainAuthenticity
	} else {
		out[KeyAuthenticity] = nil
	}
	if c.DomainReputation != nil {
		out[KeyReputation] = c.DomainReputation
	} else {
		out[KeyReputation] = nil
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits a combined body back into its parts
func (c *CombinedValidationResult) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var parts struct {
		Auth *AuthenticityResult `json:"domain_authenticity"`
		Rep  *ReputationResult   `json:"domain_reputation"`
	}
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == KeyAuthenticity || k == KeyReputation {
			continue
		}
		// numbers stay json.Number so wide integers keep every digit
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.UseNumber()
		var x any
		if err := dec.Decode(&x); err != nil {
			return err
		}
		fields[k] = x
	}
	*c = CombinedValidationResult{Fields: fields, DomainAuthenticity: parts.Auth, DomainReputation: parts.Rep}
	return nil
}
