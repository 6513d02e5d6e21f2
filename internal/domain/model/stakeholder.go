package model

import "github.com/okian/prospect/internal/domain/score"

// Stakeholder is one industry contact linked to a company. CompanyName is
// the loose name reference supplied upstream; CompanyID is the surrogate
// key resolved at ingestion and is the only key later stages join on.
type Stakeholder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	CompanyName string `json:"company"`
	CompanyID   string `json:"company_id,omitempty"`
	Email       string `json:"email,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty"`

	// RawDecisionPower is an optional upstream-supplied value on [0,1].
	// When nil the score engine derives power from the title.
	RawDecisionPower *float64 `json:"raw_decision_power,omitempty"`

	// Derived columns, attached by the stakeholder score engine.
	DecisionMakingPower score.Value `json:"decision_making_power"`
	CompanyScore        score.Value `json:"company_score"`
	CompanyMatch        bool        `json:"company_match"`
	StakeholderScore    score.Value `json:"stakeholder_score"`

	Relevance string `json:"relevance,omitempty"`
}
