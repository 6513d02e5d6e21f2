package model

import "github.com/okian/prospect/internal/domain/score"

// Lead tier labels. Higher score means a better (numerically lower) tier;
// dashboards color-code by these exact strings.
const (
	Tier1 = "Tier 1"
	Tier2 = "Tier 2"
	Tier3 = "Tier 3"
)

// Lead is one stakeholder joined to its scored company, ranked and
// tiered. LeadID is positional in final rank order and is not stable
// across runs with different input order.
type Lead struct {
	LeadID        string `json:"lead_id"`
	StakeholderID string `json:"stakeholder_id"`
	CompanyID     string `json:"company_id,omitempty"`
	Name          string `json:"name"`
	Title         string `json:"title,omitempty"`
	Company       string `json:"company"`
	Email         string `json:"email,omitempty"`
	LinkedInURL   string `json:"linkedin_url,omitempty"`

	DecisionMakingPower score.Value `json:"decision_making_power"`
	CompanyScore        score.Value `json:"company_score"`
	StakeholderScore    score.Value `json:"stakeholder_score"`
	LeadScore           score.Value `json:"lead_score"`
	Tier                string      `json:"tier"`
	CompanyMatch        bool        `json:"company_match"`

	Relevance       string `json:"relevance,omitempty"`
	TemplateType    string `json:"template_type,omitempty"`
	Subject         string `json:"subject,omitempty"`
	OutreachMessage string `json:"outreach_message,omitempty"`
}
