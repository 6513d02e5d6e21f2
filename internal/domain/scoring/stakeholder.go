package scoring

import (
	"context"
	"strings"

	"github.com/okian/prospect/internal/domain/model"
	"github.com/okian/prospect/internal/domain/score"
)

// Decision-making-power tiers derived from job titles.
const (
	powerExecutive = 1.0
	powerDirector  = 0.8
	powerManager   = 0.6
	powerOther     = 0.4
	powerUnknown   = 0.5
)

// defaultPowerWeight blends decision power against the company score in
// the stakeholder composite.
const defaultPowerWeight = 0.6

// StakeholderOption applies a configuration option to the
// StakeholderScorer.
type StakeholderOption func(*StakeholderScorer)

// WithDecisionPowerWeight sets the weight of decision-making power in the
// stakeholder composite; the company score receives the complement.
func WithDecisionPowerWeight(w float64) StakeholderOption {
	return func(s *StakeholderScorer) {
		if w > 0 && w < 1 {
			s.powerWeight = w
		}
	}
}

// StakeholderScorer attaches decision power and the weighted composite to
// stakeholder records, joining each to its scored company.
type StakeholderScorer struct {
	powerWeight float64
}

// NewStakeholderScorer creates a stakeholder scorer with configuration
// options.
func NewStakeholderScorer(opts ...StakeholderOption) *StakeholderScorer {
	s := &StakeholderScorer{powerWeight: defaultPowerWeight}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreBatch returns a copy of stakeholders with derived columns
// attached. Each stakeholder joins its company score by surrogate ID
// first, exact name second; a join miss substitutes the batch median
// company score rather than zero so a broken reference does not bury an
// otherwise strong contact. Composites follow the same batch-max
// normalization discipline as company scoring.
func (s *StakeholderScorer) ScoreBatch(ctx context.Context, stakeholders []model.Stakeholder, companies []model.Company) []model.Stakeholder {
	byID := make(map[string]score.Value, len(companies))
	byName := make(map[string]score.Value, len(companies))
	companyScores := make([]score.Value, len(companies))
	for i, c := range companies {
		byID[c.ID] = c.CompanyScore
		byName[c.Name] = c.CompanyScore
		companyScores[i] = c.CompanyScore
	}
	fallback := score.Median(companyScores)

	out := make([]model.Stakeholder, len(stakeholders))
	raw := make([]score.Value, len(stakeholders))
	for i, st := range stakeholders {
		select {
		case <-ctx.Done():
			return out[:i]
		default:
		}
		st.DecisionMakingPower = decisionPower(st)

		if v, ok := byID[st.CompanyID]; ok && st.CompanyID != "" {
			st.CompanyScore = v
			st.CompanyMatch = true
		} else if v, ok := byName[st.CompanyName]; ok {
			st.CompanyScore = v
			st.CompanyMatch = true
		} else {
			st.CompanyScore = fallback
			st.CompanyMatch = false
		}

		raw[i] = score.Clamp(
			st.DecisionMakingPower.Float64()*s.powerWeight +
				st.CompanyScore.Float64()*(1-s.powerWeight))
		out[i] = st
	}
	for i, v := range score.Normalize(raw) {
		out[i].StakeholderScore = v
	}
	return out
}

// Title keyword tiers, checked top down.
var (
	executiveTitles = []string{"ceo", "chief", "president", "owner", "founder", "managing director"}
	directorTitles  = []string{"director", "vp", "vice president", "head"}
	managerTitles   = []string{"manager", "lead", "senior", "principal"}
)

// decisionPower prefers an upstream-supplied numeric value and otherwise
// derives power from the title. Blank titles score the unknown default.
func decisionPower(st model.Stakeholder) score.Value {
	if st.RawDecisionPower != nil {
		return score.Clamp(*st.RawDecisionPower)
	}
	title := strings.ToLower(strings.TrimSpace(st.Title))
	if title == "" {
		return score.Clamp(powerUnknown)
	}
	for _, kw := range executiveTitles {
		if strings.Contains(title, kw) {
			return score.Clamp(powerExecutive)
		}
	}
	for _, kw := range directorTitles {
		if strings.Contains(title, kw) {
			return score.Clamp(powerDirector)
		}
	}
	for _, kw := range managerTitles {
		if strings.Contains(title, kw) {
			return score.Clamp(powerManager)
		}
	}
	return score.Clamp(powerOther)
}
