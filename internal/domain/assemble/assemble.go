// Package assemble joins scored stakeholders to their companies and
// produces the final ranked, tiered lead table.
package assemble

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/prospect/internal/domain/model"
	"github.com/okian/prospect/internal/domain/score"
)

// Fixed blend of company and stakeholder scores in the lead composite.
const (
	companyBlendWeight     = 0.6
	stakeholderBlendWeight = 0.4
)

// Tier bin edges. Scores above tier1Floor are Tier 1, above tier2Floor
// Tier 2, everything else (including exactly 0) Tier 3.
const (
	tier1Floor = 0.6
	tier2Floor = 0.3
)

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithKeepUnmatched retains stakeholders whose company reference resolved
// to nothing, flagged with company_match=false, instead of silently
// dropping them.
func WithKeepUnmatched(keep bool) Option {
	return func(a *Assembler) {
		a.keepUnmatched = keep
	}
}

// Assembler builds the lead table from the two scored input tables.
type Assembler struct {
	keepUnmatched bool
}

// New creates an Assembler with configuration options.
func New(opts ...Option) *Assembler {
	a := &Assembler{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble joins each stakeholder to its company, blends the two
// composite scores, bins the tier, and ranks the result by lead score
// descending. The sort is stable, so equal scores keep input order.
// Lead IDs are positional in final rank order.
func (a *Assembler) Assemble(ctx context.Context, companies []model.Company, stakeholders []model.Stakeholder) []model.Lead {
	byID := make(map[string]model.Company, len(companies))
	byName := make(map[string]model.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
		byName[c.Name] = c
	}

	leads := make([]model.Lead, 0, len(stakeholders))
	for _, st := range stakeholders {
		select {
		case <-ctx.Done():
			return leads
		default:
		}
		c, matched := byID[st.CompanyID]
		if !matched {
			c, matched = byName[st.CompanyName]
		}
		if !matched && !a.keepUnmatched {
			continue
		}

		// Unmatched rows kept by configuration carry the fallback
		// company score already attached during stakeholder scoring.
		companyScore := st.CompanyScore
		companyID := ""
		companyName := st.CompanyName
		if matched {
			companyScore = c.CompanyScore
			companyID = c.ID
			companyName = c.Name
		}

		blend := score.Clamp(
			companyScore.Float64()*companyBlendWeight +
				st.StakeholderScore.Float64()*stakeholderBlendWeight).Round2()

		leads = append(leads, model.Lead{
			StakeholderID:       st.ID,
			CompanyID:           companyID,
			Name:                st.Name,
			Title:               st.Title,
			Company:             companyName,
			Email:               st.Email,
			LinkedInURL:         st.LinkedInURL,
			DecisionMakingPower: st.DecisionMakingPower,
			CompanyScore:        companyScore,
			StakeholderScore:    st.StakeholderScore,
			LeadScore:           blend,
			Tier:                TierFor(blend),
			CompanyMatch:        matched,
			Relevance:           st.Relevance,
		})
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].LeadScore > leads[j].LeadScore
	})
	for i := range leads {
		leads[i].LeadID = fmt.Sprintf("LEAD-%04d", i+1)
	}
	return leads
}

// TierFor is the pure binning function from lead score to tier label.
// Identical scores always yield identical tiers.
func TierFor(v score.Value) string {
	switch {
	case v.Float64() > tier1Floor:
		return model.Tier1
	case v.Float64() > tier2Floor:
		return model.Tier2
	default:
		return model.Tier3
	}
}
