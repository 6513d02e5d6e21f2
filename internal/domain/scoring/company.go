// Package scoring computes the per-record sub-scores and weighted
// composites for companies and stakeholders. All functions are pure and
// deterministic; a malformed record degrades to the neutral default
// instead of failing the batch.
package scoring

import (
	"context"
	"strings"

	"github.com/okian/prospect/internal/domain/model"
	"github.com/okian/prospect/internal/domain/score"
)

// Neutral default substituted whenever a sub-score input is missing.
const neutralScore = 0.5

// Size bucket scalars and the numeric employee-count ladder.
const (
	sizeLargeScore  = 1.0
	sizeMediumScore = 0.7
	sizeSmallScore  = 0.4
	sizeMicroScore  = 0.2
)

// Product-fit scoring parameters: a neutral base plus capped keyword
// contributions from products and materials.
const (
	productFitBase    = 0.5
	keywordHitValue   = 0.1
	keywordHitCeiling = 0.3
)

// CompanyWeights are the externally configured composite weights. They
// need not sum to 1; batch-max normalization absorbs the scale.
type CompanyWeights struct {
	Size       float64
	Industry   float64
	ProductFit float64
}

// DefaultCompanyWeights mirror the documented default regime.
func DefaultCompanyWeights() CompanyWeights {
	return CompanyWeights{Size: 0.3, Industry: 0.4, ProductFit: 0.3}
}

// CompanyOption applies a configuration option to the CompanyScorer.
type CompanyOption func(*CompanyScorer)

// WithCompanyWeights sets the composite weights. Non-positive weight sets
// are ignored in favor of the defaults.
func WithCompanyWeights(w CompanyWeights) CompanyOption {
	return func(s *CompanyScorer) {
		if w.Size > 0 || w.Industry > 0 || w.ProductFit > 0 {
			s.weights = w
		}
	}
}

// CompanyScorer attaches size, industry, product-fit and composite scores
// to company records.
type CompanyScorer struct {
	weights CompanyWeights
}

// NewCompanyScorer creates a company scorer with configuration options.
func NewCompanyScorer(opts ...CompanyOption) *CompanyScorer {
	s := &CompanyScorer{weights: DefaultCompanyWeights()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ScoreBatch returns a copy of companies with the four derived columns
// attached. The composite is normalized against the batch maximum, so the
// single best company always scores exactly 1.0 in a non-empty batch. An
// empty batch returns an empty slice, never an error.
func (s *CompanyScorer) ScoreBatch(ctx context.Context, companies []model.Company) []model.Company {
	out := make([]model.Company, len(companies))
	raw := make([]score.Value, len(companies))
	for i, c := range companies {
		select {
		case <-ctx.Done():
			return out[:i]
		default:
		}
		c.SizeScore = sizeScore(c)
		c.IndustryScore = industryScore(c.Industry)
		c.ProductFitScore = productFitScore(c.Products, c.Materials)
		raw[i] = score.Clamp(
			c.SizeScore.Float64()*s.weights.Size +
				c.IndustryScore.Float64()*s.weights.Industry +
				c.ProductFitScore.Float64()*s.weights.ProductFit)
		out[i] = c
	}
	for i, v := range score.Normalize(raw) {
		out[i].CompanyScore = v
	}
	return out
}

// employee-count ladder thresholds.
var employeeLadder = []struct {
	minEmployees int
	value        float64
}{
	{1000, 1.0},
	{250, 0.8},
	{50, 0.6},
	{10, 0.4},
}

// sizeScore maps the categorical bucket, falling back to the numeric
// employee ladder, falling back to neutral.
func sizeScore(c model.Company) score.Value {
	switch c.CompanySize {
	case model.SizeLarge:
		return score.Clamp(sizeLargeScore)
	case model.SizeMedium:
		return score.Clamp(sizeMediumScore)
	case model.SizeSmall:
		return score.Clamp(sizeSmallScore)
	case model.SizeMicro:
		return score.Clamp(sizeMicroScore)
	}
	if c.EmployeeCount > 0 {
		for _, step := range employeeLadder {
			if c.EmployeeCount >= step.minEmployees {
				return score.Clamp(step.value)
			}
		}
		return score.Clamp(sizeMicroScore)
	}
	return score.Clamp(neutralScore)
}

// industryTiers rank industry strings by relevance to the target market.
// First matching tier wins, so tiers are ordered high to low.
var industryTiers = []struct {
	value    float64
	keywords []string
}{
	{1.0, []string{"signage", "sign", "graphics"}},
	{0.8, []string{"printing", "display", "visual communications", "wraps"}},
	{0.6, []string{"advertising", "marketing", "branding", "media"}},
	{0.4, []string{"manufacturing", "retail", "packaging", "construction"}},
}

// industryScore does a keyword-tier lookup against the industry string.
// Absent industry scores neutral; an unrecognized one scores 0.2.
func industryScore(industry string) score.Value {
	if strings.TrimSpace(industry) == "" {
		return score.Clamp(neutralScore)
	}
	lower := strings.ToLower(industry)
	for _, tier := range industryTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return score.Clamp(tier.value)
			}
		}
	}
	return score.Clamp(0.2)
}

var (
	relevantProductKeywords  = []string{"sign", "banner", "wrap", "display", "graphic", "print", "architectural", "fleet"}
	relevantMaterialKeywords = []string{"vinyl", "pvc", "polycarbonate", "plastic", "laminate", "film"}
)

// productFitScore starts neutral and adds capped contributions per
// relevant product and material keyword match.
func productFitScore(products, materials []string) score.Value {
	v := productFitBase
	v += cappedKeywordBonus(products, relevantProductKeywords)
	v += cappedKeywordBonus(materials, relevantMaterialKeywords)
	return score.Clamp(v)
}

func cappedKeywordBonus(values, keywords []string) float64 {
	bonus := 0.0
	for _, val := range values {
		lower := strings.ToLower(val)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				bonus += keywordHitValue
				break
			}
		}
		if bonus >= keywordHitCeiling {
			return keywordHitCeiling
		}
	}
	return bonus
}
