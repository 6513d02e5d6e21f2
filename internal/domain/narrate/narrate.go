// Package narrate generates the human-readable justification strings
// shown next to each company and lead. Narration reads the same signals
// the score engines use but never alters a score.
package narrate

import (
	"strings"

	"github.com/okian/prospect/internal/domain/model"
)

// Defaults for the narrator configuration.
const (
	defaultProductName  = "Tedlar"
	defaultICPThreshold = 0.7
)

// Generic fallback sentences when no specific signal fires.
const (
	genericCompanyRelevance     = "Your company may benefit from %s's durability and weather resistance for signage and graphics applications."
	genericStakeholderRelevance = "Your professional background suggests you would understand the value of high-performance protective films."
)

// Option applies a configuration option to the Narrator.
type Option func(*Narrator)

// WithProductName sets the product referenced in narratives.
func WithProductName(name string) Option {
	return func(n *Narrator) {
		if name != "" {
			n.productName = name
		}
	}
}

// WithICPThreshold sets the score above which a record is called a strong
// ICP fit.
func WithICPThreshold(t float64) Option {
	return func(n *Narrator) {
		if t > 0 && t <= 1 {
			n.icpThreshold = t
		}
	}
}

// Narrator builds relevance strings for companies and stakeholders.
type Narrator struct {
	productName  string
	icpThreshold float64
}

// New creates a Narrator with configuration options.
func New(opts ...Option) *Narrator {
	n := &Narrator{
		productName:  defaultProductName,
		icpThreshold: defaultICPThreshold,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// CompanyRelevance explains why a scored company matters, from its
// materials, markets, technologies and ICP score. Pure function of the
// record.
func (n *Narrator) CompanyRelevance(c model.Company) string {
	var points []string

	if len(c.Materials) > 0 && hasAny(c.Materials, "vinyl", "pvc", "polycarbonate", "plastic", "laminate") {
		points = append(points, "Your use of "+strings.Join(c.Materials, ", ")+" could be enhanced with "+n.productName+"'s protective properties")
	}
	if len(c.TargetMarkets) > 0 && hasAny(c.TargetMarkets, "outdoor", "architectural", "transportation", "retail") {
		points = append(points, n.productName+" can help your products stand out in the "+strings.Join(c.TargetMarkets, ", ")+" markets")
	}
	if len(c.Technologies) > 0 && hasAny(c.Technologies, "printing", "lamination", "thermoforming") {
		points = append(points, n.productName+" is compatible with your "+strings.Join(c.Technologies, ", ")+" processes")
	}
	if c.CompanyScore.Float64() > n.icpThreshold {
		points = append(points, "Your company profile strongly aligns with our ideal customer profile")
	}

	if len(points) == 0 {
		return strings.Replace(genericCompanyRelevance, "%s", n.productName, 1)
	}
	return strings.Join(points, ". ") + "."
}

// StakeholderRelevance explains why a contact matters, from the title
// category and the linked company's products and score.
func (n *Narrator) StakeholderRelevance(st model.Stakeholder, c model.Company) string {
	var points []string

	title := strings.ToLower(st.Title)
	switch {
	case strings.Contains(title, "product") || strings.Contains(title, "innovation") || strings.Contains(title, "r&d"):
		points = append(points, "Your role in product development aligns with our material innovation focus")
	case strings.Contains(title, "procurement") || strings.Contains(title, "purchasing"):
		points = append(points, "As a procurement decision-maker, you can evaluate "+n.productName+"'s cost-benefit advantages")
	case strings.Contains(title, "technology") || strings.Contains(title, "technical"):
		points = append(points, "Your technical expertise can help assess "+n.productName+"'s performance benefits")
	}

	if st.CompanyMatch && c.CompanyScore.Float64() > n.icpThreshold {
		points = append(points, "Your company is an ideal fit for our protective film solutions")
	}
	if hasAny(c.Products, "signage", "sign") {
		points = append(points, n.productName+" can enhance the durability of your signage products")
	} else if hasAny(c.Products, "display") {
		points = append(points, n.productName+" provides UV and weather protection for your display solutions")
	}

	if len(points) == 0 {
		return genericStakeholderRelevance
	}
	return strings.Join(points, ". ") + "."
}

// hasAny reports whether any value contains any of the keywords,
// case-insensitive.
func hasAny(values []string, keywords ...string) bool {
	for _, v := range values {
		lower := strings.ToLower(v)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
