// Package extract fills missing categorical company attributes from the
// free-text description and website using ordered keyword dictionaries.
// The extractor is pure and idempotent: already-populated fields are never
// overwritten, so running it twice is a no-op on the second pass.
package extract

import (
	"strings"

	"github.com/okian/prospect/internal/domain/model"
)

// Fallbacks applied when no keyword fires for a field.
const (
	defaultIndustry    = "Graphics and Signage"
	defaultCompanySize = model.SizeSmall
)

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithDefaultIndustry overrides the industry assigned when no keyword
// matches.
func WithDefaultIndustry(industry string) Option {
	return func(e *Extractor) {
		if industry != "" {
			e.defaultIndustry = industry
		}
	}
}

// WithDefaultCompanySize overrides the size bucket assigned when no
// keyword matches.
func WithDefaultCompanySize(size string) Option {
	return func(e *Extractor) {
		if size != "" {
			e.defaultSize = size
		}
	}
}

// Extractor derives missing categorical attributes for company records.
type Extractor struct {
	defaultIndustry string
	defaultSize     string
}

// New creates an Extractor with configuration options.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		defaultIndustry: defaultIndustry,
		defaultSize:     defaultCompanySize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FillMissing returns a copy of c with empty categorical fields derived
// from the record's text. Non-empty fields pass through untouched.
func (e *Extractor) FillMissing(c model.Company) model.Company {
	text := searchText(c)

	if c.Industry == "" {
		c.Industry = pickOne(text, industryCategories, e.defaultIndustry)
	}
	if c.CompanySize == "" && c.EmployeeCount == 0 {
		// Only derive a bucket when no numeric count is available either;
		// the score engine prefers the employee ladder when it can.
		c.CompanySize = pickOne(text, sizeCategories, e.defaultSize)
	}
	if len(c.Products) == 0 {
		c.Products = pickAll(text, productCategories)
	}
	if len(c.Materials) == 0 {
		c.Materials = pickAll(text, materialCategories)
	}
	if len(c.TargetMarkets) == 0 {
		c.TargetMarkets = pickAll(text, marketCategories)
	}
	return c
}

// FillBatch applies FillMissing to every company in the slice, returning a
// new slice.
func (e *Extractor) FillBatch(companies []model.Company) []model.Company {
	out := make([]model.Company, len(companies))
	for i, c := range companies {
		out[i] = e.FillMissing(c)
	}
	return out
}

// searchText combines the signal-bearing free text of a record, lowercased
// for matching. The website domain counts too: "vinylwraps.com" is a
// signal even when the description is empty.
func searchText(c model.Company) string {
	host := strings.TrimPrefix(strings.TrimPrefix(c.Website, "https://"), "http://")
	host = strings.TrimPrefix(host, "www.")
	return strings.ToLower(c.Description + " " + c.Name + " " + host)
}

// pickOne returns the category with the most keyword hits, the first
// declared winning ties. No hits at all yields fallback.
func pickOne(text string, dict []category, fallback string) string {
	best := fallback
	bestHits := 0
	for _, cat := range dict {
		hits := 0
		for _, kw := range cat.keywords {
			hits += strings.Count(text, kw)
		}
		if hits > bestHits {
			best = cat.name
			bestHits = hits
		}
	}
	return best
}

// pickAll collects every category with at least one hit, in declaration
// order. Set-valued fields keep all matching categories rather than a
// single winner.
func pickAll(text string, dict []category) []string {
	var out []string
	for _, cat := range dict {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				out = append(out, cat.name)
				break
			}
		}
	}
	return out
}
