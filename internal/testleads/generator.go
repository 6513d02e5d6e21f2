package testleads

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/okian/prospect/pkg/logger"
)

// Name pools for mock data generation.
var (
	companyPrefixes = []string{"Advanced", "Premier", "Elite", "Global", "Pro", "Creative", "Innovative", "Dynamic", "Modern", "Summit"}
	companyMids     = []string{"Graphics", "Signage", "Displays", "Printing", "Visual", "Signs", "Imaging", "Media", "Wraps"}
	companySuffixes = []string{"Solutions", "Systems", "Inc", "Co", "Group", "Partners", "Studio", "Experts"}

	industries = []string{
		"Signage and Graphics",
		"Large Format Printing",
		"Vehicle Wraps",
		"Architectural Graphics",
		"Fleet Graphics",
		"Screen Printing",
	}

	productPool = []string{
		"Signage", "Banners", "Vehicle Wraps", "Displays", "Graphics",
		"Digital Printing", "Large Format", "Architectural Graphics",
		"Fleet Graphics", "Retail Displays",
	}

	materialPool = []string{"vinyl", "pvc", "acrylic", "fabric", "laminate", "mesh"}

	marketPool = []string{"Retail", "Corporate", "Events", "Outdoor", "Transportation"}

	sourcePool = []string{
		"Event: ISA Sign Expo",
		"Event: PRINTING United",
		"Event: FESPA Global Print Expo",
		"Association: International Sign Association",
		"Association: Specialty Graphic Imaging Association",
	}

	firstNames = []string{"Alex", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Jamie", "Drew", "Cameron", "Quinn", "Avery", "Dana"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Martinez", "Lopez", "Wilson", "Anderson"}

	stakeholderTitles = []string{
		"VP of Product Development",
		"Director of Innovation",
		"Chief Technology Officer",
		"Head of Product",
		"Director of Procurement",
		"Purchasing Manager",
		"Materials Manager",
		"Production Manager",
		"Operations Manager",
		"CEO",
		"Founder",
		"Marketing Coordinator",
	}
)

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// pick returns a random element of pool.
func pick(pool []string) string {
	return pool[randomInt(len(pool))]
}

// pickSome returns between 1 and max distinct elements of pool.
func pickSome(pool []string, max int) []string {
	n := 1 + randomInt(max)
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		p := pick(pool)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// generateBatches creates the configured number of batches with mock
// companies and stakeholders.
func generateBatches(ctx context.Context, config *Config, stats *Stats) ([]Batch, error) {
	logger.Get().Info(ctx, "generating batches", logger.Int("numBatches", config.NumBatches))

	batches := make([]Batch, config.NumBatches)
	for i := range batches {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		batches[i] = generateSingleBatch(config)
	}

	stats.BatchesGenerated = len(batches)
	logger.Get().Info(ctx, "generated batches successfully", logger.Int("count", len(batches)))

	return batches, nil
}

// generateSingleBatch builds one batch of companies with one or two
// stakeholders each. A handful of stakeholders reference companies that
// are not in the batch to exercise join-miss handling.
func generateSingleBatch(config *Config) Batch {
	companiesMin := config.CompaniesMin
	if companiesMin < 1 {
		companiesMin = 1
	}
	companiesMax := config.CompaniesMax
	if companiesMax < companiesMin {
		companiesMax = companiesMin
	}
	count := companiesMin + randomInt(companiesMax-companiesMin+1)

	b := Batch{BatchID: uuid.NewString()}
	for i := 0; i < count; i++ {
		c := generateCompany()
		b.Companies = append(b.Companies, c)

		stakeholders := 1 + randomInt(2)
		for j := 0; j < stakeholders; j++ {
			b.Stakeholders = append(b.Stakeholders, generateStakeholder(c))
		}
	}

	// One orphan stakeholder per batch keeps the unmatched path exercised.
	orphan := generateStakeholder(Company{Name: "Unknown " + pick(companyMids) + " " + pick(companySuffixes)})
	b.Stakeholders = append(b.Stakeholders, orphan)

	return b
}

func generateCompany() Company {
	name := pick(companyPrefixes) + " " + pick(companyMids) + " " + pick(companySuffixes)
	domain := strings.ToLower(strings.ReplaceAll(name, " ", "")) + ".com"

	return Company{
		Name:          name,
		Website:       "https://www." + domain,
		Description:   "Provider of " + strings.ToLower(pick(productPool)) + " for " + strings.ToLower(pick(marketPool)) + " customers",
		Industry:      pick(industries),
		EmployeeCount: 20 + randomInt(481),
		AnnualRevenue: float64(1_000_000 + randomInt(49_000_000)),
		Products:      pickSome(productPool, 3),
		Materials:     pickSome(materialPool, 2),
		TargetMarkets: pickSome(marketPool, 3),
		Source:        pick(sourcePool),
	}
}

func generateStakeholder(c Company) Stakeholder {
	first := pick(firstNames)
	last := pick(lastNames)
	domain := strings.ToLower(strings.ReplaceAll(c.Name, " ", "")) + ".com"

	return Stakeholder{
		Name:        first + " " + last,
		Title:       pick(stakeholderTitles),
		Company:     c.Name,
		Email:       strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain,
		LinkedInURL: "https://www.linkedin.com/in/" + strings.ToLower(first) + "-" + strings.ToLower(last),
	}
}
