package testleads

import (
	"fmt"
	"log"
)

// verifyResults checks the served leads and tier distribution for
// consistency.
func verifyResults(config *Config, leads []Lead, tiers map[string]int, stats *Stats) error {
	log.Println("verifying results")

	if len(leads) == 0 {
		return fmt.Errorf("no leads to verify")
	}

	// Leads must be sorted by score descending.
	for i := 1; i < len(leads); i++ {
		if leads[i].LeadScore > leads[i-1].LeadScore {
			return fmt.Errorf("leads not properly sorted: entry %d has higher score than entry %d", i, i-1)
		}
	}

	// Tier counts must cover at least the served leads.
	total := 0
	for _, n := range tiers {
		total += n
	}
	if total < len(leads) {
		return fmt.Errorf("tier counts (%d) cover fewer leads than served (%d)", total, len(leads))
	}

	displayTopLeads(leads, config.Verbose)

	log.Println("result verification completed")
	return nil
}

// displayTopLeads shows the top served leads.
func displayTopLeads(leads []Lead, verbose bool) {
	topN := 10
	if len(leads) < topN {
		topN = len(leads)
	}

	log.Printf("top %d leads:", topN)
	for i := 0; i < topN; i++ {
		lead := leads[i]
		log.Printf("   %d. %s (%s) - Score: %.2f [%s]", i+1, lead.Name, lead.Company, lead.LeadScore, lead.Tier)
	}

	if verbose && len(leads) > 0 {
		avg := 0.0
		for _, lead := range leads {
			avg += lead.LeadScore
		}
		avg /= float64(len(leads))

		log.Printf(`score statistics:
   Average: %.2f
   Maximum: %.2f
   Minimum: %.2f
`, avg, leads[0].LeadScore, leads[len(leads)-1].LeadScore)
	}
}
