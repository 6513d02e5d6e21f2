package testleads

import (
	"fmt"
	"log"
)

// getTopLeads retrieves the top N served leads.
func getTopLeads(config *Config, stats *Stats) ([]Lead, error) {
	log.Printf("getting top %d leads", config.TopN)

	client := newHTTPClient(config.Timeout)
	url := fmt.Sprintf("%s/leads?limit=%d", config.BaseURL, config.TopN)

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != StatusOK {
		body, _ := readResponseBody(resp)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var leads []Lead
	if err := unmarshalJSON(body, &leads); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	stats.LeadsRetrieved = len(leads)
	log.Printf("retrieved %d leads", len(leads))

	return leads, nil
}

// getTierCounts retrieves the lead tier distribution.
func getTierCounts(config *Config, stats *Stats) (map[string]int, error) {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/tiers"

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode != StatusOK {
		body, _ := readResponseBody(resp)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	tiers := map[string]int{}
	if err := unmarshalJSON(body, &tiers); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	stats.TierCounts = tiers
	return tiers, nil
}
