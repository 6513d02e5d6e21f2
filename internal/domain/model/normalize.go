package model

import (
	"strings"

	"github.com/google/uuid"
)

// Normalize turns a partially-optional raw batch into the fully-keyed form
// the rest of the pipeline expects: surrogate IDs are assigned where the
// caller supplied none, company names are trimmed, duplicate companies
// (same name, case-insensitive) are dropped keeping the first occurrence,
// and each stakeholder's CompanyID is resolved from its company name.
// After this step, name strings are display attributes only.
func Normalize(b Batch) Batch {
	out := Batch{
		BatchID:    strings.TrimSpace(b.BatchID),
		ReceivedAt: b.ReceivedAt,
	}
	if out.BatchID == "" {
		out.BatchID = uuid.NewString()
	}

	byName := make(map[string]string, len(b.Companies)) // normalized name -> company ID
	for _, c := range b.Companies {
		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			continue
		}
		key := strings.ToLower(c.Name)
		if _, dup := byName[key]; dup {
			continue
		}
		if strings.TrimSpace(c.ID) == "" {
			c.ID = uuid.NewString()
		}
		byName[key] = c.ID
		out.Companies = append(out.Companies, c)
	}

	for _, s := range b.Stakeholders {
		s.Name = strings.TrimSpace(s.Name)
		s.CompanyName = strings.TrimSpace(s.CompanyName)
		if s.Name == "" {
			continue
		}
		if strings.TrimSpace(s.ID) == "" {
			s.ID = uuid.NewString()
		}
		if s.CompanyID == "" {
			// Exact name match on the normalized key. A miss leaves
			// CompanyID empty; the score engines apply their fallback.
			s.CompanyID = byName[strings.ToLower(s.CompanyName)]
		}
		out.Stakeholders = append(out.Stakeholders, s)
	}

	return out
}
