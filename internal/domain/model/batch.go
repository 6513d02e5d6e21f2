package model

import "time"

// Batch is one raw input table pair handed over by the collection stage.
// Every pipeline run recomputes from a whole batch; there is no
// incremental scoring.
type Batch struct {
	BatchID      string        `json:"batch_id"`
	Companies    []Company     `json:"companies"`
	Stakeholders []Stakeholder `json:"stakeholders"`
	ReceivedAt   time.Time     `json:"received_at,omitempty"`
}

// Result is the output of one full pipeline run over a batch: the scored
// company and stakeholder tables plus the assembled, ranked lead table.
type Result struct {
	BatchID      string        `json:"batch_id"`
	Companies    []Company     `json:"companies"`
	Stakeholders []Stakeholder `json:"stakeholders"`
	Leads        []Lead        `json:"leads"`
	ProcessedAt  time.Time     `json:"processed_at"`
}
