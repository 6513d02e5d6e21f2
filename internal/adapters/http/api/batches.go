// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/okian/prospect/internal/domain/dedupe"
	"github.com/okian/prospect/internal/domain/model"
)

// BatchDependencies defines the interface for batch ingestion
// dependencies.
type BatchDependencies interface {
	dedupe.Deduper
	Enqueue(ctx context.Context, b model.Batch) bool
}

// BatchesHandler handles batch submissions.
type BatchesHandler struct {
	deps BatchDependencies
}

// NewBatchesHandler creates a new batches handler.
func NewBatchesHandler(deps BatchDependencies) *BatchesHandler {
	return &BatchesHandler{deps: deps}
}

// HandlePostBatch handles POST /batches requests.
func (h *BatchesHandler) HandlePostBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_batch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	b := req.toModel()
	if b.BatchID == "" {
		// Caller supplied no ID; assign one so the ack is traceable.
		// Unkeyed submissions cannot be deduplicated across retries.
		b.BatchID = uuid.NewString()
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), b.BatchID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", BatchID: b.BatchID, Duplicate: true})
		return
	}

	// Try to enqueue for async processing
	if ok := h.deps.Enqueue(r.Context(), b); !ok {
		// Rollback the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), b.BatchID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", BatchID: b.BatchID, Duplicate: false})
}
