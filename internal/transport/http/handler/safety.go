package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/family-safety-api/internal/domain"
	"github.com/family-safety-api/internal/pkg/validate"
)

// SafetyEvaluator is the synchronous pipeline entry point the evaluate
// endpoint fronts for an out-of-process chat handler.
type SafetyEvaluator interface {
	EvaluateAndRecord(ctx context.Context, childID, text string) domain.SafetyVerdict
}

// SafetyHandler handles message evaluation requests.
type SafetyHandler struct {
	svc SafetyEvaluator
}

func NewSafetyHandler(svc SafetyEvaluator) *SafetyHandler { return &SafetyHandler{svc: svc} }

// Evaluate scores one message and responds with the verdict. Persistence and
// guardian notification happen behind the pipeline, detached from this
// request: the response is identical whether or not they succeed.
func (h *SafetyHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req domain.EvaluateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	verdict := h.svc.EvaluateAndRecord(r.Context(), req.ChildID, req.Message)
	writeJSON(w, http.StatusOK, verdict)
}
