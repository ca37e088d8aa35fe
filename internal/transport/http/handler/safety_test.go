package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/family-safety-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSafetySvc struct{ mock.Mock }

func (m *mockSafetySvc) EvaluateAndRecord(ctx context.Context, childID, text string) domain.SafetyVerdict {
	args := m.Called(ctx, childID, text)
	return args.Get(0).(domain.SafetyVerdict)
}

func evaluateRequest(t *testing.T, body interface{}) *http.Request {
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/v1/safety/evaluations", bytes.NewReader(b))
}

func TestEvaluate_ReturnsVerdict(t *testing.T) {
	svc := &mockSafetySvc{}
	svc.On("EvaluateAndRecord", mock.Anything, "child-1", "he had beer and a gun").
		Return(domain.SafetyVerdict{
			Score:         50,
			IsAppropriate: false,
			Severity:      domain.SeverityMedium,
			Reasons:       []string{"references to violence", "references to substances"},
		})

	h := NewSafetyHandler(svc)
	req := evaluateRequest(t, domain.EvaluateMessageRequest{ChildID: "child-1", Message: "he had beer and a gun"})
	rr := httptest.NewRecorder()
	h.Evaluate(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var v domain.SafetyVerdict
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	assert.Equal(t, 50, v.Score)
	assert.False(t, v.IsAppropriate)
	assert.Equal(t, domain.SeverityMedium, v.Severity)
	assert.Len(t, v.Reasons, 2)
	svc.AssertExpectations(t)
}

func TestEvaluate_InvalidBody(t *testing.T) {
	svc := &mockSafetySvc{}
	h := NewSafetyHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/safety/evaluations", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	h.Evaluate(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "EvaluateAndRecord", mock.Anything, mock.Anything, mock.Anything)
}

func TestEvaluate_MissingChildID(t *testing.T) {
	svc := &mockSafetySvc{}
	h := NewSafetyHandler(svc)

	req := evaluateRequest(t, domain.EvaluateMessageRequest{Message: "hello"})
	rr := httptest.NewRecorder()
	h.Evaluate(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "EvaluateAndRecord", mock.Anything, mock.Anything, mock.Anything)
}
