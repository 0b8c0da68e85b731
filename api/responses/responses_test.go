package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
	"github.com/angelmondragon/shopdesk/pkg/logger"
	"github.com/angelmondragon/shopdesk/pkg/types"
)

func TestWriteSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccess(w, map[string]string{"hello": "world"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "world", body.Data.(map[string]any)["hello"])
	assert.Empty(t, body.Warnings)
}

func TestWriteSuccessWithWarnings(t *testing.T) {
	w := httptest.NewRecorder()
	WriteSuccessWithWarnings(w, map[string]string{"order_id": "ORD001"}, "Order ORD001 has already been shipped")

	require.Equal(t, http.StatusOK, w.Code)
	var body types.SuccessEnvelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []string{"Order ORD001 has already been shipped"}, body.Warnings)
}

func TestWriteErrorMapsTypedError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
		details bool
	}{
		{"validation", pkgerrors.New(pkgerrors.CodeValidation, "bad input").WithDetails(map[string]string{"field": "action"}), http.StatusBadRequest, "bad input", true},
		{"not found", pkgerrors.New(pkgerrors.CodeNotFound, "order 'ORD9' not found"), http.StatusNotFound, "order 'ORD9' not found", false},
		{"state conflict", pkgerrors.New(pkgerrors.CodeStateConflict, "cannot cancel"), http.StatusUnprocessableEntity, "cannot cancel", false},
		{"empty result", pkgerrors.New(pkgerrors.CodeEmptyResult, "no products"), http.StatusNotFound, "no products", false},
		{"rate limited", pkgerrors.New(pkgerrors.CodeRateLimit, "slow down"), http.StatusTooManyRequests, "rate limit exceeded", false},
		{"dependency", pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("disk"), "load order"), http.StatusServiceUnavailable, "dependency unavailable", false},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "internal server error", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(context.Background(), logger.Nop(), w, tc.err)

			require.Equal(t, tc.status, w.Code)
			var body types.ErrorEnvelope
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tc.message, body.Error.Message)
			if tc.details {
				assert.NotNil(t, body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestWriteErrorNil(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(context.Background(), nil, w, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
