package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeAction(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ActionResponse {
	var body domainerrors.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAction_Success(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Action(c, map[string]int64{"affected": 3}, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeAction(t, rec)
	assert.True(t, body.Success)
	assert.Empty(t, body.Error)
	assert.Equal(t, map[string]any{"affected": float64(3)}, body.Data)
}

func TestAction_DomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "conflict keeps the domain message",
			err:        errors.Wrap(domainerrors.ErrTransactionNotApprovable, "failed to approve transaction"),
			wantStatus: http.StatusConflict,
			wantError:  "Transaction cannot be approved",
		},
		{
			name:       "validation shows its context",
			err:        domainerrors.ErrInvalidDeleteRequest.WrapMessage("single scope requires exactly one id"),
			wantStatus: http.StatusBadRequest,
			wantError:  "single scope requires exactly one id",
		},
		{
			name:       "lookup miss",
			err:        domainerrors.ErrCancelledStatusNotFound,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Cancelled status not found",
		},
		{
			name:       "self deletion",
			err:        domainerrors.ErrSelfDeletion,
			wantStatus: http.StatusBadRequest,
			wantError:  "You cannot delete your own account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Action(c, nil, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeAction(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestAction_UnknownErrorPropagates(t *testing.T) {
	c, rec := newContext()

	err := Action(c, nil, errors.New("connection refused"))
	require.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestError_HidesDetailsOnServerErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "boom", "stack"))

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Error.Details)
	assert.NotEmpty(t, body.Meta.RequestID)
}
