package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autobid/internal/delivery/api/validator"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	mockUsecase "autobid/internal/mocks/usecase"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds an echo context with the validator installed and the caller signed in.
func newContext(method, target, body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("adminID", uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	c.Set("adminRole", entity.AdminRoleSuperAdmin)

	return c, rec
}

func decodeAction(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.ActionResponse {
	t.Helper()

	var res domainerrors.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res
}

func TestListingHandler_DeleteListings(t *testing.T) {
	listingID := uuid.New()

	t.Run("forwards scope and type", func(t *testing.T) {
		listingUC := mockUsecase.NewMockListingUsecase(t)
		listingUC.EXPECT().
			DeleteListings(mock.Anything, entity.DeleteRequest{
				Scope: entity.ScopeSelected,
				Type:  entity.DeleteHard,
				IDs:   []uuid.UUID{listingID},
			}).
			Return(&usecase.LifecycleResult{Affected: 1}, nil).
			Once()
		h := NewListingHandler(ListingHandlerParams{ListingUC: listingUC, Logger: newDiscardLogger()})

		c, rec := newContext(http.MethodPost, "/api/v1/admin/listings/delete",
			`{"scope":"selected","type":"hard","ids":["`+listingID.String()+`"]}`, echo.MIMEApplicationJSON)

		require.NoError(t, h.DeleteListings(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"data":{"affected":1}}`, rec.Body.String())
	})

	t.Run("invalid scope reports the reason", func(t *testing.T) {
		listingUC := mockUsecase.NewMockListingUsecase(t)
		listingUC.EXPECT().
			DeleteListings(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidDeleteRequest.WrapMessage("single scope requires exactly one id"), "failed to delete listings")).
			Once()
		h := NewListingHandler(ListingHandlerParams{ListingUC: listingUC, Logger: newDiscardLogger()})

		c, rec := newContext(http.MethodPost, "/api/v1/admin/listings/delete",
			`{"scope":"single","type":"soft","ids":[]}`, echo.MIMEApplicationJSON)

		require.NoError(t, h.DeleteListings(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		res := decodeAction(t, rec)
		assert.False(t, res.Success)
		assert.Equal(t, "single scope requires exactly one id", res.Error)
	})

	t.Run("missing scope fails validation", func(t *testing.T) {
		h := NewListingHandler(ListingHandlerParams{ListingUC: mockUsecase.NewMockListingUsecase(t), Logger: newDiscardLogger()})

		c, _ := newContext(http.MethodPost, "/api/v1/admin/listings/delete", `{"type":"soft"}`, echo.MIMEApplicationJSON)

		err := h.DeleteListings(c)
		require.Error(t, err)
		assert.Contains(t, validator.FieldErrors(err), "scope")
	})
}

func TestUserHandler_ToggleUserFlag(t *testing.T) {
	userID := uuid.New()
	userUC := mockUsecase.NewMockUserUsecase(t)
	userUC.EXPECT().
		ToggleUserFlag(mock.Anything, userID, entity.UserFlag("is_verified"), true).
		Return(nil).
		Once()
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	c, rec := newContext(http.MethodPut, "/", `{"value":true}`, echo.MIMEApplicationJSON)
	c.SetParamNames("id", "flag")
	c.SetParamValues(userID.String(), "is_verified")

	require.NoError(t, h.ToggleUserFlag(c))
	assert.JSONEq(t, `{"success":true,"data":{"is_verified":true}}`, rec.Body.String())
}

func TestTransactionHandler_ApproveTransaction(t *testing.T) {
	txID := uuid.New()

	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
	}{
		{name: "approved", wantCode: http.StatusOK},
		{
			name:      "gate closed",
			err:       errors.Wrap(domainerrors.ErrTransactionNotApprovable, "failed to approve transaction"),
			wantCode:  http.StatusConflict,
			wantError: "Transaction cannot be approved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactionUC := mockUsecase.NewMockTransactionUsecase(t)
			transactionUC.EXPECT().
				ApproveTransaction(mock.Anything, uuid.MustParse("11111111-1111-1111-1111-111111111111"), txID, mock.Anything).
				Return(tt.err).
				Once()
			h := NewTransactionHandler(TransactionHandlerParams{TransactionUC: transactionUC, Logger: newDiscardLogger()})

			c, rec := newContext(http.MethodPost, "/", `{"notes":"docs complete"}`, echo.MIMEApplicationJSON)
			c.SetParamNames("id")
			c.SetParamValues(txID.String())

			require.NoError(t, h.ApproveTransaction(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			res := decodeAction(t, rec)
			assert.Equal(t, tt.err == nil, res.Success)
			assert.Equal(t, tt.wantError, res.Error)
		})
	}
}

func TestLocationHandler_ImportLocations(t *testing.T) {
	t.Run("raw csv body", func(t *testing.T) {
		locationUC := mockUsecase.NewMockLocationUsecase(t)
		locationUC.EXPECT().
			ImportLocations(mock.Anything, mock.MatchedBy(func(rows []entity.LocationRow) bool {
				return len(rows) == 2 && rows[0].Barangay == "Lahug"
			})).
			Return(&entity.ImportSummary{SuccessCount: 2, Errors: []string{}}, nil).
			Once()
		h := NewLocationHandler(LocationHandlerParams{LocationUC: locationUC})

		c, rec := newContext(http.MethodPost, "/api/v1/admin/locations/import",
			"region,province,city,barangay\nRegion VII,Cebu,Cebu City,Lahug\nRegion VII,Cebu,Mandaue,Banilad\n", "text/csv")

		require.NoError(t, h.ImportLocations(c))
		assert.JSONEq(t, `{"success":true,"data":{"success_count":2,"errors":[]}}`, rec.Body.String())
	})

	t.Run("headerless body keeps first row", func(t *testing.T) {
		locationUC := mockUsecase.NewMockLocationUsecase(t)
		locationUC.EXPECT().
			ImportLocations(mock.Anything, []entity.LocationRow{
				{Region: "Region A", Province: "Prov A", City: "City A", Barangay: "Brgy 1"},
			}).
			Return(&entity.ImportSummary{SuccessCount: 1, Errors: []string{}}, nil).
			Once()
		h := NewLocationHandler(LocationHandlerParams{LocationUC: locationUC})

		c, rec := newContext(http.MethodPost, "/api/v1/admin/locations/import", "Region A,Prov A,City A,Brgy 1\n", "text/csv")

		require.NoError(t, h.ImportLocations(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decodeAction(t, rec).Success)
	})

	t.Run("no rows", func(t *testing.T) {
		h := NewLocationHandler(LocationHandlerParams{LocationUC: mockUsecase.NewMockLocationUsecase(t)})

		c, rec := newContext(http.MethodPost, "/api/v1/admin/locations/import", "region,province,city,barangay\n", "text/csv")

		require.NoError(t, h.ImportLocations(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "no location rows found", decodeAction(t, rec).Error)
	})
}
