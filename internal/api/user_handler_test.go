package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"homestore-backend-go/internal/core"
	"homestore-backend-go/internal/models"
)

func TestEnsureUser_CreatedVersusExisting(t *testing.T) {
	router, svcs := newTestRouter(t)
	user := &models.User{ID: "uid-1", Email: "a@example.com"}
	svcs.user.On("EnsureProfile", mock.Anything, "uid-1", "a@example.com", "").
		Return(user, true, nil).Once()
	svcs.user.On("EnsureProfile", mock.Anything, "uid-1", "a@example.com", "").
		Return(user, false, nil).Once()

	body := `{"uid":"uid-1","email":"a@example.com"}`
	first := perform(router, postJSON("/api/users", body))
	second := perform(router, postJSON("/api/users", body))

	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	svcs.user.AssertExpectations(t)
}

func TestEnsureUser_MissingFields(t *testing.T) {
	router, svcs := newTestRouter(t)

	rec := perform(router, postJSON("/api/users", `{"uid":"uid-1"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MISSING_FIELDS", env.Error.Code)
	svcs.user.AssertNotCalled(t, "EnsureProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetProfile_Success(t *testing.T) {
	router, svcs := newTestRouter(t)
	svcs.authorize("uid-1")
	svcs.user.On("GetByID", mock.Anything, "uid-1").
		Return(&models.User{ID: "uid-1", Email: "uid-1@example.com", DisplayName: "Alice"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := perform(router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"displayName":"Alice"`)
}

func TestGetProfile_Missing(t *testing.T) {
	router, svcs := newTestRouter(t)
	svcs.authorize("uid-1")
	svcs.user.On("GetByID", mock.Anything, "uid-1").
		Return(nil, fmt.Errorf("%w: uid 'uid-1'", core.ErrUserProfileNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := perform(router, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USER_PROFILE_NOT_FOUND", env.Error.Code)
}
