// AngelaMos | 2026
// handler_test.go

package activity

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocitycrm/backend/internal/core"
	"github.com/velocitycrm/backend/internal/identity"
	"github.com/velocitycrm/backend/internal/middleware"
)

type fakeRepository struct {
	activities []Activity
	err        error
}

func (f *fakeRepository) List(_ context.Context) ([]Activity, error) {
	return f.activities, f.err
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.activities {
		if f.activities[i].ID == id {
			return &f.activities[i], nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, a *Activity) error {
	if f.err != nil {
		return f.err
	}
	a.ID = "5e4d3c2b-0000-0000-0000-000000000001"
	a.CreatedAt = time.Now()
	return nil
}

func newTestRouter(repo Repository) chi.Router {
	verifier := identity.NewStaticVerifier(map[string]string{
		"token-1": "user_1",
	})
	authenticator := middleware.Authenticator(verifier)

	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r, authenticator)
	return r
}

func doRequest(
	t *testing.T,
	router chi.Router,
	method, path, body string,
	authed bool,
) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authed {
		req.Header.Set("Authorization", "Bearer token-1")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListActivitiesRequiresAuth(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodGet, "/activities", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListActivities(t *testing.T) {
	router := newTestRouter(&fakeRepository{
		activities: []Activity{
			{ID: "1", Type: TypeCall, Subject: "Intro call"},
			{ID: "2", Type: TypeNote, Subject: "Follow-up notes"},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/activities", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var activities []Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	require.Len(t, activities, 2)
	assert.Equal(t, TypeCall, activities[0].Type)
}

func TestListActivitiesDatabaseDown(t *testing.T) {
	router := newTestRouter(&fakeRepository{
		err: fmt.Errorf("listing activities: %w", driver.ErrBadConn),
	})

	rec := doRequest(t, router, http.MethodGet, "/activities", "", true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateActivityStampsCaller(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	body := `{"type":"call","subject":"Intro call"}`
	rec := doRequest(t, router, http.MethodPost, "/activities", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.UserID)
	assert.Equal(t, "user_1", *resp.UserID, "activity is attributed to the caller")
	assert.False(t, resp.CreatedAt.IsZero())
}

func TestCreateActivityMissingFields(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodPost, "/activities", `{}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Type is required")
	assert.Contains(t, rec.Body.String(), "Subject is required")
}
