// AngelaMos | 2026
// handler_test.go

package lead

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
	leads   []Lead
	created *Lead
	err     error
}

func (f *fakeRepository) List(_ context.Context) ([]Lead, error) {
	return f.leads, f.err
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.leads {
		if f.leads[i].ID == id {
			return &f.leads[i], nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, l *Lead) error {
	if f.err != nil {
		return f.err
	}
	l.ID = "8f7e6d5c-0000-0000-0000-000000000001"
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	f.created = l
	return nil
}

func (f *fakeRepository) Update(_ context.Context, l *Lead) error {
	if f.err != nil {
		return f.err
	}
	l.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	return f.err
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

func TestListLeadsRequiresAuth(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodGet, "/leads", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListLeads(t *testing.T) {
	company := "Acme"
	router := newTestRouter(&fakeRepository{
		leads: []Lead{
			{ID: "1", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com", Company: &company, Status: StatusNew},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/leads", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var leads []Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "Jane", leads[0].FirstName)
	require.NotNil(t, leads[0].Company)
	assert.Equal(t, "Acme", *leads[0].Company)
}

func TestListLeadsDatabaseDown(t *testing.T) {
	router := newTestRouter(&fakeRepository{
		err: fmt.Errorf("listing leads: %w", driver.ErrBadConn),
	})

	rec := doRequest(t, router, http.MethodGet, "/leads", "", true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAVAILABLE")
}

func TestCreateLeadDefaultsAndOwnership(t *testing.T) {
	repo := &fakeRepository{}
	router := newTestRouter(repo)

	body := `{"firstName":"Jane","lastName":"Doe","email":"Jane@Acme.com"}`
	rec := doRequest(t, router, http.MethodPost, "/leads", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusNew, resp.Status, "empty status should default")
	assert.Equal(t, "jane@acme.com", resp.Email)
	require.NotNil(t, resp.AssignedTo)
	assert.Equal(t, "user_1", *resp.AssignedTo, "lead belongs to the caller")
}

func TestCreateLeadMissingFields(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodPost, "/leads", `{"email":"x@y.com"}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "FirstName is required")
	assert.Contains(t, rec.Body.String(), "LastName is required")
}

func TestGetLeadNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodGet, "/leads/unknown", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateLeadPartial(t *testing.T) {
	router := newTestRouter(&fakeRepository{
		leads: []Lead{
			{ID: "1", FirstName: "Jane", LastName: "Doe", Email: "jane@acme.com", Status: StatusNew},
		},
	})

	rec := doRequest(t, router, http.MethodPatch, "/leads/1",
		`{"status":"qualified"}`, true)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, StatusQualified, resp.Status)
	assert.Equal(t, "Jane", resp.FirstName, "untouched fields survive")
}

func TestDeleteLead(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodDelete, "/leads/1", "", true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
