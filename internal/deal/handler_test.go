// AngelaMos | 2026
// handler_test.go

package deal

import (
	"context"
	"encoding/json"
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
	deals []Deal
	rows  []WithLead
	err   error
}

func (f *fakeRepository) List(_ context.Context) ([]WithLead, error) {
	return f.rows, f.err
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Deal, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.deals {
		if f.deals[i].ID == id {
			return &f.deals[i], nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) Create(_ context.Context, d *Deal) error {
	if f.err != nil {
		return f.err
	}
	d.ID = "3a1b2c3d-0000-0000-0000-000000000001"
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	return nil
}

func (f *fakeRepository) Update(_ context.Context, d *Deal) error {
	if f.err != nil {
		return f.err
	}
	d.UpdatedAt = time.Now()
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

func TestListDealsRequiresAuth(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodGet, "/deals", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListDealsIncludesLeadColumns(t *testing.T) {
	leadName := "Jane"
	leadCompany := "Acme"
	router := newTestRouter(&fakeRepository{
		rows: []WithLead{
			{
				Deal:        Deal{ID: "1", Title: "Enterprise license", Value: 250000, Stage: StageProposal},
				LeadName:    &leadName,
				LeadCompany: &leadCompany,
			},
			{
				Deal: Deal{ID: "2", Title: "Unlinked deal", Value: 500, Stage: StageProspecting},
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/deals", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var deals []ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deals))
	require.Len(t, deals, 2)

	require.NotNil(t, deals[0].LeadName)
	assert.Equal(t, "Jane", *deals[0].LeadName)
	assert.Equal(t, "Acme", *deals[0].LeadCompany)

	assert.Nil(t, deals[1].LeadName, "deal without a lead exposes null join columns")
	assert.Nil(t, deals[1].LeadEmail)
}

func TestCreateDealConvertsValueToCents(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	body := `{"title":"Enterprise license","value":100.5}`
	rec := doRequest(t, router, http.MethodPost, "/deals", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(10050), resp.Value)
	assert.Equal(t, StageProspecting, resp.Stage)
	require.NotNil(t, resp.AssignedTo)
	assert.Equal(t, "user_1", *resp.AssignedTo)
}

func TestCreateDealZeroValueAccepted(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	body := `{"title":"Pilot","value":0}`
	rec := doRequest(t, router, http.MethodPost, "/deals", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(0), resp.Value)
}

func TestCreateDealMissingValue(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodPost, "/deals", `{"title":"Pilot"}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Value is required")
}

func TestCreateDealProbabilityOutOfRange(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	body := `{"title":"Pilot","value":10,"probability":150}`
	rec := doRequest(t, router, http.MethodPost, "/deals", body, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDealNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodGet, "/deals/unknown", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
