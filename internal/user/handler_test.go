// AngelaMos | 2026
// handler_test.go

package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocitycrm/backend/internal/core"
	"github.com/velocitycrm/backend/internal/identity"
	"github.com/velocitycrm/backend/internal/middleware"
)

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

func TestListUsersRequiresAuth(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodGet, "/users", "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
}

func TestListUsers(t *testing.T) {
	router := newTestRouter(&fakeRepository{
		users: []User{
			{ID: "user_1", Email: "a@example.com", Role: RoleSales},
			{ID: "user_2", Email: "b@example.com", Role: RoleAdmin},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/users", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var users []Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "user_1", users[0].ID)
	assert.Equal(t, "b@example.com", users[1].Email)
}

func TestSyncUserCreated(t *testing.T) {
	repo := &fakeRepository{created: true}
	router := newTestRouter(repo)

	body := `{"id":"user_1","email":"jane@example.com","firstName":"Jane"}`
	rec := doRequest(t, router, http.MethodPost, "/users", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "user_1", resp.ID)
	assert.Equal(t, RoleSales, resp.Role)
}

func TestSyncUserUpdated(t *testing.T) {
	repo := &fakeRepository{created: false}
	router := newTestRouter(repo)

	body := `{"id":"user_1","email":"jane@example.com"}`
	rec := doRequest(t, router, http.MethodPost, "/users", body, true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSyncUserMissingEmail(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodPost, "/users", `{"id":"user_1"}`, true)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is required")
}

func TestSyncUserInvalidBody(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec := doRequest(t, router, http.MethodPost, "/users", "{not json", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncUserDuplicateEmail(t *testing.T) {
	router := newTestRouter(&fakeRepository{err: core.ErrDuplicateKey})

	body := `{"id":"user_3","email":"taken@example.com"}`
	rec := doRequest(t, router, http.MethodPost, "/users", body, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE")
}
