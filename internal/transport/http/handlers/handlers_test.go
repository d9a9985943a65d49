package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovac/folio/internal/auth"
	"github.com/dkovac/folio/internal/repository/memory"
	"github.com/dkovac/folio/internal/service"
)

func newTestServer() *http.ServeMux {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	guard := auth.NewGuard(tokens)

	authService := service.NewAuthService(memory.NewUserRepo(), tokens)
	infoService := service.NewInfoService(memory.NewInfoRepo())
	skillService := service.NewSkillService(memory.NewSkillRepo())
	projectService := service.NewProjectService(memory.NewProjectRepo())

	authHandler := NewAuthHandler(authService, guard)
	infoHandler := NewInfoHandler(infoService, guard)
	skillHandler := NewSkillHandler(skillService, guard)
	projectHandler := NewProjectHandler(projectService, guard)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/admin/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/admin/auth/me", authHandler.Me)
	mux.HandleFunc("POST /api/admin/v1/skills", skillHandler.Create)
	mux.HandleFunc("GET /api/admin/v1/skills/{id}", skillHandler.Get)
	mux.HandleFunc("PUT /api/admin/v1/skills/{id}", skillHandler.Update)
	mux.HandleFunc("DELETE /api/admin/v1/skills/{id}", skillHandler.Delete)
	mux.HandleFunc("POST /api/admin/v1/projects", projectHandler.Create)
	mux.HandleFunc("PUT /api/admin/v1/info", infoHandler.Upsert)
	mux.HandleFunc("GET /api/v1/info", infoHandler.GetPublic)
	mux.HandleFunc("GET /api/v1/skills", skillHandler.ListPublic)
	return mux
}

func do(t *testing.T, mux *http.ServeMux, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, path, &buf)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(dst))
}

func login(t *testing.T, mux *http.ServeMux, email, password string) string {
	t.Helper()

	w := do(t, mux, "POST", "/api/admin/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterLoginSkillFlow(t *testing.T) {
	t.Parallel()

	mux := newTestServer()

	// Register, then a duplicate registration under a different password.
	w := do(t, mux, "POST", "/api/admin/auth/register", "", map[string]string{"email": "a@x.com", "password": "pw1"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(t, mux, "POST", "/api/admin/auth/register", "", map[string]string{"email": "a@x.com", "password": "pw2"})
	assert.Equal(t, http.StatusConflict, w.Code)

	tokenA := login(t, mux, "a@x.com", "pw1")

	// Create a skill as owner A.
	w = do(t, mux, "POST", "/api/admin/v1/skills", tokenA, map[string]string{"skill_name": "Go"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)

	// Publicly visible without auth.
	w = do(t, mux, "GET", "/api/v1/skills", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var skills []struct {
		SkillName string `json:"skill_name"`
	}
	decode(t, w, &skills)
	require.Len(t, skills, 1)
	assert.Equal(t, "Go", skills[0].SkillName)

	// A different owner's delete looks like the skill does not exist.
	w = do(t, mux, "POST", "/api/admin/auth/register", "", map[string]string{"email": "b@x.com", "password": "pw2"})
	require.Equal(t, http.StatusCreated, w.Code)
	tokenB := login(t, mux, "b@x.com", "pw2")

	w = do(t, mux, "DELETE", "/api/admin/v1/skills/"+created.ID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The real owner can delete; the second delete observes "gone".
	w = do(t, mux, "DELETE", "/api/admin/v1/skills/"+created.ID, tokenA, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, mux, "DELETE", "/api/admin/v1/skills/"+created.ID, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFailures(t *testing.T) {
	t.Parallel()

	mux := newTestServer()

	// No credential at all.
	w := do(t, mux, "POST", "/api/admin/v1/skills", "", map[string]string{"skill_name": "Go"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Credential present but invalid.
	w = do(t, mux, "POST", "/api/admin/v1/skills", "not-a-token", map[string]string{"skill_name": "Go"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong credentials at login.
	w = do(t, mux, "POST", "/api/admin/auth/login", "", map[string]string{"email": "a@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	t.Parallel()

	mux := newTestServer()

	w := do(t, mux, "POST", "/api/admin/auth/register", "", map[string]string{"email": "a@x.com", "password": "pw1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, mux, "a@x.com", "pw1")

	w = do(t, mux, "GET", "/api/admin/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	mux := newTestServer()

	w := do(t, mux, "POST", "/api/admin/auth/register", "", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, mux, "POST", "/api/admin/auth/register", "", map[string]string{"email": "a@x.com", "password": "pw1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, mux, "a@x.com", "pw1")

	// Skill without a name.
	w = do(t, mux, "POST", "/api/admin/v1/skills", token, map[string]string{"category": "backend"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Project with an empty technology list.
	w = do(t, mux, "POST", "/api/admin/v1/projects", token, map[string]any{
		"title":        "folio",
		"description":  "backend",
		"technologies": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Update with no recognized fields.
	w = do(t, mux, "POST", "/api/admin/v1/skills", token, map[string]string{"skill_name": "Go"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	w = do(t, mux, "PUT", "/api/admin/v1/skills/"+created.ID, token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInfoUpsertFlow(t *testing.T) {
	t.Parallel()

	mux := newTestServer()

	w := do(t, mux, "POST", "/api/admin/auth/register", "", map[string]string{"email": "a@x.com", "password": "pw1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, mux, "a@x.com", "pw1")

	// No row yet: public read yields an empty object.
	w = do(t, mux, "GET", "/api/v1/info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "{}", w.Body.String())

	// First PUT inserts.
	w = do(t, mux, "PUT", "/api/admin/v1/info", token, map[string]string{"name": "Dario"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second PUT with a different field updates the same row.
	w = do(t, mux, "PUT", "/api/admin/v1/info", token, map[string]string{"tagline": "backend engineer"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, mux, "GET", "/api/v1/info", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info struct {
		Name    *string `json:"name"`
		Tagline *string `json:"tagline"`
	}
	decode(t, w, &info)
	require.NotNil(t, info.Name)
	require.NotNil(t, info.Tagline)
	assert.Equal(t, "Dario", *info.Name)
	assert.Equal(t, "backend engineer", *info.Tagline)

	// Empty body is a validation failure, not a blank insert.
	w = do(t, mux, "PUT", "/api/admin/v1/info", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
