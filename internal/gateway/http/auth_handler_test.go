package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/rest"
	"github.com/fjod/go_storefront/internal/session"
)

func authBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newAuthHandler(store *session.Store, backendURL string) *AuthHandler {
	client := rest.NewClientWithHTTP(store, &http.Client{})
	return NewAuthHandler(rest.NewAuthClient(client, backendURL), store)
}

func TestAuthLogin_InstallsToken(t *testing.T) {
	backend := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc","token_type":"bearer"}`))
	})

	store := session.NewStore()
	handler := newAuthHandler(store, backend.URL)

	recorder := httptest.NewRecorder()
	body := `{"username":"ana@example.com","password":"secret"}`
	handler.Login(recorder, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "tok-abc", store.Token())
	assert.Equal(t, "ana@example.com", store.Email())
}

func TestAuthLogin_NonEmailUsernameLeavesEmailEmpty(t *testing.T) {
	backend := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc"}`))
	})

	store := session.NewStore()
	handler := newAuthHandler(store, backend.URL)

	recorder := httptest.NewRecorder()
	body := `{"username":"ana","password":"secret"}`
	handler.Login(recorder, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "tok-abc", store.Token())
	assert.Empty(t, store.Email())
}

func TestAuthLogin_BadCredentials(t *testing.T) {
	backend := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
	})

	store := session.NewStore()
	handler := newAuthHandler(store, backend.URL)

	recorder := httptest.NewRecorder()
	body := `{"username":"ana","password":"wrong"}`
	handler.Login(recorder, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, store.Token())
}

func TestAuthLogin_MissingFields(t *testing.T) {
	handler := newAuthHandler(session.NewStore(), "http://unused")

	recorder := httptest.NewRecorder()
	handler.Login(recorder, httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":""}`)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAuthRegister_Success(t *testing.T) {
	backend := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	})

	handler := newAuthHandler(session.NewStore(), backend.URL)

	recorder := httptest.NewRecorder()
	body := `{"username":"ana","password":"secret"}`
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestAuthRegister_UsernameTaken(t *testing.T) {
	backend := authBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"Username already registered"}`))
	})

	handler := newAuthHandler(session.NewStore(), backend.URL)

	recorder := httptest.NewRecorder()
	body := `{"username":"ana","password":"secret"}`
	handler.Register(recorder, httptest.NewRequest("POST", "/auth/register", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "Username already registered", response.Error)
}

func TestAuthLogoutAndSession(t *testing.T) {
	store := session.NewStore()
	store.Set("tok-abc", "ana@example.com")
	handler := newAuthHandler(store, "http://unused")

	recorder := httptest.NewRecorder()
	handler.Session(recorder, httptest.NewRequest("GET", "/auth/session", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var state sessionResponseDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&state))
	assert.True(t, state.Authenticated)
	assert.Equal(t, "ana@example.com", state.Email)

	recorder = httptest.NewRecorder()
	handler.Logout(recorder, httptest.NewRequest("POST", "/auth/logout", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, store.Token())
}
