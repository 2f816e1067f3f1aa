package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jrsteele09/go-credential-service/accounts"
	"github.com/jrsteele09/go-credential-service/accounts/repofake"
	"github.com/jrsteele09/go-credential-service/server"
	"github.com/jrsteele09/go-credential-service/token"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// testConfig satisfies config.Config with test-friendly values.
type testConfig struct{}

func (testConfig) GetPort() string            { return ":0" }
func (testConfig) GetAppName() string         { return "Credential Service Test" }
func (testConfig) GetEnv() string             { return "TEST" }
func (testConfig) GetDatabaseDSN() string     { return "" }
func (testConfig) GetTokenSecret() string     { return testSecret }
func (testConfig) GetTokenTTL() time.Duration { return time.Hour }
func (testConfig) GetHashCost() int           { return accounts.MinHashCost }

func setupTestServer(t *testing.T) *server.Server {
	t.Helper()

	s, err := server.New(testConfig{}, repofake.NewFakeAccountRepo())
	require.NoError(t, err)
	return s
}

func postJSON(t *testing.T, s *server.Server, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	body := map[string]string{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegisterHandler(t *testing.T) {
	registration := map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "Secret123",
	}

	t.Run("successful registration", func(t *testing.T) {
		s := setupTestServer(t)

		rec := postJSON(t, s, server.RouteRegister, registration)
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		require.NotEmpty(t, body["user_id"])
		require.Equal(t, "alice", body["username"])
		require.NotContains(t, rec.Body.String(), "Secret123")
		require.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("validation failure", func(t *testing.T) {
		s := setupTestServer(t)

		rec := postJSON(t, s, server.RouteRegister, map[string]string{
			"username": "alice",
			"email":    "not-an-email",
			"password": "Secret123",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, decodeBody(t, rec)["error"], "valid email")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		s := setupTestServer(t)
		require.Equal(t, http.StatusOK, postJSON(t, s, server.RouteRegister, registration).Code)

		rec := postJSON(t, s, server.RouteRegister, map[string]string{
			"username": "bob",
			"email":    "a@x.com",
			"password": "Secret123",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Contains(t, decodeBody(t, rec)["error"], "a@x.com")
	})

	t.Run("malformed body", func(t *testing.T) {
		s := setupTestServer(t)

		req := httptest.NewRequest(http.MethodPost, server.RouteRegister, strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	registration := map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "Secret123",
	}

	t.Run("successful login issues verifiable token", func(t *testing.T) {
		s := setupTestServer(t)
		registered := decodeBody(t, postJSON(t, s, server.RouteRegister, registration))

		rec := postJSON(t, s, server.RouteLogin, map[string]string{
			"username": "alice",
			"password": "Secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		header := rec.Header().Get(server.AuthTokenHeader)
		require.True(t, strings.HasPrefix(header, "Bearer "))
		rawToken := strings.TrimPrefix(header, "Bearer ")

		// Body carries the same token for legacy clients
		require.Equal(t, rawToken, decodeBody(t, rec)["token"])

		issuer, err := token.NewIssuer(token.NewHMACSigner(testSecret), time.Hour)
		require.NoError(t, err)
		accountID, err := issuer.Verify(rawToken)
		require.NoError(t, err)
		require.Equal(t, registered["user_id"], accountID)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		s := setupTestServer(t)
		postJSON(t, s, server.RouteRegister, registration)

		wrongPassword := postJSON(t, s, server.RouteLogin, map[string]string{
			"username": "alice",
			"password": "wrong",
		})
		unknownUser := postJSON(t, s, server.RouteLogin, map[string]string{
			"username": "nobody",
			"password": "Secret123",
		})

		require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		require.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
		require.Empty(t, wrongPassword.Header().Get(server.AuthTokenHeader))
	})

	t.Run("validation failure", func(t *testing.T) {
		s := setupTestServer(t)

		rec := postJSON(t, s, server.RouteLogin, map[string]string{"username": "alice"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, server.RouteHealth, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
