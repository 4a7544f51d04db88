package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tolujohn-backend-go/internal/config"
	"tolujohn-backend-go/internal/models"
	"tolujohn-backend-go/internal/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type harness struct {
	server  *Server
	store   *memStore
	handler http.Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	st := newMemStore()
	cfg := config.Config{
		MongoDatabase: "test",
		JWTSecret:     "test-secret",
		JWTTTLSeconds: 3600,
		Env:           "test",
	}
	srv := NewServer(st, cfg, zerolog.Nop())
	return &harness{server: srv, store: st, handler: srv.Router()}
}

// responseEnvelope keeps data raw so each test decodes into its own type.
type responseEnvelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Message string                `json:"message"`
	Errors  []services.FieldError `json:"errors"`
}

func (h *harness) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	var env responseEnvelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func decodeData(t *testing.T, env responseEnvelope, out any) {
	t.Helper()
	require.NotEmpty(t, env.Data, "response has no data")
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func (h *harness) createAdmin(t *testing.T, email, password string) *models.Admin {
	t.Helper()
	hashed, err := h.server.Tokens.HashPassword(password)
	require.NoError(t, err)
	admin := models.Admin{
		Name:     "Test Admin",
		Email:    email,
		Password: hashed,
		Role:     models.RoleSuperadmin,
	}
	require.NoError(t, h.store.InsertAdmin(context.Background(), &admin))
	return &admin
}

// adminToken issues a token directly, skipping the login endpoint and the
// bcrypt round it would cost every test.
func (h *harness) adminToken(t *testing.T) string {
	t.Helper()
	admin := models.Admin{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: "not-a-real-hash",
		Role:     models.RoleSuperadmin,
	}
	require.NoError(t, h.store.InsertAdmin(context.Background(), &admin))
	token, err := h.server.Tokens.IssueToken(admin.ID.Hex())
	require.NoError(t, err)
	return token
}

func fieldNames(errs []services.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}
