package hbclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahesh-Koilapu/hbctl/internal/session"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

func TestScreenCommand(t *testing.T) {
	assert.Equal(t, "hbctl admin", ScreenCommand("/admin"))
	assert.Equal(t, "hbctl admin doctors", ScreenCommand("/admin/doctors"))
	assert.Equal(t, "hbctl patient", ScreenCommand("/patient"))
	assert.Equal(t, "hbctl", ScreenCommand("/"))
}

func authServer(t *testing.T, identity *sdk.Identity) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			http.NotFound(w, r)
			return
		}
		if identity == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not authenticated"})
			return
		}
		json.NewEncoder(w).Encode(map[string]*sdk.Identity{"user": identity})
	}))
}

func TestGateAdmitsMatchingRole(t *testing.T) {
	server := authServer(t, &sdk.Identity{ID: "u1", Name: "Alice", Role: sdk.RoleAdmin})
	defer server.Close()

	provider := NewProvider(server.URL, t.TempDir(), zerolog.Nop())
	client, err := provider.Gate(context.Background(), "/admin", sdk.RoleAdmin)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestGateRecordsReturnScreenWhenSignedOut(t *testing.T) {
	server := authServer(t, nil)
	defer server.Close()

	dir := t.TempDir()
	provider := NewProvider(server.URL, dir, zerolog.Nop())

	_, err := provider.Gate(context.Background(), "/doctor/appointments", sdk.RoleDoctor)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSignedIn)

	rc, err := session.ReadReturnTo(dir)
	require.NoError(t, err)
	require.NotNil(t, rc)
	assert.Equal(t, "/doctor/appointments", rc.Screen)
}

func TestGateBouncesWrongRoleHome(t *testing.T) {
	server := authServer(t, &sdk.Identity{ID: "u1", Name: "Pat", Role: sdk.RolePatient})
	defer server.Close()

	provider := NewProvider(server.URL, t.TempDir(), zerolog.Nop())

	_, err := provider.Gate(context.Background(), "/admin", sdk.RoleAdmin)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotSignedIn)
	assert.Contains(t, err.Error(), "hbctl patient")
}
