package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsJSONHeaders(t *testing.T) {
	var gotAccept, gotContentType, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(identityEnvelope{User: &Identity{ID: "u1", Role: RolePatient}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestClientExtractsBackendErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "wrongpass"})
	require.Error(t, err)

	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid credentials", ErrorMessage(err, "Unable to login. Please try again."))
}

func TestClientFallsBackWhenErrorBodyIsNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Me(context.Background())
	require.Error(t, err)

	assert.Equal(t, "Unable to login. Please try again.", ErrorMessage(err, "Unable to login. Please try again."))
}

func TestUnauthorizedHookFiresOnSessionLoss(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Session expired"})
	}))
	defer server.Close()

	var fired atomic.Int32
	client := NewClient(server.URL, WithOnUnauthorized(func() { fired.Add(1) }))

	_, err := client.PatientDashboard(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), fired.Load())
}

func TestUnauthorizedHookSkipsAuthEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer server.Close()

	var fired atomic.Int32
	client := NewClient(server.URL, WithOnUnauthorized(func() { fired.Add(1) }))

	// A failed sign-in or sign-up must not count as session loss.
	_, err := client.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "wrongpass"})
	require.Error(t, err)
	_, err = client.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Password: "secret123", Role: RolePatient,
	})
	require.Error(t, err)

	assert.Equal(t, int32(0), fired.Load())
}

func TestClientCarriesSessionCookie(t *testing.T) {
	var sawCookie atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
			json.NewEncoder(w).Encode(identityEnvelope{User: &Identity{ID: "u1", Role: RolePatient}})
		default:
			if c, err := r.Cookie("session"); err == nil && c.Value == "abc123" {
				sawCookie.Store(true)
			}
			json.NewEncoder(w).Encode(identityEnvelope{User: &Identity{ID: "u1", Role: RolePatient}})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = client.Me(context.Background())
	require.NoError(t, err)
	assert.True(t, sawCookie.Load())
}

func TestClientValidatesInputBeforeWire(t *testing.T) {
	// No server: validation failures must short-circuit before any request.
	client := NewClient("http://127.0.0.1:0")

	_, err := client.Login(context.Background(), LoginInput{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = client.Register(context.Background(), RegisterInput{
		Name: "Doc", Email: "d@example.com", Password: "secret123", Role: RoleDoctor,
	})
	assert.Error(t, err, "doctor registration requires a specialization")

	err = client.BookAppointment(context.Background(), BookingInput{
		DiseaseCategory: "General",
		Symptoms:        "cough",
		PreferredDate:   "2026-09-01",
		PreferredStart:  "11:00",
		PreferredEnd:    "10:00",
	})
	assert.Error(t, err, "preferred start must precede end")
}

func TestRegisterDefaultsToPatientRole(t *testing.T) {
	var gotRole string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotRole, _ = body["role"].(string)
		json.NewEncoder(w).Encode(identityEnvelope{User: &Identity{ID: "u1", Role: RolePatient}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@example.com", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "patient", gotRole)
}

func TestMatchesCategory(t *testing.T) {
	cardio := Doctor{Profile: DoctorProfile{Specialization: "Cardiologist"}}
	ortho := Doctor{Profile: DoctorProfile{Specialization: "Orthopedic Surgeon"}}

	assert.True(t, MatchesCategory(cardio, "Cardiology"))
	assert.False(t, MatchesCategory(cardio, "Orthopedics"))
	assert.True(t, MatchesCategory(ortho, "Orthopedics"))
	// General admits every doctor.
	assert.True(t, MatchesCategory(cardio, "General"))
	assert.True(t, MatchesCategory(ortho, "general"))
	assert.False(t, MatchesCategory(cardio, ""))
}
