package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

func identityWithRole(role sdk.Role) *sdk.Identity {
	return &sdk.Identity{ID: "u1", Name: "Test User", Email: "user@example.com", Role: role}
}

func TestEvaluateWhileResolving(t *testing.T) {
	// Resolving always wins, even with a cached identity present.
	result := Evaluate(State{Identity: identityWithRole(sdk.RoleAdmin), Resolving: true}, nil, "/admin")
	assert.Equal(t, DecisionLoading, result.Decision)

	result = Evaluate(State{Resolving: true}, []sdk.Role{sdk.RolePatient}, "/patient")
	assert.Equal(t, DecisionLoading, result.Decision)
}

func TestEvaluateUnauthenticated(t *testing.T) {
	result := Evaluate(State{}, []sdk.Role{sdk.RoleAdmin}, "/admin/doctors")
	assert.Equal(t, DecisionLoginRedirect, result.Decision)
	assert.Equal(t, LoginScreen, result.Target)
	assert.Equal(t, "/admin/doctors", result.From)
}

func TestEvaluateRoleMatrix(t *testing.T) {
	tests := []struct {
		name      string
		role      sdk.Role
		allowed   []sdk.Role
		requested string
		decision  Decision
		target    string
	}{
		{
			name:      "admin on admin screen",
			role:      sdk.RoleAdmin,
			allowed:   []sdk.Role{sdk.RoleAdmin},
			requested: "/admin",
			decision:  DecisionRender,
		},
		{
			name:      "patient on admin screen bounces home",
			role:      sdk.RolePatient,
			allowed:   []sdk.Role{sdk.RoleAdmin},
			requested: "/admin",
			decision:  DecisionHomeRedirect,
			target:    "/patient",
		},
		{
			name:      "doctor on patient screen bounces home",
			role:      sdk.RoleDoctor,
			allowed:   []sdk.Role{sdk.RolePatient, sdk.RoleUser},
			requested: "/patient",
			decision:  DecisionHomeRedirect,
			target:    "/doctor",
		},
		{
			name:      "legacy user role enters patient screens",
			role:      sdk.RoleUser,
			allowed:   []sdk.Role{sdk.RolePatient, sdk.RoleUser},
			requested: "/patient/book",
			decision:  DecisionRender,
		},
		{
			name:      "legacy user role bounces to the patient home",
			role:      sdk.RoleUser,
			allowed:   []sdk.Role{sdk.RoleDoctor},
			requested: "/doctor",
			decision:  DecisionHomeRedirect,
			target:    "/patient",
		},
		{
			name:      "empty allow list admits any authenticated role",
			role:      sdk.RoleDoctor,
			allowed:   nil,
			requested: "/anything",
			decision:  DecisionRender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(State{Identity: identityWithRole(tt.role)}, tt.allowed, tt.requested)
			assert.Equal(t, tt.decision, result.Decision)
			assert.Equal(t, tt.target, result.Target)
		})
	}
}

func TestEvaluateUnknownRole(t *testing.T) {
	// A role outside the closed set has no home; treat as unauthenticated
	// rather than bouncing forever between screens.
	result := Evaluate(State{Identity: identityWithRole("superuser")}, []sdk.Role{sdk.RoleAdmin}, "/admin")
	assert.Equal(t, DecisionLoginRedirect, result.Decision)
	assert.Equal(t, LoginScreen, result.Target)
	assert.Equal(t, "/admin", result.From)

	// Even with no role restriction the unknown role cannot enter.
	result = Evaluate(State{Identity: identityWithRole("superuser")}, nil, "/patient")
	assert.Equal(t, DecisionLoginRedirect, result.Decision)
}

func TestEvaluatePreservesFromOnlyForLogin(t *testing.T) {
	login := Evaluate(State{}, nil, "/patient/appointments")
	assert.Equal(t, "/patient/appointments", login.From)

	home := Evaluate(State{Identity: identityWithRole(sdk.RolePatient)}, []sdk.Role{sdk.RoleAdmin}, "/admin")
	assert.Equal(t, DecisionHomeRedirect, home.Decision)
	assert.Empty(t, home.From)
}
