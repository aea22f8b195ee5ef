package session

import "github.com/Mahesh-Koilapu/hbctl/pkg/sdk"

// LoginScreen is where unauthenticated callers are sent.
const LoginScreen = "/login"

// Decision is the route guard's verdict for a requested screen.
type Decision int

const (
	// DecisionLoading renders a neutral placeholder: the boot-time identity
	// check has not settled yet, so redirecting would cause a flash of the
	// login screen.
	DecisionLoading Decision = iota
	// DecisionRender lets the requested screen through untouched.
	DecisionRender
	// DecisionLoginRedirect sends the caller to the login screen, preserving
	// the originally requested screen in From.
	DecisionLoginRedirect
	// DecisionHomeRedirect sends an authenticated caller with the wrong role
	// to their own home screen.
	DecisionHomeRedirect
)

// GuardResult pairs a Decision with its destination. Target is set for both
// redirect decisions; From only for the login redirect.
type GuardResult struct {
	Decision Decision
	Target   string
	From     string
}

// Evaluate gates the requested screen against the current session. It is a
// pure function of its inputs: the caller applies whatever navigation the
// result demands.
//
// A nil or empty allowedRoles means any authenticated role may enter. An
// identity whose role is outside the closed role set has no home to redirect
// to and is treated as unauthenticated.
func Evaluate(state State, allowedRoles []sdk.Role, requested string) GuardResult {
	if state.Resolving {
		return GuardResult{Decision: DecisionLoading}
	}

	if state.Identity == nil {
		return GuardResult{Decision: DecisionLoginRedirect, Target: LoginScreen, From: requested}
	}

	role := state.Identity.Role
	home, known := role.Home()
	if !known {
		return GuardResult{Decision: DecisionLoginRedirect, Target: LoginScreen, From: requested}
	}

	if len(allowedRoles) > 0 && !containsRole(allowedRoles, role) {
		return GuardResult{Decision: DecisionHomeRedirect, Target: home}
	}

	return GuardResult{Decision: DecisionRender}
}

func containsRole(roles []sdk.Role, role sdk.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
