package session

import "context"

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Loader resolves an Unknown session.
type Loader func(ctx context.Context) State

// Outcome is the result of a navigation. A navigation either proceeds
// or is redirected to another path.
type Outcome struct {
	Redirect string
}

var Proceed = Outcome{}

func RedirectTo(path string) Outcome {
	return Outcome{Redirect: path}
}

func (o Outcome) Proceeds() bool {
	return o.Redirect == ""
}

func (o Outcome) String() string {
	if o.Proceeds() {
		return "proceed"
	}
	return "redirect to " + o.Redirect
}

// Guard decides the outcome of a navigation to path.
//
// Paths other than the login and the dashboard redirect to the dashboard.
// For any navigation except to the login, an Unknown state is resolved
// with load first. load blocks the navigation until it returns.
func Guard(ctx context.Context, state State, load Loader, path string) Outcome {
	if path != LoginPath && path != DashboardPath {
		return RedirectTo(DashboardPath)
	}

	if state == Unknown && path != LoginPath {
		state = load(ctx)
	}

	if requiresAuth(path) && state != Authenticated {
		return RedirectTo(LoginPath)
	}

	if path == LoginPath && state == Authenticated {
		return RedirectTo(DashboardPath)
	}

	return Proceed
}

func requiresAuth(path string) bool {
	return path == DashboardPath
}

// Navigate runs the guard for path with the cached state of a.
func (a *Auth) Navigate(ctx context.Context, path string) Outcome {
	return Guard(ctx, a.State(), a.Load, path)
}
