package domain

type AuthStatus int

const (
	Authenticated AuthStatus = iota
	// The name list could not be fetched and no login URL was obtainable.
	// The viewer keeps running with an empty selector.
	Unauthenticated
	// A login URL was obtained. The session ends with a navigation to it.
	RedirectPending
)

func (s AuthStatus) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	case RedirectPending:
		return "redirect_pending"
	default:
		return "unknown"
	}
}

type AuthState struct {
	Status      AuthStatus
	RedirectURL string
}
