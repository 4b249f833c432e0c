package domain

// Provider identifies an OAuth2 identity provider. The set is closed —
// only Google and GitHub exist and no runtime extensibility is wanted.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderGitHub Provider = "github"
)

// ParseProvider maps a route parameter onto the closed provider set.
func ParseProvider(s string) (Provider, bool) {
	switch Provider(s) {
	case ProviderGoogle, ProviderGitHub:
		return Provider(s), true
	default:
		return "", false
	}
}

// User represents an authenticated user. It is built by normalizing a
// provider's user-info response and lives only inside the session cookie;
// there is no server-side user store.
type User struct {
	ID       string   `json:"id"` // provider-scoped ID, stringified for GitHub
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Avatar   string   `json:"avatar,omitempty"`
	Provider Provider `json:"provider"`
}
