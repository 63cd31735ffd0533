package domain

import "time"

// Role names as stored in the roles reference collection. The same strings
// double as granted authorities on an authenticated principal.
const (
	RoleUser      = "ROLE_USER"
	RoleModerator = "ROLE_MODERATOR"
	RoleAdmin     = "ROLE_ADMIN"
)

// MapRoleRequest maps a role token from a sign-up payload to a stored role
// name. Matching is case-sensitive on exactly "admin" and "mod"; every other
// value (including "ADMIN", "Admin", and the empty string) falls through to
// the base role.
func MapRoleRequest(token string) string {
	switch token {
	case "admin":
		return RoleAdmin
	case "mod":
		return RoleModerator
	default:
		return RoleUser
	}
}

// Role is immutable reference data, seeded ahead of time.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User models a registered account. The password is only ever stored hashed.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Authorities returns the user's role names as granted-authority strings.
func (u *User) Authorities() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r.Name)
	}
	return out
}

// DisplayLabel derives the human label used in the registration success
// message. Admin wins over Moderator wins over User, regardless of how many
// roles are present.
func DisplayLabel(roles []Role) string {
	hasAdmin, hasMod := false, false
	for _, r := range roles {
		switch r.Name {
		case RoleAdmin:
			hasAdmin = true
		case RoleModerator:
			hasMod = true
		}
	}
	switch {
	case hasAdmin:
		return "Admin"
	case hasMod:
		return "Moderator"
	default:
		return "User"
	}
}

// Principal is the transient identity attached to an authenticated request.
// It is derived from a verified token or a freshly authenticated user and is
// never persisted.
type Principal struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Authorities []string `json:"roles"`
}

// HasAnyAuthority reports whether the principal holds at least one of the
// given authorities.
func (p *Principal) HasAnyAuthority(required ...string) bool {
	for _, want := range required {
		for _, have := range p.Authorities {
			if have == want {
				return true
			}
		}
	}
	return false
}
