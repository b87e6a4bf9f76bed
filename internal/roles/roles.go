package roles

import "fmt"

// Role is a tag stored on a user record. The set is closed: anything that
// does not parse is rejected, never coerced.
type Role string

const (
	RoleUser      Role = "user"
	RoleGuest     Role = "guest"
	RoleHost      Role = "host"
	RoleGuestHost Role = "guest:host"
	RoleAdmin     Role = "admin"
)

// hierarchy maps each role to its privilege level. All community roles share
// one baseline; admin sits strictly above them. Unknown roles get level 0 and
// therefore never pass any access check.
var hierarchy = map[Role]int{
	RoleAdmin:     3,
	RoleUser:      1,
	RoleGuest:     1,
	RoleHost:      1,
	RoleGuestHost: 1,
}

// Parse validates a raw role string against the closed set. Comparison is
// exact: no trimming, no case folding, so "Admin" is not "admin".
func Parse(s string) (Role, error) {
	r := Role(s)
	if _, ok := hierarchy[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Level returns the privilege level of a role, 0 for anything outside the set.
func Level(r Role) int {
	return hierarchy[r]
}

// CanAccess reports whether an actor with role actor meets the bar set by
// required. It is total: defined for every pair of strings, including
// invalid ones (which always fail as actor and always dominate nothing).
func CanAccess(actor, required Role) bool {
	return hierarchy[actor] >= hierarchy[required] && hierarchy[actor] > 0
}

// Derive recomputes the role a user should hold from which profiles exist.
// Admin is an override: once granted it is never demoted by profile churn.
// Every mutation path that touches profile existence goes through this one
// function so host-create and guest-create can never disagree on the dual
// role spelling.
func Derive(current Role, hasHost, hasGuest bool) Role {
	if current == RoleAdmin {
		return RoleAdmin
	}
	switch {
	case hasHost && hasGuest:
		return RoleGuestHost
	case hasHost:
		return RoleHost
	case hasGuest:
		return RoleGuest
	default:
		return RoleUser
	}
}

// IsHost reports whether the role includes the host side.
func IsHost(r Role) bool {
	return r == RoleHost || r == RoleGuestHost
}

// IsGuest reports whether the role includes the guest side.
func IsGuest(r Role) bool {
	return r == RoleGuest || r == RoleGuestHost
}
