package domain

// Identity is the resolved caller attached to a request after the token is
// verified and permission grants are loaded. It lives only for the duration
// of the request.
type Identity struct {
	UserID      string
	Role        UserRole
	Permissions []string
}

// HasPermission reports whether the identity carries the named permission.
func (i *Identity) HasPermission(name string) bool {
	for _, p := range i.Permissions {
		if p == name {
			return true
		}
	}
	return false
}
