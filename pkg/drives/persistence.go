package drives

// Persistence controls whether a created mapping survives the logon session.
type Persistence string

const (
	// PersistenceDefault leaves the decision to the OS (the user's remembered net use setting)
	PersistenceDefault Persistence = "default"
	// PersistenceYes restores the mapping at next logon
	PersistenceYes Persistence = "yes"
	// PersistenceNo makes the mapping session-scoped
	PersistenceNo Persistence = "no"
)

// Valid reports whether p is a known value
func (p Persistence) Valid() bool {
	switch p {
	case PersistenceDefault, PersistenceYes, PersistenceNo:
		return true
	}
	return false
}

// UpdateProfile reports whether a new mapping is recorded in the user profile.
// remembered is the user's saved "net use /persistent" choice, which
// PersistenceDefault follows the same way net use does.
func (p Persistence) UpdateProfile(remembered bool) bool {
	switch p {
	case PersistenceYes:
		return true
	case PersistenceNo:
		return false
	}
	return remembered
}
