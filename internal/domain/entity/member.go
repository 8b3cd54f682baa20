package entity

// Member is a guild member as reported by the chat platform
type Member struct {
	ID          string
	DisplayName string
	IsBot       bool
	Roles       []string
}

// HasAnyRole reports whether the member holds at least one of the given role names
func (m Member) HasAnyRole(roles []string) bool {
	for _, held := range m.Roles {
		for _, role := range roles {
			if held == role {
				return true
			}
		}
	}
	return false
}
