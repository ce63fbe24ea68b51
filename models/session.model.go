package models

// Session is the locally persisted authentication record. The zero value is
// the logged-out session.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

// LoggedIn holds the token-implies-user invariant: both must be present.
func (s Session) LoggedIn() bool {
	return s.AccessToken != "" && s.User != nil
}

func (s Session) Role() string {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

func (s Session) IsAdmin() bool {
	return s.Role() == RoleAdmin
}

func (s Session) IsStudent() bool {
	return s.Role() == RoleStudent
}
