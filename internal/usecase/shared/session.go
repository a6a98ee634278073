package shared

// Session is the authenticated caller of a use case. Token is forwarded to the backend as is.
type Session struct {
	UserID string
	Token  string
}

func (s Session) IsZero() bool {
	return s.UserID == "" || s.Token == ""
}
