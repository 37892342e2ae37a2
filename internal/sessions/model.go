package sessions

import "time"

// Session records one login. ID doubles as the session token handed to the
// browser. LogoutTime is nil while the session is open.
type Session struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Email      string     `json:"email"`
	LoginTime  time.Time  `json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime,omitempty"`
}
