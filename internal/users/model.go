package users

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// signup password; the plaintext is never stored.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	IsReviewer   bool      `json:"isReviewer"`
	CreatedAt    time.Time `json:"createdAt"`
}
