package models

// User mirrors the users table. Nothing reads or writes it yet; the table is
// kept so existing data files stay compatible.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
