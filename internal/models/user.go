package models

// User is one registration record. Password is stored exactly as entered.
type User struct {
	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
}
