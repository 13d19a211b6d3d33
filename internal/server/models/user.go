package models

// User is the account row. PasswordHash is a bcrypt hash and never leaves
// the repository/service layer.
type User struct {
	ID             string
	Email          string
	PasswordHash   []byte
	FullName       string
	IsProfessional bool
	Bio            string
	City           string
	MainService    string
	Keywords       string
	Rating         float64
}
