package user

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

// PasswordGenerator creates temporary passwords for password reset.
type PasswordGenerator interface {
	GeneratePassword() RawPassword
}

type PasswordFormatValidator interface {
	ValidatePasswordFormat(password RawPassword) error
}
