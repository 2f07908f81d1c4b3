package security

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a salted one-way hash of plain
	//
	// Possible errors:
	// - ErrPasswordTooLong: If plain exceeds the algorithm's input limit
	Hash(plain string) (string, error)

	// Compare checks plain against hash in constant time
	//
	// Possible errors:
	// - ErrInvalidPassword: If plain does not match hash
	Compare(hash, plain string) error
}
