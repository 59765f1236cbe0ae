package mocks

import "errors"

// ErrPasswordMismatch is returned by the default Compare implementation when
// the password does not match the stored value.
var ErrPasswordMismatch = errors.New("password mismatch")

// MockPasswordHasher implements auth.PasswordHasher for testing. The default
// implementation "hashes" by prefixing, keeping test fixtures readable.
type MockPasswordHasher struct {
	// Function fields for customizable behavior
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// Default response values
	HashErr    error
	CompareErr error
}

const mockHashPrefix = "hashed:"

// Hash implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return mockHashPrefix + password, nil
}

// Compare implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.CompareErr != nil {
		return m.CompareErr
	}
	if hashedPassword != mockHashPrefix+password {
		return ErrPasswordMismatch
	}
	return nil
}
