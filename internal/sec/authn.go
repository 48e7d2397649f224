package sec

// Authenticate reports whether password matches the configured operator
// password hash. The conversion service has a single shared operator
// credential, not a per-user table, so only the password is checked; the
// username a Basic Auth client presents is ignored.
func Authenticate(password string, passwordHash []byte) bool {
	return ComparePassword(password, passwordHash) == nil
}
