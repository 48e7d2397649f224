// Package sec provides authentication and security primitives for the HTTP
// conversion service.
//
// # Authentication
//
// The conversion service gates access behind a single shared HTTP Basic
// Auth password, validated against a bcrypt hash held in configuration.
// Unlike a multi-user system there is no per-user table: anyone who knows
// the operator password is authenticated.
//
// IMPORTANT: Basic Auth transmits credentials in base64 encoding (not
// encrypted). TLS must be used in production to protect credentials in
// transit.
//
// # Components
//
//   - [Authenticate]: Validates a Basic Auth password against the
//     configured hash
//   - [HashPassword], [ComparePassword]: bcrypt password hashing utilities
package sec
