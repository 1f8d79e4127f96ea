// Package service declares the stateless capabilities the usecases depend on:
// hashing, tokens, labels, events and metrics.
package service

// PasswordHasher turns passwords into salted hashes. Check must not leak
// timing information about the hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
