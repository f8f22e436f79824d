package domain

// Hasher is the core port for any hashing strategy.
// It is used to fingerprint secrets for logs.
type Hasher interface {
	Hash(data []byte) string
}
