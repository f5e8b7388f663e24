package crypto

// KeyChainService is the key-management contract used by the agent. It covers
// key derivation from the master password and symmetric encryption of the
// exported vault blob.
type KeyChainService interface {
	// GenerateEncryptionSalt returns a fresh random salt for key derivation.
	GenerateEncryptionSalt() ([]byte, error)

	// DeriveKey derives the 256-bit vault encryption key from the user's
	// master password and salt using Argon2id. The result exists only in
	// agent memory and is never transmitted to the server.
	DeriveKey(masterPassword string, salt []byte) []byte

	// GenerateAuthHash computes the authentication hash sent to the server
	// in place of the master password. The fixed authSalt domain-separates
	// this hash from the encryption key itself.
	GenerateAuthHash(key []byte, authSalt string) []byte

	// EncryptBlob encrypts an exported vault blob with the given key using
	// AES-256-GCM and returns the Base64 envelope (nonce ‖ ciphertext).
	EncryptBlob(plain []byte, key []byte) (string, error)

	// DecryptBlob decodes and decrypts an envelope produced by EncryptBlob.
	// Returns an error if the envelope is malformed, the key is wrong, or
	// the ciphertext is corrupted (authentication-tag mismatch).
	DecryptBlob(encryptedB64 string, key []byte) ([]byte, error)
}
