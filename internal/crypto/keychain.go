// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateEncryptionSalt implements [KeyChainService]. It reads 16 random
// bytes from the OS CSPRNG and returns them as the encryption salt. Returns
// an error if the random read fails.
func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. It derives a 256-bit vault key
// from masterPassword and salt using Argon2id with the parameters stored in
// the receiver.
func (k *keyChainService) DeriveKey(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// GenerateAuthHash implements [KeyChainService]. It computes a second
// Argon2id pass over the derived key with authSalt so that the value sent to
// the server cannot be used to decrypt the vault.
func (k *keyChainService) GenerateAuthHash(key []byte, authSalt string) []byte {
	return argon2.IDKey(key, []byte(authSalt), k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)
}

// EncryptBlob implements [KeyChainService]. It encrypts plain with key using
// AES-256-GCM. The output is a Base64 (standard encoding) string of the
// envelope: nonce (12 bytes) ‖ ciphertext. Returns an error if cipher
// creation or nonce generation fails.
func (k *keyChainService) EncryptBlob(plain []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so DecryptBlob can split it out without side-channel.
	ciphertext := gcm.Seal(nil, nonce, plain, nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptBlob implements [KeyChainService]. It Base64-decodes encryptedB64,
// splits out the nonce, and decrypts the ciphertext with key via AES-256-GCM.
// The envelope must be at least as long as the GCM nonce (12 bytes).
func (k *keyChainService) DecryptBlob(encryptedB64 string, key []byte) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(encryptedB64)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// Decrypt and verify auth tag. An error here almost always means the
	// user entered the wrong master password, producing a wrong key.
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt blob: %w", err)
	}

	return plain, nil
}
