// Package cryptox holds the symmetric primitives behind the credential vault:
// argon2id key derivation and AES-GCM sealing of JSON values.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the AES-256 key length produced by DeriveKey.
	KeySize = 32
	// SaltSize is the recommended salt length for DeriveKey.
	SaltSize = 16
)

var ErrInvalidKeySize = errors.New("invalid key size")

// DeriveKey stretches secret with salt into a KeySize-byte key using argon2id.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

// SealJSON serializes v to JSON and encrypts it with AES-GCM under key.
// A fresh random nonce is generated for every call and returned separately.
//
// Example:
//
//	ct, nonce, err := SealJSON(models.Credentials{Username: "a@b.com", Password: pw}, key)
func SealJSON(v any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	return aesgcm.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// OpenJSON decrypts ciphertext with key and nonce and unmarshals the JSON
// payload into v. Authentication failures surface as errors from AES-GCM.
func OpenJSON(ciphertext, nonce, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}
	defer wipe(plaintext)

	return json.Unmarshal(plaintext, v)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return nil, ErrInvalidKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
