// Package crypto implements the authenticated encryption layer used to
// protect container payloads at rest: AES-256-GCM over a 32-byte key,
// with a fresh random nonce per call.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/IreGaddr/tx2-pack/errs"
)

// KeySize is the fixed symmetric key length, 256 bits.
const KeySize = 32

// NonceSize is the GCM nonce length used throughout this package.
const NonceSize = 12

// Key is a 32-byte AES-256-GCM symmetric key.
type Key [KeySize]byte

// NewKey generates a fresh random key from a cryptographic RNG.
func NewKey() (Key, error) {
	var k Key
	if _, err := rand.Read(k[:]); err != nil {
		return Key{}, fmt.Errorf("tx2pack: generate key: %w", errs.ErrEncryption)
	}
	return k, nil
}

// KeyFromBytes constructs a Key from exactly KeySize bytes. A length
// mismatch is an encryption-taxonomy error, since the key is only ever
// consumed on the encrypt/decrypt path.
func KeyFromBytes(b []byte) (Key, error) {
	if len(b) != KeySize {
		return Key{}, fmt.Errorf("tx2pack: key must be %d bytes, got %d: %w", KeySize, len(b), errs.ErrEncryption)
	}
	var k Key
	copy(k[:], b)
	return k, nil
}

// Bytes returns a copy of the key's raw bytes.
func (k Key) Bytes() []byte {
	b := make([]byte, KeySize)
	copy(b, k[:])
	return b
}

func gcmFor(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt seals data under key and returns nonce||ciphertext||tag. A
// fresh nonce is drawn from a cryptographic RNG for every call; reusing
// a nonce under the same key is not safe and this function never does.
func Encrypt(data []byte, key Key) ([]byte, error) {
	gcm, err := gcmFor(key)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: encrypt: %w", errs.ErrEncryption)
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("tx2pack: encrypt: nonce: %w", errs.ErrEncryption)
	}

	sealed := gcm.Seal(nil, nonce, data, nil)
	return append(nonce, sealed...), nil
}

// Decrypt splits off the leading nonce from data, verifies and opens
// the GCM tag under key, and returns the plaintext. Any input shorter
// than NonceSize or any tag verification failure surfaces as
// errs.ErrDecryption.
func Decrypt(data []byte, key Key) ([]byte, error) {
	if len(data) < NonceSize {
		return nil, fmt.Errorf("tx2pack: decrypt: input shorter than nonce: %w", errs.ErrDecryption)
	}

	gcm, err := gcmFor(key)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: decrypt: %w", errs.ErrDecryption)
	}

	nonce, ciphertext := data[:NonceSize], data[NonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("tx2pack: decrypt: %w", errs.ErrDecryption)
	}

	return plaintext, nil
}
