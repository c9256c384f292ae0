package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	plaintext := []byte("entity-component snapshot payload")
	ciphertext, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)

	got, err := Decrypt(ciphertext, key)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

func TestEncryptFreshNoncePerCall(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	plaintext := []byte("same plaintext twice")
	a, err := Encrypt(plaintext, key)
	require.NoError(t, err)
	b, err := Encrypt(plaintext, key)
	require.NoError(t, err)

	require.NotEqual(t, a, b, "nonce must differ between calls")
}

func TestDecryptWrongKeyFails(t *testing.T) {
	k1, err := NewKey()
	require.NoError(t, err)
	k2, err := NewKey()
	require.NoError(t, err)

	ciphertext, err := Encrypt([]byte("secret"), k1)
	require.NoError(t, err)

	_, err = Decrypt(ciphertext, k2)
	require.Error(t, err)
}

func TestDecryptTooShortFails(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	_, err = Decrypt([]byte("short"), key)
	require.Error(t, err)
}

func TestKeyFromBytesLengthMismatch(t *testing.T) {
	_, err := KeyFromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestKeyFromBytesExact(t *testing.T) {
	raw := make([]byte, KeySize)
	for i := range raw {
		raw[i] = byte(i)
	}

	key, err := KeyFromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, raw, key.Bytes())
}

func TestDecryptTamperedCiphertextFails(t *testing.T) {
	key, err := NewKey()
	require.NoError(t, err)

	ciphertext, err := Encrypt([]byte("tamper me"), key)
	require.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0xFF

	_, err = Decrypt(ciphertext, key)
	require.Error(t, err)
}
