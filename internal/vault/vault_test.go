package vault

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"gocircle/internal/common"

	"github.com/stretchr/testify/require"
)

func testKey(seed byte) []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = seed
	}
	return key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ctx := WithKey(context.Background(), testKey(1))

	payloads := [][]byte{
		[]byte("alice@example.com"),
		[]byte(""),
		[]byte{0x00, 0xff, 0x10},
		bytes.Repeat([]byte("x"), 4096),
	}

	for _, plaintext := range payloads {
		ciphertext, err := Encrypt(ctx, plaintext)
		require.NoError(t, err)
		require.NotEqual(t, plaintext, ciphertext)

		got, err := Decrypt(ctx, ciphertext)
		require.NoError(t, err)
		require.Equal(t, plaintext, got)
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	ctx := WithKey(context.Background(), testKey(1))
	plaintext := []byte("same input")

	first, err := Encrypt(ctx, plaintext)
	require.NoError(t, err)
	second, err := Encrypt(ctx, plaintext)
	require.NoError(t, err)

	require.NotEqual(t, first, second, "fresh nonce per call must vary the ciphertext")
}

func TestDecryptWrongKey(t *testing.T) {
	encCtx := WithKey(context.Background(), testKey(1))
	ciphertext, err := Encrypt(encCtx, []byte("secret"))
	require.NoError(t, err)

	decCtx := WithKey(context.Background(), testKey(2))
	_, err = Decrypt(decCtx, ciphertext)
	require.ErrorIs(t, err, common.ErrIntegrity)
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	ctx := WithKey(context.Background(), testKey(1))
	ciphertext, err := Encrypt(ctx, []byte("secret"))
	require.NoError(t, err)

	ciphertext[len(ciphertext)-1] ^= 0x01
	_, err = Decrypt(ctx, ciphertext)
	require.ErrorIs(t, err, common.ErrIntegrity)

	_, err = Decrypt(ctx, []byte("short"))
	require.ErrorIs(t, err, common.ErrIntegrity)
}

func TestKeyUnavailable(t *testing.T) {
	ctx := context.Background()

	_, err := Encrypt(ctx, []byte("x"))
	require.ErrorIs(t, err, common.ErrKeyUnavailable)

	_, err = Decrypt(ctx, []byte("x"))
	require.ErrorIs(t, err, common.ErrKeyUnavailable)
}

func TestDeriveKeyDeterministic(t *testing.T) {
	a := DeriveKey([]byte("pass"), []byte("salt"))
	b := DeriveKey([]byte("pass"), []byte("salt"))
	c := DeriveKey([]byte("pass"), []byte("other"))

	require.Len(t, a, 32)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
}

func TestLookupHash(t *testing.T) {
	h1 := LookupHash([]byte("alice@example.com"))
	h2 := LookupHash([]byte("alice@example.com"))
	h3 := LookupHash([]byte("bob@example.com"))

	require.Len(t, h1, 64)
	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, h3)
}

func TestConcurrentCallers(t *testing.T) {
	ctx := WithKey(context.Background(), testKey(7))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			plaintext := []byte{byte(n), byte(n + 1)}
			ciphertext, err := Encrypt(ctx, plaintext)
			require.NoError(t, err)
			got, err := Decrypt(ctx, ciphertext)
			require.NoError(t, err)
			require.Equal(t, plaintext, got)
		}(i)
	}
	wg.Wait()
}
