package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGoogleTokenRoundtrip(t *testing.T) {
	t.Setenv("SCOUT_ENCRYPTION_KEY", "test-encryption-key")
	db := NewTestDB(t)

	t.Run("no token stored", func(t *testing.T) {
		token, err := db.GetGoogleToken()
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("save and retrieve", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
		original := &oauth2.Token{
			AccessToken:  "ya29.access",
			RefreshToken: "1//refresh",
			TokenType:    "Bearer",
			Expiry:       expiry,
		}

		require.NoError(t, db.SaveGoogleToken(original))

		stored, err := db.GetGoogleToken()
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.Equal(t, "ya29.access", stored.AccessToken)
		assert.Equal(t, "1//refresh", stored.RefreshToken)
		assert.Equal(t, "Bearer", stored.TokenType)
		assert.True(t, expiry.Equal(stored.Expiry.UTC().Truncate(time.Second)))
	})

	t.Run("save overwrites the previous token", func(t *testing.T) {
		require.NoError(t, db.SaveGoogleToken(&oauth2.Token{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			TokenType:    "Bearer",
		}))

		stored, err := db.GetGoogleToken()
		require.NoError(t, err)
		assert.Equal(t, "new-access", stored.AccessToken)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, db.DeleteGoogleToken())

		token, err := db.GetGoogleToken()
		require.NoError(t, err)
		assert.Nil(t, token)
	})
}

func TestTokenEncryption(t *testing.T) {
	t.Run("ciphertext is not plaintext", func(t *testing.T) {
		t.Setenv("SCOUT_ENCRYPTION_KEY", "test-encryption-key")

		ciphertext, err := encryptToken("secret-token")
		require.NoError(t, err)
		assert.NotContains(t, string(ciphertext), "secret-token")

		plaintext, err := decryptToken(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "secret-token", plaintext)
	})

	t.Run("falls back to api key derivation", func(t *testing.T) {
		t.Setenv("SCOUT_ENCRYPTION_KEY", "")
		t.Setenv("OPENAI_API_KEY", "sk-test")

		ciphertext, err := encryptToken("secret-token")
		require.NoError(t, err)

		plaintext, err := decryptToken(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, "secret-token", plaintext)
	})

	t.Run("no key available", func(t *testing.T) {
		t.Setenv("SCOUT_ENCRYPTION_KEY", "")
		t.Setenv("OPENAI_API_KEY", "")

		_, err := encryptToken("secret-token")
		assert.Error(t, err)
	})

	t.Run("wrong key fails to decrypt", func(t *testing.T) {
		t.Setenv("SCOUT_ENCRYPTION_KEY", "key-one")
		ciphertext, err := encryptToken("secret-token")
		require.NoError(t, err)

		t.Setenv("SCOUT_ENCRYPTION_KEY", "key-two")
		_, err = decryptToken(ciphertext)
		assert.Error(t, err)
	})

	t.Run("truncated ciphertext", func(t *testing.T) {
		t.Setenv("SCOUT_ENCRYPTION_KEY", "test-encryption-key")
		_, err := decryptToken([]byte("short"))
		assert.Error(t, err)
	})
}
