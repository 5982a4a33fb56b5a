package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bot-admin-panel/internal/features/auth/models"
)

func TestCreateAndGet(t *testing.T) {
	store := NewSessionStore()
	identity := models.Identity{Method: models.AuthMethodBasic, Username: "admin"}

	token, err := store.Create(identity, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	session, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, identity, session.Identity)
	assert.Equal(t, session.CreatedAt.Add(time.Hour), session.ExpiresAt)
}

func TestGetUnknownToken(t *testing.T) {
	store := NewSessionStore()

	session, ok := store.Get("no-such-token")
	assert.False(t, ok)
	assert.Nil(t, session)
}

func TestGetExpiredSession(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Create(models.Identity{Method: models.AuthMethodBasic, Username: "admin"}, -time.Second)
	require.NoError(t, err)

	_, ok := store.Get(token)
	assert.False(t, ok, "an expired session must read as absent")
	assert.Equal(t, 1, store.Len(), "lazy expiry leaves the entry for the sweeper")
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Create(models.Identity{Method: models.AuthMethodBasic, Username: "admin"}, time.Hour)
	require.NoError(t, err)

	first, ok := store.Get(token)
	require.True(t, ok)
	first.Identity.Username = "mutated"

	second, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, "admin", second.Identity.Username)
}

func TestDestroy(t *testing.T) {
	store := NewSessionStore()

	token, err := store.Create(models.Identity{Method: models.AuthMethodBasic, Username: "admin"}, time.Hour)
	require.NoError(t, err)

	store.Destroy(token)
	_, ok := store.Get(token)
	assert.False(t, ok)

	// Destroying again is a no-op.
	store.Destroy(token)
	store.Destroy("never-existed")
}

func TestSweepExpired(t *testing.T) {
	store := NewSessionStore()
	identity := models.Identity{Method: models.AuthMethodBasic, Username: "admin"}

	live, err := store.Create(identity, time.Hour)
	require.NoError(t, err)
	_, err = store.Create(identity, -time.Minute)
	require.NoError(t, err)
	_, err = store.Create(identity, -time.Hour)
	require.NoError(t, err)

	removed := store.SweepExpired(time.Now())
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(live)
	assert.True(t, ok, "sweep must not touch live sessions")

	assert.Equal(t, 0, store.SweepExpired(time.Now()), "second sweep finds nothing")
}

func TestTokensAreUnique(t *testing.T) {
	store := NewSessionStore()
	identity := models.Identity{Method: models.AuthMethodBasic, Username: "admin"}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := store.Create(identity, time.Hour)
		require.NoError(t, err)
		require.False(t, seen[token], "token collision")
		seen[token] = true
		assert.GreaterOrEqual(t, len(token), 43, "32 random bytes base64url encoded")
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	identity := models.Identity{Method: models.AuthMethodTelegram, Profile: models.Profile{ID: 1}}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				token, err := store.Create(identity, time.Hour)
				assert.NoError(t, err)
				_, ok := store.Get(token)
				assert.True(t, ok)
				store.Destroy(token)
				store.SweepExpired(time.Now())
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, store.Len())
}
