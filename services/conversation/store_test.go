package conversation

import (
	"context"
	"testing"
	"time"

	"medibook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := models.NewSession("sess-1")
	session.Symptoms = []string{"fever"}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.Equal(t, []string{"fever"}, got.Symptoms)
}

func TestMemoryStoreDoesNotAlias(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := models.NewSession("sess-2")
	session.Symptoms = []string{"cough"}
	require.NoError(t, store.Save(ctx, session))

	// Mutating the value we saved or the value we read must not leak into
	// the stored session.
	session.Symptoms[0] = "mutated"
	got, err := store.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"cough"}, got.Symptoms)

	got.CurrentState = models.StateCompleted
	again, err := store.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.Equal(t, models.StateSymptomCollection, again.CurrentState)
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisSessionStore(client, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	session := models.NewSession("sess-r1")
	session.CurrentState = models.StateDoctorConfirmation
	session.RecommendedSpecialist = "cardiologist"
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "sess-r1")
	require.NoError(t, err)
	assert.Equal(t, models.StateDoctorConfirmation, got.CurrentState)
	assert.Equal(t, "cardiologist", got.RecommendedSpecialist)
}

func TestRedisStoreNotFound(t *testing.T) {
	store, _ := newRedisStore(t, 30*time.Minute)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreTTL(t *testing.T) {
	store, mr := newRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.NewSession("sess-ttl")))
	assert.Equal(t, 10*time.Minute, mr.TTL(sessionKeyPrefix+"sess-ttl"))

	mr.FastForward(11 * time.Minute)
	_, err := store.Get(ctx, "sess-ttl")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
