package credstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCredentials_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewCredentials(NewInMemoryStore())

	err := c.Save(ctx, "abc", &UserRecord{ID: "2", FullName: "Maria Silva", Email: "maria@example.com", IsProfessional: true})
	require.NoError(t, err)

	token, user, err := c.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", token)
	require.NotNil(t, user)
	require.Equal(t, "2", user.ID)
	require.Equal(t, "Maria Silva", user.FullName)
	require.Equal(t, "maria@example.com", user.Email)
	require.True(t, user.IsProfessional)
}

func TestCredentials_LoadEmptyStore(t *testing.T) {
	ctx := context.Background()
	c := NewCredentials(NewInMemoryStore())

	token, user, err := c.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestCredentials_LoadCorruptUserClearsStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	c := NewCredentials(store)

	require.NoError(t, store.Set(ctx, tokenKey, []byte("abc")))
	require.NoError(t, store.Set(ctx, userKey, []byte("{not json")))

	token, user, err := c.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)

	// the broken pair must be gone, a second load sees an empty store
	v, err := store.Get(ctx, tokenKey)
	require.NoError(t, err)
	require.Nil(t, v)

	token, user, err = c.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestCredentials_LoadHalfWrittenPairClearsStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	c := NewCredentials(store)

	require.NoError(t, store.Set(ctx, tokenKey, []byte("abc")))

	token, user, err := c.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)

	v, err := store.Get(ctx, tokenKey)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestCredentials_LoadRecordWithoutID(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	c := NewCredentials(store)

	require.NoError(t, store.Set(ctx, tokenKey, []byte("abc")))
	require.NoError(t, store.Set(ctx, userKey, []byte(`{"email":"a@b.c"}`)))

	token, user, err := c.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}

func TestCredentials_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	c := NewCredentials(NewInMemoryStore())

	require.NoError(t, c.Clear(ctx))

	require.NoError(t, c.Save(ctx, "t", &UserRecord{ID: "1", Email: "a@b.c"}))
	require.NoError(t, c.Clear(ctx))
	require.NoError(t, c.Clear(ctx))

	token, user, err := c.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, user)
}
