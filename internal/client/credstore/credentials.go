package credstore

import (
	"context"
	"encoding/json"
)

// Canonical storage keys. The token and the serialized user record are always
// written and removed as a pair.
const (
	tokenKey = "token"
	userKey  = "user"
)

// UserRecord is the persisted shape of the authenticated user. The role enum
// lives only in memory; on disk the professional flag is the source of truth.
type UserRecord struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	IsProfessional bool   `json:"is_professional"`
}

// Credentials stores and restores the (token, user) pair on top of a Store.
//
// Invariant: after any call returns, the store holds either both entries or
// neither. Load treats a half-written or unparseable state as "no session"
// and clears the store, so corruption can never surface a partially
// authenticated client.
type Credentials struct {
	store Store
}

func NewCredentials(store Store) *Credentials {
	return &Credentials{store: store}
}

// Save writes both entries. If either write fails the store is cleared so no
// observer can see only one of them.
func (c *Credentials) Save(ctx context.Context, token string, user *UserRecord) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := c.store.Set(ctx, tokenKey, []byte(token)); err != nil {
		_ = c.store.Clear(ctx)
		return err
	}
	if err := c.store.Set(ctx, userKey, data); err != nil {
		_ = c.store.Clear(ctx)
		return err
	}
	return nil
}

// Load reads the persisted pair. If either entry is missing, or the user
// record does not deserialize, it returns (nil token, nil user) and clears
// the store. Deserialization failure is deliberately not an error: a corrupt
// session is equivalent to no session.
func (c *Credentials) Load(ctx context.Context) (string, *UserRecord, error) {
	token, err := c.store.Get(ctx, tokenKey)
	if err != nil {
		return "", nil, err
	}
	data, err := c.store.Get(ctx, userKey)
	if err != nil {
		return "", nil, err
	}

	if len(token) == 0 || len(data) == 0 {
		if len(token) != 0 || len(data) != 0 {
			_ = c.store.Clear(ctx)
		}
		return "", nil, nil
	}

	user := &UserRecord{}
	if err := json.Unmarshal(data, user); err != nil || user.ID == "" {
		_ = c.store.Clear(ctx)
		return "", nil, nil
	}

	return string(token), user, nil
}

// Clear removes both entries unconditionally. Safe to call when the store is
// already empty.
func (c *Credentials) Clear(ctx context.Context) error {
	return c.store.Clear(ctx)
}
