package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vagali/vagali/internal/client/api"
	"github.com/vagali/vagali/internal/client/credstore"
	"github.com/vagali/vagali/internal/logging"
)

// fakeClient is an api.Client stub capturing the last call arguments.
type fakeClient struct {
	LoginResult *api.LoginResult
	LoginErr    error

	LastEmail    string
	LastPassword string
	LastSetToken string
	TokenCleared bool
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*api.LoginResult, error) {
	f.LastEmail = email
	f.LastPassword = password
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginResult, nil
}

func (f *fakeClient) Register(context.Context, *api.RegisterRequest) error { return nil }
func (f *fakeClient) GetProfile(context.Context) (*api.Profile, error)    { return nil, nil }
func (f *fakeClient) UpdateProfile(context.Context, *api.ProfilePatch) (*api.Profile, error) {
	return nil, nil
}
func (f *fakeClient) ListProfessionals(context.Context, string) ([]api.Professional, error) {
	return nil, nil
}
func (f *fakeClient) ListDemands(context.Context) ([]api.Demand, error) { return nil, nil }
func (f *fakeClient) CreateDemand(context.Context, *api.CreateDemandRequest) (*api.Demand, error) {
	return nil, nil
}
func (f *fakeClient) AvatarUploadURL(context.Context) (string, string, error) { return "", "", nil }
func (f *fakeClient) SetToken(token string)                                   { f.LastSetToken = token }
func (f *fakeClient) ClearToken()                                             { f.TokenCleared = true }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestManager(fc *fakeClient) (*Manager, *credstore.Credentials) {
	creds := credstore.NewCredentials(credstore.NewInMemoryStore())
	return NewManager(fc, creds, testLogger()), creds
}

func TestManager_RestoreEmptyStore(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	m, _ := newTestManager(fc)

	m.Restore(ctx)

	require.Nil(t, m.Current())
	require.Empty(t, m.Token())
	require.Empty(t, fc.LastSetToken)
}

func TestManager_RestoreValidStore(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	m, creds := newTestManager(fc)

	err := creds.Save(ctx, "abc", &credstore.UserRecord{
		ID: "2", FullName: "Maria", Email: "maria@example.com", IsProfessional: true,
	})
	require.NoError(t, err)

	m.Restore(ctx)

	u := m.Current()
	require.NotNil(t, u)
	require.Equal(t, "2", u.ID)
	require.Equal(t, RoleProfessional, u.Role)
	require.Equal(t, "abc", m.Token())
	require.Equal(t, "abc", fc.LastSetToken)
}

func TestManager_RestoreCorruptStore(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	store := credstore.NewInMemoryStore()
	require.NoError(t, store.Set(ctx, "token", []byte("abc")))
	require.NoError(t, store.Set(ctx, "user", []byte("garbage")))
	m := NewManager(fc, credstore.NewCredentials(store), testLogger())

	m.Restore(ctx)

	require.Nil(t, m.Current())
	require.Empty(t, fc.LastSetToken)
}

func TestManager_LoginSuccess(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginResult: &api.LoginResult{
		Token: "abc",
		User:  api.UserPayload{ID: "2", FullName: "Maria", Email: "maria@example.com"},
	}}
	m, creds := newTestManager(fc)

	err := m.Login(ctx, "maria@example.com", "secret")
	require.NoError(t, err)

	require.Equal(t, "maria@example.com", fc.LastEmail)
	require.Equal(t, "secret", fc.LastPassword)
	require.Equal(t, "abc", fc.LastSetToken)
	require.Equal(t, "abc", m.Token())

	u := m.Current()
	require.NotNil(t, u)
	require.Equal(t, "2", u.ID)
	require.Equal(t, RoleClient, u.Role)
	require.False(t, u.IsProfessional())

	token, rec, err := creds.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "abc", token)
	require.Equal(t, "2", rec.ID)
}

func TestManager_LoginNameFallbacks(t *testing.T) {
	ctx := context.Background()

	fc := &fakeClient{LoginResult: &api.LoginResult{
		Token: "t",
		User:  api.UserPayload{ID: "1", Email: "a@b.c"},
	}}
	m, _ := newTestManager(fc)
	require.NoError(t, m.Login(ctx, "a@b.c", "p"))
	require.Equal(t, "a@b.c", m.Current().FullName)

	fc = &fakeClient{LoginResult: &api.LoginResult{
		Token: "t",
		User:  api.UserPayload{ID: "1"},
	}}
	m, _ = newTestManager(fc)
	require.NoError(t, m.Login(ctx, "a@b.c", "p"))
	require.Equal(t, "user", m.Current().FullName)
}

func TestManager_LoginFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginErr: api.ErrUnauthorized}
	m, creds := newTestManager(fc)

	err := m.Login(ctx, "maria@example.com", "wrong")
	require.ErrorIs(t, err, ErrAuthentication)

	require.Nil(t, m.Current())
	require.Empty(t, m.Token())
	require.Empty(t, fc.LastSetToken)

	token, rec, err := creds.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, rec)
}

// failingStore wraps a Store and rejects writes once armed.
type failingStore struct {
	credstore.Store
	failSet bool
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSet {
		return errors.New("disk full")
	}
	return s.Store.Set(ctx, key, value)
}

func TestManager_LoginPersistFailureLogsOut(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginResult: &api.LoginResult{
		Token: "tokA",
		User:  api.UserPayload{ID: "1", FullName: "A", Email: "a@b.c"},
	}}
	store := &failingStore{Store: credstore.NewInMemoryStore()}
	creds := credstore.NewCredentials(store)
	m := NewManager(fc, creds, testLogger())

	require.NoError(t, m.Login(ctx, "a@b.c", "p"))
	require.NotNil(t, m.Current())

	// a re-login whose persist fails must not leave the previous session
	// behind in memory or in the token binding
	fc.LoginResult.Token = "tokB"
	store.failSet = true
	err := m.Login(ctx, "a@b.c", "p")
	require.Error(t, err)

	require.Nil(t, m.Current())
	require.Empty(t, m.Token())
	require.True(t, fc.TokenCleared)

	store.failSet = false
	token, rec, err := creds.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, rec)
}

func TestManager_LoginIncompleteResponse(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginErr: api.ErrIncompleteResponse}
	m, _ := newTestManager(fc)

	err := m.Login(ctx, "a@b.c", "p")
	require.ErrorIs(t, err, ErrAuthentication)
	require.Nil(t, m.Current())
}

func TestManager_Logout(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginResult: &api.LoginResult{
		Token: "abc",
		User:  api.UserPayload{ID: "2", FullName: "Maria", Email: "m@e.c"},
	}}
	m, creds := newTestManager(fc)
	require.NoError(t, m.Login(ctx, "m@e.c", "p"))

	m.Logout(ctx)

	require.True(t, fc.TokenCleared)
	require.Nil(t, m.Current())
	require.Empty(t, m.Token())

	token, rec, err := creds.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Nil(t, rec)

	// logging out while logged out is fine
	m.Logout(ctx)
	require.Nil(t, m.Current())
}

func TestManager_SetRolePersists(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginResult: &api.LoginResult{
		Token: "abc",
		User:  api.UserPayload{ID: "2", FullName: "Maria", Email: "m@e.c"},
	}}
	m, creds := newTestManager(fc)
	require.NoError(t, m.Login(ctx, "m@e.c", "p"))

	m.SetRole(ctx, RoleProfessional)

	u := m.Current()
	require.Equal(t, RoleProfessional, u.Role)
	require.True(t, u.IsProfessional())

	_, rec, err := creds.Load(ctx)
	require.NoError(t, err)
	require.True(t, rec.IsProfessional)
}

func TestManager_SetDisplayNamePersists(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginResult: &api.LoginResult{
		Token: "abc",
		User:  api.UserPayload{ID: "2", FullName: "Maria", Email: "m@e.c"},
	}}
	m, creds := newTestManager(fc)
	require.NoError(t, m.Login(ctx, "m@e.c", "p"))

	m.SetDisplayName(ctx, "Maria S.")

	require.Equal(t, "Maria S.", m.Current().FullName)
	_, rec, err := creds.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "Maria S.", rec.FullName)
}

func TestManager_MutateWithoutSessionIsNoop(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	m, _ := newTestManager(fc)

	m.SetRole(ctx, RoleProfessional)
	m.SetDisplayName(ctx, "Nobody")

	require.Nil(t, m.Current())
}

func TestManager_SubscriberNotifications(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{LoginResult: &api.LoginResult{
		Token: "abc",
		User:  api.UserPayload{ID: "2", FullName: "Maria", Email: "m@e.c"},
	}}
	m, _ := newTestManager(fc)

	var notified []*User
	m.Subscribe(func(u *User) { notified = append(notified, u) })

	require.NoError(t, m.Login(ctx, "m@e.c", "p"))
	m.SetDisplayName(ctx, "Maria S.")
	m.Logout(ctx)

	require.Len(t, notified, 3)
	require.Equal(t, "Maria", notified[0].FullName)
	require.Equal(t, "Maria S.", notified[1].FullName)
	require.Nil(t, notified[2])
}
