package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"animegallery/internal/logging"
	"animegallery/internal/models"
	"animegallery/internal/storage"
	"animegallery/internal/store"
)

var testSecret = []byte("test-secret")

func newService(t *testing.T) (*Service, *store.Store, *storage.Memory) {
	t.Helper()
	ctx := context.Background()
	st := store.Open(ctx, storage.NewMemory(), logging.Discard())
	session := storage.NewMemory()
	return NewService(ctx, st, session, testSecret, logging.Discard()), st, session
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	svc, _, session := newService(t)

	require.Nil(t, svc.Current())
	require.True(t, svc.Login(ctx, "admin", "password"))

	cur := svc.Current()
	require.NotNil(t, cur)
	require.Equal(t, "admin", cur.Username)
	require.Equal(t, models.RoleAdmin, cur.Role)

	// The session slot now holds a token.
	raw, err := session.Read(ctx, SessionKey)
	require.NoError(t, err)
	require.NotNil(t, raw)
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, _, session := newService(t)

	require.False(t, svc.Login(ctx, "admin", "wrong"))
	require.False(t, svc.Login(ctx, "ghost", "password"))
	require.Nil(t, svc.Current())

	raw, err := session.Read(ctx, SessionKey)
	require.NoError(t, err)
	require.Nil(t, raw)

	// A failed login does not evict an existing session either.
	require.True(t, svc.Login(ctx, "admin", "password"))
	require.False(t, svc.Login(ctx, "admin", "wrong"))
	require.NotNil(t, svc.Current())
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, session := newService(t)

	require.True(t, svc.Login(ctx, "admin", "password"))
	svc.Logout(ctx)

	require.Nil(t, svc.Current())
	raw, err := session.Read(ctx, SessionKey)
	require.NoError(t, err)
	require.Nil(t, raw)

	// Logging out while logged out is harmless.
	svc.Logout(ctx)
}

func TestSessionRestore(t *testing.T) {
	ctx := context.Background()
	st := store.Open(ctx, storage.NewMemory(), logging.Discard())
	session := storage.NewMemory()

	first := NewService(ctx, st, session, testSecret, logging.Discard())
	require.True(t, first.Login(ctx, "admin", "password"))

	// A new facade over the same slot restores the session.
	second := NewService(ctx, st, session, testSecret, logging.Discard())
	cur := second.Current()
	require.NotNil(t, cur)
	require.Equal(t, "admin", cur.Username)
}

func TestSessionRestoreRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	st := store.Open(ctx, storage.NewMemory(), logging.Discard())
	session := storage.NewMemory()
	require.NoError(t, session.Write(ctx, SessionKey, []byte("not a token")))

	svc := NewService(ctx, st, session, testSecret, logging.Discard())
	require.Nil(t, svc.Current())
}

func TestSessionRestoreRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	st := store.Open(ctx, storage.NewMemory(), logging.Discard())
	session := storage.NewMemory()

	// Written with one secret, restored with another.
	NewService(ctx, st, session, []byte("other-secret"), logging.Discard()).Login(ctx, "admin", "password")

	svc := NewService(ctx, st, session, testSecret, logging.Discard())
	require.Nil(t, svc.Current())
}

func TestSessionRestoreUnknownAccount(t *testing.T) {
	ctx := context.Background()
	session := storage.NewMemory()

	// A token for an account that exists in one database but not another.
	stA := store.Open(ctx, storage.NewMemory(), logging.Discard())
	svcA := NewService(ctx, stA, session, testSecret, logging.Discard())
	res := svcA.CreateAccount(ctx, "alice", "x", models.RoleUser)
	require.True(t, res.OK)
	require.True(t, svcA.Login(ctx, "alice", "x"))

	stB := store.Open(ctx, storage.NewMemory(), logging.Discard())
	svcB := NewService(ctx, stB, session, testSecret, logging.Discard())
	require.Nil(t, svcB.Current())
}

func TestCreateAccountMessages(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	res := svc.CreateAccount(ctx, "alice", "x", models.RoleUser)
	require.True(t, res.OK)
	require.Equal(t, "User added successfully.", res.Message)

	res = svc.CreateAccount(ctx, "alice", "y", models.RoleAdmin)
	require.False(t, res.OK)
	require.Equal(t, "Username already exists.", res.Message)
}

func TestCreateAccountRefreshesCachedList(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	require.Len(t, svc.Accounts(), 1)

	res := svc.CreateAccount(ctx, "alice", "x", models.RoleUser)
	require.True(t, res.OK)

	accounts := svc.Accounts()
	require.Len(t, accounts, 2)
	require.Equal(t, "alice", accounts[1].Username)
}

func TestChangePasswordMessages(t *testing.T) {
	ctx := context.Background()
	svc, st, _ := newService(t)

	res := svc.ChangePassword(ctx, "no-such-id", "pw")
	require.False(t, res.OK)
	require.Equal(t, "User not found.", res.Message)

	admin := svc.Accounts()[0]
	res = svc.ChangePassword(ctx, admin.ID, "hunter2")
	require.True(t, res.OK)
	require.Equal(t, "Password updated successfully.", res.Message)

	_, err := st.Authenticate("admin", "hunter2")
	require.NoError(t, err)
}

func TestAccountsReturnsCopy(t *testing.T) {
	svc, _, _ := newService(t)

	list := svc.Accounts()
	list[0].Username = "mallory"
	require.Equal(t, "admin", svc.Accounts()[0].Username)
}
