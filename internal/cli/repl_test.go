package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	admin    bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) isAdmin() bool    { return s.admin }

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) Login(ctx context.Context) error  { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) List(ctx context.Context) error   { return s.record("list") }
func (s *stubExec) Add(ctx context.Context) error    { return s.record("add") }
func (s *stubExec) Users(ctx context.Context) error  { return s.record("users") }
func (s *stubExec) AddUser(ctx context.Context) error {
	return s.record("adduser")
}
func (s *stubExec) Passwd(ctx context.Context) error { return s.record("passwd") }
func (s *stubExec) Show(ctx context.Context, args []string) error {
	return s.record("show " + strings.Join(args, " "))
}
func (s *stubExec) Rate(ctx context.Context, args []string) error {
	return s.record("rate " + strings.Join(args, " "))
}
func (s *stubExec) SetStatus(ctx context.Context, args []string) error {
	return s.record("status " + strings.Join(args, " "))
}
func (s *stubExec) Remove(ctx context.Context, args []string) error {
	return s.record("remove " + strings.Join(args, " "))
}

func runScript(t *testing.T, stub *stubExec, script string) string {
	t.Helper()

	var out bytes.Buffer
	runREPL(context.Background(), stub, func() string { return "" }, bufio.NewScanner(strings.NewReader(script)), &out)
	return out.String()
}

func TestREPLDispatch(t *testing.T) {
	stub := &stubExec{loggedIn: true, admin: true}
	runScript(t, stub, "list\nshow 2\nrate 2 9\nstatus 1 On Hold\nremove 3\nusers\nexit\n")

	require.Equal(t, []string{"list", "show 2", "rate 2 9", "status 1 On Hold", "remove 3", "users"}, stub.calls)
}

func TestREPLExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	out := runScript(t, stub, "")

	require.Empty(t, stub.calls)
	// The prompt goes to the same writer as everything else.
	require.Contains(t, out, "agcli ")
}

func TestREPLIgnoresBlankAndUnknown(t *testing.T) {
	stub := &stubExec{loggedIn: true}
	out := runScript(t, stub, "\n\nflarble\nquit\n")

	require.Empty(t, stub.calls)
	require.Contains(t, out, "Unknown command: flarble")
	require.Contains(t, out, "Bye!")
}

func TestREPLGatesCommandsWhenLoggedOut(t *testing.T) {
	stub := &stubExec{}
	out := runScript(t, stub, "list\nadd\nusers\nexit\n")

	require.Empty(t, stub.calls)
	require.Contains(t, out, "Please login first.")
}

func TestREPLGatesAdminCommands(t *testing.T) {
	stub := &stubExec{loggedIn: true}
	out := runScript(t, stub, "users\nadduser\npasswd\nlist\nexit\n")

	require.Equal(t, []string{"list"}, stub.calls)
	require.Contains(t, out, "requires the admin role")
}

func TestREPLHelpVariants(t *testing.T) {
	out := runScript(t, &stubExec{}, "help\nexit\n")
	require.Contains(t, out, "login, exit")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.NotContains(t, out, "adduser")

	out = runScript(t, &stubExec{loggedIn: true, admin: true}, "help\nexit\n")
	require.Contains(t, out, "adduser")
}
