package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records dispatched commands.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string, args ...string) error {
	s.calls = append(s.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Login(ctx context.Context) error  { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) Whoami(ctx context.Context) error { return s.record("whoami") }
func (s *stubExec) Open(ctx context.Context, path string) error {
	return s.record("open", path)
}
func (s *stubExec) User(ctx context.Context, arg string) error {
	return s.record("user", arg)
}
func (s *stubExec) Set(ctx context.Context, key, value string) error {
	return s.record("set", key, value)
}
func (s *stubExec) SetLocal(ctx context.Context, field, value string) error {
	return s.record("setlocal", field, value)
}
func (s *stubExec) Nickname(ctx context.Context, value string) error {
	return s.record("nickname", value)
}
func (s *stubExec) Email(ctx context.Context, value string) error {
	return s.record("email", value)
}
func (s *stubExec) Password(ctx context.Context) error    { return s.record("password") }
func (s *stubExec) ResetOpenID(ctx context.Context) error { return s.record("resetopenid") }
func (s *stubExec) Delete(ctx context.Context, arg string) error {
	return s.record("delete", arg)
}

func runScript(t *testing.T, stub *stubExec, script string) []string {
	t.Helper()

	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSpace(fmt.Sprintln(a...)))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, scanner, func() string { return "(test)" })
	return out
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "login\nopen /u/42\nuser 42\nset locale \"de\"\nexit\n")

	assert.Equal(t, []string{
		"login",
		"open /u/42",
		"user 42",
		`set locale "de"`,
	}, stub.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	stub := &stubExec{}
	out := runScript(t, stub, "frobnicate\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPL_UsageForMissingArgs(t *testing.T) {
	stub := &stubExec{}
	out := runScript(t, stub, "open\nsetlocal onlyfield\nexit\n")

	assert.Empty(t, stub.calls)
	assert.Contains(t, out, "Usage: open <path>")
	assert.Contains(t, out, "Usage: setlocal <field> <value>")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "whoami\n")

	assert.Equal(t, []string{"whoami"}, stub.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "login")
	assert.NotContains(t, joined, "resetopenid")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	joined = strings.Join(out, "\n")
	assert.Contains(t, joined, "resetopenid")
}
