package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// replStub records which commands the REPL dispatched.
type replStub struct {
	loggedIn  bool
	developer bool
	calls     []string
}

func (s *replStub) isLoggedIn() bool  { return s.loggedIn }
func (s *replStub) isDeveloper() bool { return s.developer }

func (s *replStub) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *replStub) Register(ctx context.Context) error    { return s.record("register") }
func (s *replStub) Login(ctx context.Context) error       { return s.record("login") }
func (s *replStub) Logout(ctx context.Context) error      { return s.record("logout") }
func (s *replStub) Add(ctx context.Context) error         { return s.record("add") }
func (s *replStub) List(ctx context.Context) error        { return s.record("list") }
func (s *replStub) Show(ctx context.Context) error        { return s.record("show") }
func (s *replStub) Edit(ctx context.Context) error        { return s.record("edit") }
func (s *replStub) Done(ctx context.Context) error        { return s.record("done") }
func (s *replStub) SetDate(ctx context.Context) error     { return s.record("setdate") }
func (s *replStub) Photo(ctx context.Context) error       { return s.record("photo") }
func (s *replStub) Note(ctx context.Context) error        { return s.record("note") }
func (s *replStub) Delete(ctx context.Context) error      { return s.record("delete") }
func (s *replStub) Users(ctx context.Context) error       { return s.record("users") }
func (s *replStub) Impersonate(ctx context.Context) error { return s.record("impersonate") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, fmt.Sprintln(args...))
		return 0, nil
	}
	return lines
}

func runWithInput(t *testing.T, stub *replStub, input string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), stub, func() string { return "" }, scanner)

	var out []string
	for _, l := range *lines {
		out = append(out, strings.TrimSpace(l))
	}
	return out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	stub := &replStub{loggedIn: true}

	runWithInput(t, stub, "list\nadd\ndone\nsetdate\nphoto\nnote\ndelete\nlogout\nexit\n")

	assert.Equal(t,
		[]string{"list", "add", "done", "setdate", "photo", "note", "delete", "logout"},
		stub.calls)
}

func TestRunREPL_ListShortcut(t *testing.T) {
	stub := &replStub{loggedIn: true}
	runWithInput(t, stub, "l\nexit\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	stub := &replStub{}
	out := runWithInput(t, stub, "frobnicate\nexit\n")

	joined := strings.Join(out, "\n")
	assert.Contains(t, joined, "Unknown command: frobnicate")
	assert.Empty(t, stub.calls)
}

func TestRunREPL_HelpDependsOnState(t *testing.T) {
	out := strings.Join(runWithInput(t, &replStub{}, "help\nexit\n"), "\n")
	assert.Contains(t, out, "register, login")
	assert.NotContains(t, out, "impersonate")

	out = strings.Join(runWithInput(t, &replStub{loggedIn: true, developer: true}, "help\nexit\n"), "\n")
	assert.Contains(t, out, "delete")
	assert.Contains(t, out, "impersonate")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	stub := &replStub{}
	runWithInput(t, stub, "") // scanner hits EOF immediately
	assert.Empty(t, stub.calls)
}

func TestRunREPL_BlankLinesIgnored(t *testing.T) {
	stub := &replStub{loggedIn: true}
	runWithInput(t, stub, "\n\nlist\nexit\n")
	assert.Equal(t, []string{"list"}, stub.calls)
}
