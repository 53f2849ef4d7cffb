package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corvidae/bitchess/internal/cli"
)

func TestMoveAndBotCommands(t *testing.T) {
	in := strings.NewReader("move e2e4\nbot\nundo\nquit\n")
	var out bytes.Buffer

	r := cli.New(in, &out)
	r.Run()

	if !strings.Contains(out.String(), "goodbye") {
		t.Fatalf("expected the quit command to say goodbye, got:\n%s", out.String())
	}
}

func TestIllegalMoveIsRejected(t *testing.T) {
	in := strings.NewReader("move e2e5\nquit\n")
	var out bytes.Buffer

	r := cli.New(in, &out)
	r.Run()

	if !strings.Contains(out.String(), "illegal move") {
		t.Fatalf("expected an illegal move message, got:\n%s", out.String())
	}
}

func TestHelpCommandPrintsWrappedText(t *testing.T) {
	in := strings.NewReader("help\nquit\n")
	var out bytes.Buffer

	r := cli.New(in, &out)
	r.Run()

	if !strings.Contains(out.String(), "Commands:") {
		t.Fatalf("expected help output, got:\n%s", out.String())
	}
}
