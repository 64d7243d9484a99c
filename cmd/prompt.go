package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// seams for tests
var (
	stdinReader  = bufio.NewReader(os.Stdin)
	readPassword = func() (string, error) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		return string(b), err
	}
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
)

// promptLine asks for one line of input.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := stdinReader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword asks for a secret without echoing it. When stdin is not a
// terminal (tests, pipes), it falls back to a plain line read.
func promptPassword(label string) (string, error) {
	if !isTerminal() {
		return promptLine(label)
	}
	fmt.Printf("%s: ", label)
	return readPassword()
}
