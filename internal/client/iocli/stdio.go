package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

func NewStdio() IO {
	return newStdio(os.Stdin, os.Stdout)
}

func newStdio(in *os.File, out io.Writer) *Stdio {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
		fd:  int(in.Fd()),
	}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword reads a line without echo. When stdin is not a terminal
// (pipes, tests) it falls back to a plain line read.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if !term.IsTerminal(s.fd) {
		return s.ReadInput(prompt)
	}
	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
