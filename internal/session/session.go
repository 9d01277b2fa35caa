// Package session runs the contactbook command loop.
//
// A Session owns one contact.Directory and reads commands line by line from
// an injected reader, writing exactly one reply per command to an injected
// writer. Every command failure is turned into a one-line reply here; nothing
// below this package prints or logs.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"contactbook/internal/contact"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	welcomeMessage = "Welcome to the assistant bot!"
	invalidCommand = "Invalid command."
	lineTooLong    = "Input line too long."
)

// maxLineBytes bounds one input line. Longer lines are discarded and
// answered with an error; the loop keeps running.
const maxLineBytes = 1 << 20

// Session is one run of the command loop.
type Session struct {
	id     string
	in     *bufio.Reader
	out    io.Writer
	dir    *contact.Directory
	now    func() time.Time
	window int
	prompt string
	log    *zap.Logger
	styles styles
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used by the birthdays command.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithWindow sets the default birthdays look-ahead in days.
func WithWindow(days int) Option {
	return func(s *Session) { s.window = days }
}

// WithLogger sets the logger for command dispatch.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithPrompt sets the prompt printed before each line is read.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}

// WithDirectory starts the session on an existing directory.
func WithDirectory(d *contact.Directory) Option {
	return func(s *Session) { s.dir = d }
}

// New creates a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		in:     bufio.NewReader(in),
		out:    out,
		dir:    contact.NewDirectory(),
		now:    time.Now,
		window: contact.DefaultWindowDays,
		prompt: "Enter a command: ",
		log:    zap.NewNop(),
		styles: newStyles(out),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session_id", s.id))
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Directory returns the directory the session operates on.
func (s *Session) Directory() *contact.Directory { return s.dir }

// Run prints a welcome line and then executes one command per input line
// until exit or close, end of input, or ctx is done. Cancellation is only
// observed between lines.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("Session started")
	defer s.log.Info("Session ended")

	fmt.Fprintln(s.out, s.styles.banner.Render(welcomeMessage))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, s.prompt)
		line, err := s.readLine()
		var res result
		switch {
		case errors.Is(err, errLineTooLong):
			s.log.Debug("Line discarded", zap.Int("limit", maxLineBytes))
			res = result{reply: lineTooLong, failed: true}
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			fmt.Fprintln(s.out)
			return err
		default:
			res = s.execute(line)
		}
		if res.reply != "" {
			fmt.Fprintln(s.out, s.render(res))
		}
		if res.quit {
			return nil
		}
	}
}

var errLineTooLong = errors.New("line too long")

// readLine returns the next line without its terminator. A line longer than
// maxLineBytes is consumed whole and reported as errLineTooLong.
func (s *Session) readLine() (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			if len(buf) == 0 && !tooLong {
				return "", err
			}
			break
		}
		if !tooLong && len(buf)+len(chunk) > maxLineBytes {
			tooLong, buf = true, nil
		}
		if !tooLong {
			buf = append(buf, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(buf), nil
}

// Execute runs a single command line and returns its reply. quit reports
// whether the command ends the session.
func (s *Session) Execute(line string) (reply string, quit bool) {
	res := s.execute(line)
	return res.reply, res.quit
}

type result struct {
	reply  string
	failed bool
	quit   bool
}

func (s *Session) render(res result) string {
	if strings.Contains(res.reply, "\n") {
		return res.reply
	}
	if res.failed {
		return s.styles.err.Render(res.reply)
	}
	return s.styles.ok.Render(res.reply)
}

func (s *Session) execute(line string) result {
	name, args := parseInput(line)
	if name == "" {
		return result{}
	}

	cmd, ok := lookup(name)
	if !ok {
		s.log.Debug("Unknown command", zap.String("command", name))
		return result{reply: invalidCommand, failed: true}
	}

	if len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		err := &ArgumentError{Command: cmd.name, Usage: cmd.usage}
		s.log.Debug("Bad arguments", zap.String("command", cmd.name), zap.Int("args", len(args)))
		return result{reply: errorMessage(err), failed: true}
	}

	reply, err := cmd.run(s, args)
	if err != nil {
		s.log.Debug("Command failed",
			zap.String("command", cmd.name),
			zap.Int("args", len(args)),
			zap.Error(err))
		return result{reply: errorMessage(err), failed: true}
	}
	s.log.Debug("Command executed", zap.String("command", cmd.name), zap.Int("args", len(args)))
	return result{reply: reply, quit: cmd.quit}
}

// parseInput splits a line into a lower-cased command name and its
// whitespace-separated arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}
