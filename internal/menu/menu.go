// Package menu runs the interactive read-parse-dispatch loop over a contact
// store.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/contacts/internal/render"
	"github.com/mesh-intelligence/contacts/internal/store"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// State is the loop state.
type State int

const (
	AwaitingInput State = iota
	Dispatching
	Exited
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Dispatching:
		return "dispatching"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Menu options.
const (
	OptionExit   = 0
	OptionAdd    = 1
	OptionList   = 2
	OptionDelete = 3
)

// User-facing messages.
const (
	msgInputError      = "Input error. Try again."
	msgNotANumber      = "Invalid input. Please enter a number."
	msgInvalidOption   = "Please enter a valid option."
	msgExiting         = "Exiting..."
	msgListFull        = "Contact list is full!"
	msgSaved           = "Contact saved!"
	msgSaveError       = "Error saving contacts!"
	msgNothingToDelete = "No contacts to delete. "
	msgInvalidNumber   = "Invalid contact number."
	msgDeleted         = "Contact deleted successfully!"
)

// errEndOfInput reports that the input stream is exhausted.
var errEndOfInput = errors.New("end of input")

// Loop is the menu state machine. It owns the store for its lifetime.
type Loop struct {
	store  *store.Store
	in     *bufio.Reader
	out    io.Writer
	styler render.Styler
	logger *slog.Logger
	state  State
}

// New creates a loop reading from in and writing to out. A nil styler
// renders plain text; a nil logger discards.
func New(st *store.Store, in io.Reader, out io.Writer, styler render.Styler, logger *slog.Logger) *Loop {
	if styler == nil {
		styler = render.Plain{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loop{
		store:  st,
		in:     bufio.NewReader(in),
		out:    out,
		styler: styler,
		logger: logger,
		state:  AwaitingInput,
	}
}

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Run steps until the loop exits.
func (l *Loop) Run() {
	for l.state != Exited {
		l.Step()
	}
}

// Step shows the menu, reads one option, and dispatches it. It returns the
// state after the step.
func (l *Loop) Step() State {
	if l.state == Exited {
		return l.state
	}

	l.writef("\nOptions:\n%s\nEnter option: ", render.Header(l.styler))

	line, err := l.readLine()
	if errors.Is(err, errEndOfInput) {
		l.logger.Debug("input closed")
		l.writeln("\n" + msgExiting)
		l.state = Exited
		return l.state
	}
	if err != nil {
		l.logger.Debug("read option failed", "error", err)
		l.writeln("\n" + msgInputError)
		return l.state
	}

	option, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		l.writeln("\n" + msgNotANumber)
		return l.state
	}

	if option == OptionExit {
		l.writeln("\n" + msgExiting)
		l.state = Exited
		return l.state
	}

	l.state = Dispatching
	l.logger.Debug("dispatch", "option", option)
	l.dispatch(option)
	if l.state == Dispatching {
		l.state = AwaitingInput
	}
	return l.state
}

func (l *Loop) dispatch(option int) {
	switch option {
	case OptionAdd:
		l.add()
	case OptionList:
		l.list()
	case OptionDelete:
		l.delete()
	default:
		l.writeln("\n" + msgInvalidOption)
	}
}

func (l *Loop) add() {
	if l.store.Full() {
		l.writeln("\n" + msgListFull)
		return
	}

	var c types.Contact
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter phone number: ", &c.Phone},
		{"Enter label (name): ", &c.Label},
		{"Enter company (optional): ", &c.Company},
		{"Enter email (optional): ", &c.Email},
	}
	for _, f := range fields {
		l.writef("%s", f.prompt)
		v, ok := l.readField()
		if !ok {
			return
		}
		*f.dst = v
	}

	err := l.store.Add(c)
	switch {
	case errors.Is(err, types.ErrListFull):
		l.writeln("\n" + msgListFull)
	case errors.Is(err, types.ErrSave):
		// The contact stays in memory.
		l.writeln("\n" + msgSaveError)
		l.writeln("\n" + msgSaved)
	case err != nil:
		l.writeln("\n" + err.Error())
	default:
		l.writeln("\n" + msgSaved)
	}
}

func (l *Loop) list() {
	l.writef("\n%s", render.Contacts(l.styler, l.store.List()))
}

func (l *Loop) delete() {
	if l.store.Len() == 0 {
		l.writeln("\n" + msgNothingToDelete)
		return
	}

	l.writef("Enter contact number to delete: ")
	v, ok := l.readField()
	if !ok {
		return
	}
	index, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		l.writeln(msgInvalidNumber)
		return
	}

	err = l.store.Delete(index)
	switch {
	case errors.Is(err, types.ErrInvalidIndex):
		l.writeln(msgInvalidNumber)
	case errors.Is(err, types.ErrSave):
		l.writeln("\n" + msgDeleted)
		l.writeln("\n" + msgSaveError)
	case err != nil:
		l.writeln("\n" + err.Error())
	default:
		l.writeln("\n" + msgDeleted)
	}
}

// readField reads an answer to a prompt. On end of input the loop exits;
// on other read errors the operation is abandoned. Either way ok is false.
func (l *Loop) readField() (string, bool) {
	v, err := l.readLine()
	if errors.Is(err, errEndOfInput) {
		l.writeln("\n" + msgExiting)
		l.state = Exited
		return "", false
	}
	if err != nil {
		l.writeln("\n" + msgInputError)
		return "", false
	}
	return v, true
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned normally; errEndOfInput follows it.
func (l *Loop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", errEndOfInput
			}
		} else {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Loop) writef(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

func (l *Loop) writeln(s string) {
	fmt.Fprintln(l.out, s)
}
