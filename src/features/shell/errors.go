package shell

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameters    = errors.New("invalid parameters")
	ErrMissingResultSet     = errors.New("missing result set")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrUnimplementedCommand = errors.New("unimplemented command")
	ErrNoCommand            = errors.New("no command")
	ErrEmptyLibrary         = errors.New("empty library")

	// ErrQuit ends the session.
	ErrQuit = errors.New("quit")
)

// Message returns the text shown to the user when command fails with err.
func Message(err error, command string) string {
	switch {
	case errors.Is(err, ErrNoCommand):
		return `No command given -- see "help" for details.`
	case errors.Is(err, ErrUnknownCommand):
		return fmt.Sprintf(`Command "%s" not found -- see "help" for details.`, command)
	case errors.Is(err, ErrInvalidParameters):
		return fmt.Sprintf(`Invalid parameters for "%s" -- see "help" for details.`, command)
	case errors.Is(err, ErrUnimplementedCommand):
		return fmt.Sprintf(`The "%s" command is not implemented.`, command)
	case errors.Is(err, ErrMissingResultSet):
		return "No previous results to work from."
	case errors.Is(err, ErrEmptyLibrary):
		return `The library is empty -- see "help" for how to load files.`
	default:
		return fmt.Sprintf(`The "%s" command failed: %v`, command, err)
	}
}
