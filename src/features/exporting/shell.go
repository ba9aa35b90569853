package exporting

import (
	"errors"
	"fmt"

	"github.com/contre95/mediashelf/src/features/shell"
	"github.com/contre95/mediashelf/src/infra/files"
	"github.com/contre95/mediashelf/src/media"
)

// RecordSource provides the records a full save writes.
type RecordSource interface {
	All() []*media.Record
}

// ShellHandler handles shell commands for the exporting feature
type ShellHandler struct {
	service *Service
	source  RecordSource
}

// NewShellHandler creates a new shell handler for the exporting feature
func NewShellHandler(service *Service, source RecordSource) *ShellHandler {
	return &ShellHandler{service: service, source: source}
}

// GetCommands returns the available commands for this handler
func (h *ShellHandler) GetCommands() map[string]string {
	return map[string]string{
		"save":        "saves the whole collection to a file",
		"save-search": "saves the last list results to a file",
		"quit":        "quit the program",
		"exit":        "quit the program",
	}
}

// HandleCommand processes exporting-related shell commands
func (h *ShellHandler) HandleCommand(s *shell.Session, command string, args []string) ([]*media.Record, error) {
	switch command {
	case "save":
		if len(args) != 1 {
			return nil, shell.ErrInvalidParameters
		}
		return nil, h.save(s, args[0], h.source.All())
	case "save-search":
		if len(s.Last()) == 0 {
			return nil, shell.ErrMissingResultSet
		}
		if len(args) != 1 {
			return nil, shell.ErrInvalidParameters
		}
		return nil, h.save(s, args[0], s.Last())
	case "quit", "exit":
		return nil, h.quit(s)
	default:
		return nil, shell.ErrUnknownCommand
	}
}

// save writes records to filename. When the file exists and the configured
// policy is fail, the user is asked for another name until a free one is
// given or input ends.
func (h *ShellHandler) save(s *shell.Session, filename string, records []*media.Record) error {
	policy := h.service.DefaultPolicy()
	for {
		written, err := h.service.Write(s.Context(), filename, records, policy)
		if errors.Is(err, ErrFileExists) {
			resolved, _ := files.ResolvePath(filename)
			answer, ok := s.Ask(fmt.Sprintf("The file \"%s\" already exists -- please enter another filename:", resolved))
			if !ok {
				return err
			}
			filename = answer
			continue
		}
		if err != nil {
			return err
		}
		s.Printf("Data has been successfully saved to %s.\n", written)
		return nil
	}
}

func (h *ShellHandler) quit(s *shell.Session) error {
	if len(s.Last()) == 0 {
		return shell.ErrQuit
	}

	answer, ok := s.Ask("Your results from the previous search have not been saved. Would you like to save them before exiting? (y/n)")
	for ok && answer != "y" && answer != "n" {
		answer, ok = s.Ask(fmt.Sprintf("\"%s\" is not a valid response -- please enter 'y' for yes or 'n' for no.", answer))
	}
	if !ok || answer == "n" {
		return shell.ErrQuit
	}

	path, ok := s.Ask("Please enter the directory you would like your file saved in: ")
	if !ok {
		return shell.ErrQuit
	}
	if err := h.save(s, path, s.Last()); err != nil {
		s.Println(shell.Message(err, "quit"))
	}
	return shell.ErrQuit
}
