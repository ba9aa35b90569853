package importing

import (
	"errors"

	"github.com/contre95/mediashelf/src/features/shell"
	"github.com/contre95/mediashelf/src/infra/files"
	"github.com/contre95/mediashelf/src/media"
)

// ShellHandler handles shell commands for the importing feature
type ShellHandler struct {
	service *Service
}

// NewShellHandler creates a new shell handler for the importing feature
func NewShellHandler(service *Service) *ShellHandler {
	return &ShellHandler{service: service}
}

// GetCommands returns the available commands for this handler
func (h *ShellHandler) GetCommands() map[string]string {
	return map[string]string{
		"load": "load file into the collection",
	}
}

// HandleCommand loads every named file and returns the records accepted.
func (h *ShellHandler) HandleCommand(s *shell.Session, command string, args []string) ([]*media.Record, error) {
	if command != "load" {
		return nil, shell.ErrUnknownCommand
	}
	if len(args) == 0 {
		return nil, shell.ErrInvalidParameters
	}

	var loaded []*media.Record
	for _, filename := range args {
		report, err := h.service.ReadReport(s.Context(), filename)
		if errors.Is(err, ErrInvalidFilepath) {
			resolved, _ := files.ResolvePath(filename)
			s.Printf("File path: \"%s\" does not exist -- please try again with a valid path.\n", resolved)
			continue
		}
		if err != nil {
			s.Printf("\tIssue with %s: %v\n", filename, err)
			continue
		}
		printRejections(s, filename, report.Rejections)
		loaded = append(loaded, report.Accepted...)
	}
	return loaded, nil
}

func printRejections(s *shell.Session, filename string, rejections []Rejection) {
	if len(rejections) == 0 {
		return
	}
	s.Printf("> Files not successfully imported for %s:\n\n", filename)
	for _, rejection := range rejections {
		if rejection.Fullpath != "" {
			s.Printf("\t%s:\n", rejection.Fullpath)
		} else {
			s.Println("\tThis piece of media did not contain a path -- it was not added to the library.")
		}
		for _, reason := range rejection.Reasons {
			s.Printf("\t* %s\n", reason)
		}
		s.Println()
	}
}
