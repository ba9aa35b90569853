package hosting

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/contre95/mediashelf/src/features/config"
	"github.com/contre95/mediashelf/src/features/exporting"
	"github.com/contre95/mediashelf/src/features/importing"
	"github.com/contre95/mediashelf/src/features/library"
	"github.com/contre95/mediashelf/src/features/shell"
	"github.com/contre95/mediashelf/src/media"
)

// ShellCommandHandler interface that each feature implements
type ShellCommandHandler interface {
	HandleCommand(s *shell.Session, command string, args []string) ([]*media.Record, error)
	GetCommands() map[string]string // Returns command -> description mapping
}

const helpText = `	help                              - this text
	load <filename> ...               - load file into the collection
	list <term> ...                   - list all the files that have the term specified
	list                              - list all the files in the collection
	add <number> <key> <value> ...    - add some metadata to a file
	set <number> <key> <value> ...    - this is really a del followed by an add
	del <number> <key> ...            - removes a metadata item from a file
	save-search <filename>            - saves the last list results to a file
	save <filename>                   - saves the whole collection to a file
	test                              - runs unit tests for program
	quit                              - quit the program`

// Shell is the interactive command line.
type Shell struct {
	config   *config.Manager
	handlers map[string]ShellCommandHandler
}

// NewShell creates a shell with every feature's commands registered.
func NewShell(cfg *config.Manager, libraryService *library.Service, importingService *importing.Service, exportingService *exporting.Service) *Shell {
	s := &Shell{
		config:   cfg,
		handlers: make(map[string]ShellCommandHandler),
	}
	s.RegisterHandler("library", library.NewShellHandler(libraryService))
	s.RegisterHandler("importing", importing.NewShellHandler(importingService))
	s.RegisterHandler("exporting", exporting.NewShellHandler(exportingService, libraryService))
	return s
}

// RegisterHandler registers a feature's command handler under each of its
// commands.
func (s *Shell) RegisterHandler(feature string, handler ShellCommandHandler) {
	for command := range handler.GetCommands() {
		s.handlers[command] = handler
	}
	slog.Debug("Registered shell handler", "feature", feature)
}

// Run reads commands from in until end of input or quit.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	session := shell.NewSession(ctx, in, out, s.config.Get().Shell.Prompt)
	slog.Info("Shell started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := session.ReadLine()
		if !ok {
			session.Println()
			return nil
		}

		command, args := shell.Tokenize(line)
		results, err := s.dispatch(session, command, args)
		if errors.Is(err, shell.ErrQuit) {
			slog.Info("Shell stopped")
			return nil
		}
		if err != nil {
			slog.Debug("Shell command failed", "command", command, "error", err)
			session.Println(shell.Message(err, command))
			continue
		}
		session.SetLast(results)
		session.ShowResults()
	}
}

func (s *Shell) dispatch(session *shell.Session, command string, args []string) ([]*media.Record, error) {
	switch command {
	case "":
		return nil, shell.ErrNoCommand
	case "help":
		session.Println(helpText)
		return nil, nil
	case "test":
		return nil, shell.ErrUnimplementedCommand
	}
	handler, ok := s.handlers[command]
	if !ok {
		return nil, shell.ErrUnknownCommand
	}
	return handler.HandleCommand(session, command, args)
}
