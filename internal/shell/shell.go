package shell

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/dunamismax/imgconvert/internal/notify"
)

type Action string

const (
	ActionSelectFile   Action = "select_file"
	ActionChooseFormat Action = "choose_format"
	ActionConvert      Action = "convert"
	ActionQuit         Action = "quit"
)

type Tone int

const (
	ToneNeutral Tone = iota
	ToneAffirmative
	ToneNegative
)

// State is everything the menu shows between actions.
type State struct {
	FilePath string
	Format   domain.Format
	Status   string
	Tone     Tone
}

func (s State) FileLabel() string {
	if strings.TrimSpace(s.FilePath) == "" {
		return "No file selected"
	}
	return filepath.Base(s.FilePath)
}

// Prompter is the user-facing half of the shell.
type Prompter interface {
	ChooseAction(state State) (Action, error)
	// PickFile returns "" when the user backs out.
	PickFile(startDir string) (string, error)
	ChooseFormat(current domain.Format) (domain.Format, error)
	notify.Notifier
}

type Converter interface {
	Convert(ctx context.Context, req domain.ConversionRequest) domain.ConversionResult
}

type Shell struct {
	converter Converter
	sink      *notify.Sink
	prompter  Prompter
	startDir  string
	state     State
}

func New(converter Converter, sink *notify.Sink, prompter Prompter, startDir string) *Shell {
	return &Shell{
		converter: converter,
		sink:      sink,
		prompter:  prompter,
		startDir:  startDir,
		state:     State{Format: domain.DefaultFormat},
	}
}

func (s *Shell) State() State {
	return s.state
}

// Run drives the menu until the user quits or aborts.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		action, err := s.prompter.ChooseAction(s.state)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("choose action: %w", err)
		}

		switch action {
		case ActionSelectFile:
			err = s.SelectFile(ctx)
		case ActionChooseFormat:
			err = s.ChooseFormat()
		case ActionConvert:
			_, err = s.Convert(ctx)
		case ActionQuit:
			return nil
		default:
			err = fmt.Errorf("unknown action %q", action)
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) SelectFile(ctx context.Context) error {
	path, err := s.prompter.PickFile(s.startDir)
	if err != nil {
		return fmt.Errorf("pick file: %w", err)
	}
	if strings.TrimSpace(path) == "" {
		return nil
	}

	s.state.FilePath = path
	s.startDir = filepath.Dir(path)
	s.sink.Selected(ctx, path)
	return nil
}

func (s *Shell) ChooseFormat() error {
	format, err := s.prompter.ChooseFormat(s.state.Format)
	if err != nil {
		return fmt.Errorf("choose format: %w", err)
	}
	if !format.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	s.state.Format = format
	return nil
}

// Convert runs one conversion for the current selection. With no file
// selected it only warns: no log entry, no conversion.
func (s *Shell) Convert(ctx context.Context) (notify.Notice, error) {
	req := domain.ConversionRequest{
		SourcePath:   s.state.FilePath,
		TargetFormat: s.state.Format,
	}

	if errors.Is(req.Validate(), domain.ErrNoFileSelected) {
		notice := s.sink.NoFileSelected(ctx)
		return notice, s.show(ctx, notice)
	}

	result := s.converter.Convert(ctx, req)
	notice := s.sink.Report(ctx, result)

	s.state.Status = notice.Status
	s.state.Tone = ToneNegative
	if result.Succeeded() {
		s.state.Tone = ToneAffirmative
	}

	return notice, s.show(ctx, notice)
}

func (s *Shell) show(ctx context.Context, notice notify.Notice) error {
	if err := s.prompter.Notify(ctx, notice); err != nil && !errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("show notice: %w", err)
	}
	return nil
}
