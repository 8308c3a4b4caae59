package shell

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dunamismax/imgconvert/internal/domain"
	"github.com/dunamismax/imgconvert/internal/notify"
)

const appTitle = "File Conversion Tool"

var (
	neutralStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	affirmativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	negativeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

// HuhPrompter renders the shell as terminal forms.
type HuhPrompter struct {
	theme *huh.Theme
}

func NewHuhPrompter(themeName string) *HuhPrompter {
	return &HuhPrompter{theme: Theme(themeName)}
}

// Theme maps a configured name onto a huh theme. Unknown names fall back to charm.
func Theme(name string) *huh.Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base":
		return huh.ThemeBase()
	case "base16":
		return huh.ThemeBase16()
	case "dracula":
		return huh.ThemeDracula()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	default:
		return huh.ThemeCharm()
	}
}

func (p *HuhPrompter) ChooseAction(state State) (Action, error) {
	var action Action
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title(appTitle).
				Description(Describe(state)).
				Options(
					huh.NewOption("Select File", ActionSelectFile),
					huh.NewOption("Output Format: "+state.Format.String(), ActionChooseFormat),
					huh.NewOption("Convert", ActionConvert),
					huh.NewOption("Quit", ActionQuit),
				).
				Value(&action),
		),
	).WithTheme(p.theme).Run()
	if err != nil {
		return "", err
	}
	return action, nil
}

func (p *HuhPrompter) PickFile(startDir string) (string, error) {
	var path string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Select File").
				Description("Enter opens a folder or picks a file. Esc goes back.").
				CurrentDirectory(startDir).
				FileAllowed(true).
				DirAllowed(false).
				Picking(true).
				Value(&path),
		),
	).WithTheme(p.theme).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

func (p *HuhPrompter) ChooseFormat(current domain.Format) (domain.Format, error) {
	options := make([]huh.Option[domain.Format], 0, len(domain.SupportedFormats()))
	for _, format := range domain.SupportedFormats() {
		options = append(options, huh.NewOption(format.String(), format))
	}

	selected := current
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Format]().
				Title("Output Format:").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(p.theme).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return current, nil
	}
	if err != nil {
		return current, err
	}
	return selected, nil
}

// Notify blocks until the user acknowledges the notice.
func (p *HuhPrompter) Notify(_ context.Context, notice notify.Notice) error {
	var ack string
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(noticeStyle(notice.Kind).Render(notice.Title)).
				Description(notice.Body).
				Options(huh.NewOption("OK", "ok")).
				Value(&ack),
		),
	).WithTheme(p.theme).Run()
}

// Describe renders the selected file and the last status line.
func Describe(state State) string {
	var b strings.Builder
	b.WriteString("File: ")
	b.WriteString(state.FileLabel())
	if state.Status != "" {
		b.WriteString("\n")
		b.WriteString(toneStyle(state.Tone).Render(state.Status))
	}
	return b.String()
}

func toneStyle(tone Tone) lipgloss.Style {
	switch tone {
	case ToneAffirmative:
		return affirmativeStyle
	case ToneNegative:
		return negativeStyle
	default:
		return neutralStyle
	}
}

func noticeStyle(kind string) lipgloss.Style {
	switch kind {
	case notify.KindError:
		return negativeStyle
	case notify.KindWarning:
		return warningStyle
	default:
		return affirmativeStyle
	}
}
