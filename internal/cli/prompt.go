package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/complabel/config"
)

var (
	// ErrPromptClosed is returned when input ends before the prompt is answered.
	ErrPromptClosed = errors.New("cli: input closed during prompt")
	// ErrPromptAborted is returned when the prompt is left with ctrl+c or esc.
	ErrPromptAborted = errors.New("cli: prompt aborted")
)

// keyEOT is the ctrl+d byte eotReader emits when its source is exhausted.
const keyEOT = 0x04

const questionDefaults = "Use default dimension and density? (y/n): "

// =============================================================================
// promptModel - dimension and density dialogue
// =============================================================================

type promptStep int

const (
	stepDefaults promptStep = iota
	stepDimension
	stepDensity
	stepDone
)

// promptModel is the bubbletea model behind Prompter. Each step re-asks until
// its answer parses and is in range.
type promptModel struct {
	step       promptStep
	input      []rune
	transcript string

	useDefault bool
	dimension  int
	density    float64
	err        error
}

func (m promptModel) Init() tea.Cmd {
	return nil
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.step == stepDone || m.err != nil {
		// Keys queued behind the one that ended the dialogue are dropped.
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.err = ErrPromptAborted
		return m, tea.Quit
	case tea.KeyCtrlD:
		m.err = ErrPromptClosed
		return m, tea.Quit
	case tea.KeyEnter, tea.KeyCtrlJ:
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, key.Runes...)
	}

	return m, nil
}

// submit records the current answer and advances when it is acceptable.
func (m promptModel) submit() (tea.Model, tea.Cmd) {
	answer := string(m.input)
	m.transcript += m.question() + answer + "\n"
	m.input = nil

	switch m.step {
	case stepDefaults:
		switch yesNo(answer) {
		case 'y':
			m.useDefault = true
			m.step = stepDone
			return m, tea.Quit
		case 'n':
			m.transcript += "\n"
			m.step = stepDimension
		}
	case stepDimension:
		var dim int
		if _, err := fmt.Sscanf(answer, "%d", &dim); err == nil && config.DimensionInRange(dim) {
			m.dimension = dim
			m.step = stepDensity
		}
	case stepDensity:
		var density float64
		if _, err := fmt.Sscanf(answer, "%g", &density); err == nil && config.DensityInRange(density) {
			m.density = density
			m.step = stepDone
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m promptModel) question() string {
	switch m.step {
	case stepDefaults:
		return questionDefaults
	case stepDimension:
		return fmt.Sprintf("Please enter a dimension between %d and %d: ",
			config.MinDimension, config.MaxDimension)
	case stepDensity:
		return "Please enter a density between 0 and 1: "
	}
	return ""
}

func (m promptModel) View() string {
	return m.transcript + m.question() + string(m.input)
}

// yesNo returns the lower-cased first letter of the answer, or 0 if blank.
func yesNo(answer string) rune {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(answer))
	if r == utf8.RuneError {
		return 0
	}
	return unicode.ToLower(r)
}

// =============================================================================
// Prompter
// =============================================================================

// Prompter asks for the image dimension and density. On a terminal the
// dialogue is drawn live; otherwise the answers are read from the input
// stream and the transcript is written once the dialogue ends.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Ask fills cfg.Dimension and cfg.Density. Answering yes to the first
// question keeps the built-in defaults. Only the first letter of that answer
// and the leading number of the others are read.
func (p *Prompter) Ask(ctx context.Context, cfg *config.Config) error {
	fmt.Fprint(p.out, "Welcome to the Image Component Labeling program!\n\n")

	live := isTerminal(p.in) && isTerminal(p.out)
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(p.out),
		tea.WithoutSignalHandler(),
	}
	if live {
		opts = append(opts, tea.WithInput(p.in))
	} else {
		opts = append(opts, tea.WithInput(&eotReader{r: p.in}), tea.WithoutRenderer())
	}

	final, err := tea.NewProgram(promptModel{}, opts...).Run()
	if err != nil {
		return fmt.Errorf("cli: prompt: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok {
		return fmt.Errorf("cli: prompt: unexpected model %T", final)
	}
	if !live {
		fmt.Fprint(p.out, m.View())
	}
	if m.err != nil {
		return m.err
	}

	if m.useDefault {
		cfg.Dimension = config.DefaultDimension
		cfg.Density = config.DefaultDensity
	} else {
		cfg.Dimension, cfg.Density = m.dimension, m.density
	}
	fmt.Fprintf(p.out, "\nAccepted Values\nDimension: %d\nDensity: %.2f\n", cfg.Dimension, cfg.Density)

	return nil
}

// eotReader passes r through and, once r is exhausted, yields a single
// ctrl+d byte so the dialogue ends instead of waiting for more keys.
type eotReader struct {
	r    io.Reader
	sent bool
}

func (e *eotReader) Read(b []byte) (int, error) {
	if e.sent {
		return 0, io.EOF
	}
	n, err := e.r.Read(b)
	if n > 0 {
		return n, nil
	}
	if errors.Is(err, io.EOF) && len(b) > 0 {
		e.sent = true
		b[0] = keyEOT
		return 1, nil
	}

	return n, err
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}
