package cmd

import (
	"fmt"
	"strings"

	"github.com/blacktop/go-asciiart"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// control identifies a row of the adjustment panel
type control int

const (
	controlSaturation control = iota
	controlContrast
	controlBrightness
	controlInvert
	numControls
)

var controlNames = [numControls]string{"Saturation", "Contrast", "Brightness", "Invert"}

// prompt identifies what the path input is collecting
type prompt int

const (
	promptNone prompt = iota
	promptSave
	promptOpen
)

const (
	sliderWidth  = 15
	controlWidth = 34
)

type editor struct {
	session  *asciiart.Session
	frame    asciiart.Frame
	selected control

	viewport    viewport.Model
	input       textinput.Model
	prompt      prompt
	preview     *asciiart.PreviewWidget
	showPreview bool

	htmlPath string
	status   string
	err      error
	width    int
	height   int
}

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	accentColor  = lipgloss.Color("#04B575")
	textColor    = lipgloss.Color("#FAFAFA")
	mutedColor   = lipgloss.Color("#626262")
	errorColor   = lipgloss.Color("#FF5F87")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			PaddingLeft(2).
			PaddingRight(2)

	panelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor)

	selectedStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(primaryColor).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(textColor)

	legendStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	legendKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

func newEditor(s *asciiart.Session, htmlPath string) editor {
	input := textinput.New()
	input.CharLimit = 512

	m := editor{
		session:     s,
		viewport:    viewport.New(0, 0),
		input:       input,
		preview:     asciiart.NewPreviewWidget(),
		showPreview: true,
		htmlPath:    htmlPath,
	}
	m.apply(s.Params())
	return m
}

func (m editor) Init() tea.Cmd {
	return nil
}

// apply stores p in the session and refreshes the text and preview.
func (m *editor) apply(p asciiart.Params) {
	frame, err := m.session.SetParams(p)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.frame = frame
	m.viewport.SetContent(frame.Grid.String())
	m.preview.SetImage(frame.Preview)
}

// step moves the selected control by delta slider steps.
func (m *editor) step(delta int) {
	p := m.session.Params()
	switch m.selected {
	case controlSaturation:
		p.Saturation = asciiart.StepFactor(p.Saturation, delta)
	case controlContrast:
		p.Contrast = asciiart.StepFactor(p.Contrast, delta)
	case controlBrightness:
		p.Brightness = asciiart.StepFactor(p.Brightness, delta)
	case controlInvert:
		p.Invert = !p.Invert
	}
	m.apply(p)
}

func (m editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k", "shift+tab":
			m.selected = (m.selected + numControls - 1) % numControls
		case "down", "j", "tab":
			m.selected = (m.selected + 1) % numControls
		case "left", "h", "-":
			m.step(-1)
		case "right", "l", "+", "=":
			m.step(1)
		case "i", " ":
			p := m.session.Params()
			p.Invert = !p.Invert
			m.apply(p)
		case "r":
			m.apply(asciiart.DefaultParams())
			m.status = "Reset adjustments"
		case "p":
			m.showPreview = !m.showPreview
		case "c":
			if err := m.session.Copy(); err != nil {
				m.err = err
			} else {
				m.err = nil
				m.status = "Copied ASCII art to clipboard"
			}
		case "s":
			cmd = m.startPrompt(promptSave, m.htmlPath)
		case "o":
			cmd = m.startPrompt(promptOpen, "")
		default:
			m.viewport, cmd = m.viewport.Update(msg)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	default:
		m.viewport, cmd = m.viewport.Update(msg)
	}

	return m, cmd
}

func (m *editor) startPrompt(p prompt, value string) tea.Cmd {
	m.prompt = p
	if p == promptSave {
		m.input.Prompt = "Save HTML as: "
	} else {
		m.input.Prompt = "Open image: "
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m editor) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.prompt = promptNone
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		p := m.prompt
		m.prompt = promptNone
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if p == promptSave {
			m.save(value)
		} else {
			m.open(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editor) save(path string) {
	saved, err := m.session.SaveHTML(path)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.htmlPath = saved
	m.status = "Saved " + saved
}

func (m *editor) open(path string) {
	if err := m.session.Open(path); err != nil {
		m.err = err
		return
	}
	m.apply(m.session.Params())
	if m.err == nil {
		m.status = "Opened " + path
	}
}

// resize lays out the panels for the current window size.
func (m *editor) resize() {
	// title, status and legend lines plus the panel borders
	panelHeight := max(m.height-5, 1)
	textWidth := max(m.width-controlWidth-4, 1)

	m.viewport.Width = textWidth
	m.viewport.Height = panelHeight

	// the controls take 4 lines and a separator
	m.preview.SetSize(controlWidth, max(panelHeight-6, 0))
}

func (m editor) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Width(m.width).Render(m.title()))
	b.WriteString("\n")

	left := panelBorderStyle.
		Width(controlWidth).
		Height(m.viewport.Height).
		Render(m.controlsView())
	right := panelBorderStyle.
		Width(m.viewport.Width).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	switch {
	case m.prompt != promptNone:
		b.WriteString(m.input.View())
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	default:
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(legendStyle.Render(m.legend()))

	return b.String()
}

func (m editor) title() string {
	title := "ASCII Art Editor"
	if m.frame.Grid != nil {
		title += fmt.Sprintf(" - %dx%d", m.frame.Grid.Width, m.frame.Grid.Height)
	}
	return title
}

func (m editor) controlsView() string {
	p := m.session.Params()
	values := [numControls]float64{p.Saturation, p.Contrast, p.Brightness}

	lines := make([]string, 0, numControls+2)
	for c := control(0); c < numControls; c++ {
		var line string
		if c == controlInvert {
			box := "[ ]"
			if p.Invert {
				box = "[x]"
			}
			line = fmt.Sprintf("%-11s %s", controlNames[c], box)
		} else {
			line = fmt.Sprintf("%-11s %s %.1f", controlNames[c], slider(values[c]), values[c])
		}
		if c == m.selected {
			lines = append(lines, selectedStyle.Render(line))
		} else {
			lines = append(lines, itemStyle.Render(line))
		}
	}

	if m.showPreview {
		if out, err := m.preview.Render(); err == nil && out != "" {
			lines = append(lines, "", out)
		}
	}
	return strings.Join(lines, "\n")
}

// slider draws value as a bar over [MinFactor, MaxFactor].
func slider(value float64) string {
	frac := (value - asciiart.MinFactor) / (asciiart.MaxFactor - asciiart.MinFactor)
	filled := min(max(int(frac*sliderWidth+0.5), 0), sliderWidth)
	return strings.Repeat("█", filled) + strings.Repeat("░", sliderWidth-filled)
}

func (m editor) legend() string {
	legend := []string{
		legendKeyStyle.Render("↑/↓") + " select",
		legendKeyStyle.Render("←/→") + " adjust",
		legendKeyStyle.Render("i") + " invert",
		legendKeyStyle.Render("r") + " reset",
		legendKeyStyle.Render("p") + " preview",
		legendKeyStyle.Render("c") + " copy",
		legendKeyStyle.Render("s") + " save html",
		legendKeyStyle.Render("o") + " open",
		legendKeyStyle.Render("q") + " quit",
	}
	return strings.Join(legend, " • ")
}
