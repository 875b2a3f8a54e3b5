package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/cesu8str"
	"github.com/wippyai/cesu8str/codec"
	"github.com/wippyai/cesu8str/errors"
	"github.com/wippyai/cesu8str/internal/config"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// playground transcodes the text typed so far on every keystroke. When
// decoding, the input is read as hex bytes.
type playground struct {
	err     error
	input   textinput.Model
	source  []byte
	result  []byte
	variant cesu8str.Variant
	dir     cesu8str.Direction
}

func newPlayground(cfg config.Config) *playground {
	ti := textinput.New()
	ti.Width = 60
	ti.Focus()
	m := &playground{input: ti, variant: cfg.Variant(), dir: cfg.Direction()}
	m.setPrompt()
	return m
}

func (m *playground) Init() tea.Cmd {
	return textinput.Blink
}

func (m *playground) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.variant == cesu8str.Java {
				m.variant = cesu8str.Standard
			} else {
				m.variant = cesu8str.Java
			}
			m.refresh()
			return m, nil

		case "ctrl+d":
			if m.dir == cesu8str.Decode {
				m.dir = cesu8str.Encode
				m.input.SetValue(string(m.result))
			} else {
				m.dir = cesu8str.Decode
				m.input.SetValue(fmt.Sprintf("% X", m.result))
			}
			m.setPrompt()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *playground) setPrompt() {
	if m.dir == cesu8str.Decode {
		m.input.Prompt = "hex> "
		m.input.Placeholder = "ED A0 BD ED B8 80"
	} else {
		m.input.Prompt = "text> "
		m.input.Placeholder = "type something"
	}
}

// refresh recomputes the result for the current input.
func (m *playground) refresh() {
	m.err = nil
	m.source, m.result = nil, nil

	if m.dir == cesu8str.Encode {
		m.source = []byte(m.input.Value())
		m.result, m.err = codec.EncodeBytes(m.source, m.variant)
		return
	}

	src, err := parseHex(m.input.Value())
	if err != nil {
		m.err = err
		return
	}
	m.source = src
	m.result, m.err = codec.DecodeBytes(src, m.variant)
}

func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' || r == ':' {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(strings.ToLower(s), "0x", "")
	p, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse hex")
	}
	return p, nil
}

func (m *playground) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CESU-8 Playground"))
	b.WriteString(" ")
	b.WriteString(m.dir.String())
	b.WriteString(" / ")
	b.WriteString(m.variant.String())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	srcName, dstName := "UTF-8", m.encodedName()
	if m.dir == cesu8str.Decode {
		srcName, dstName = dstName, "UTF-8"
	}

	if len(m.source) > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-13s %3d bytes ", srcName, len(m.source))))
		b.WriteString(fmt.Sprintf("% X\n", m.source))
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	} else if len(m.result) > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-13s %3d bytes ", dstName, len(m.result))))
		b.WriteString(resultStyle.Render(fmt.Sprintf("% X", m.result)))
		b.WriteString("\n")
		if m.dir == cesu8str.Decode {
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-23s ", "text")))
			b.WriteString(resultStyle.Render(strconv.Quote(string(m.result))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab variant • ctrl+d direction • esc quit"))
	return b.String()
}

func (m *playground) encodedName() string {
	if m.variant == cesu8str.Java {
		return "Modified UTF-8"
	}
	return "CESU-8"
}

func (a *app) interactive(cfg config.Config) error {
	if !isTerminal(a.stdin) {
		return errors.InvalidInput(errors.PhaseConfig, "interactive mode needs a terminal on stdin")
	}
	p := tea.NewProgram(newPlayground(cfg),
		tea.WithAltScreen(),
		tea.WithInput(a.stdin),
		tea.WithOutput(a.stdout))
	_, err := p.Run()
	return err
}
