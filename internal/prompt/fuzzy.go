// Package prompt implements the game choosers used by the get-achievements
// command: an interactive fuzzy list and a non-interactive closest match.
package prompt

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 20
)

type item struct {
	index int
	label string
}

func (i item) Title() string       { return i.label }
func (i item) Description() string { return "" }
func (i item) FilterValue() string { return i.label }

type keyMap struct {
	choose key.Binding
	cancel key.Binding
}

var keys = keyMap{
	choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// chooserModel wraps a filterable list and records the outcome.
type chooserModel struct {
	list      list.Model
	chosen    int
	done      bool
	cancelled bool
}

func newChooserModel(prompt string, labels []string) chooserModel {
	items := make([]list.Item, len(labels))
	for i, label := range labels {
		items[i] = item{index: i, label: label}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = prompt
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.choose}
	}

	return chooserModel{list: l, chosen: -1}
}

func (m chooserModel) Init() tea.Cmd {
	return nil
}

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// While typing a filter, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			if msg.String() == "ctrl+c" {
				m.cancelled = true
				m.done = true
				return m, tea.Quit
			}
			break
		}

		switch {
		case key.Matches(msg, keys.choose):
			if selected, ok := m.list.SelectedItem().(item); ok {
				m.chosen = selected.index
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, keys.cancel):
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m chooserModel) View() string {
	if m.done {
		return ""
	}
	return appStyle.Render(m.list.View())
}

// Fuzzy lets the user pick from a filterable list in the terminal.
type Fuzzy struct {
	in  io.Reader
	out io.Writer
}

func NewFuzzy(in io.Reader, out io.Writer) *Fuzzy {
	return &Fuzzy{in: in, out: out}
}

func (f *Fuzzy) Choose(ctx context.Context, prompt string, labels []string) (int, bool, error) {
	if len(labels) == 0 {
		return 0, false, nil
	}

	p := tea.NewProgram(
		newChooserModel(prompt, labels),
		tea.WithContext(ctx),
		tea.WithInput(f.in),
		tea.WithOutput(f.out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("running game chooser: %w", err)
	}

	m, ok := final.(chooserModel)
	if !ok || m.cancelled || m.chosen < 0 {
		return 0, false, nil
	}
	return m.chosen, true, nil
}
