// Package tui implements the interactive confirmation review: extracted
// records are presented for per-field editing, per-item removal and final
// approval before anything is committed to the ledger.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jay870423/one-sentence/internal/model"
)

// Variant is the rendering mode, computed from the pending record count
// rather than re-derived per branch.
type Variant int

// Review variants.
const (
	VariantEmpty Variant = iota
	VariantSingle
	VariantBatch
)

// Field identifies one editable attribute of a pending record.
type Field int

// Editable fields, in focus order.
const (
	FieldAmount Field = iota
	FieldNote
	FieldDate
	FieldCategory
	FieldType
	fieldCount
)

func (f Field) label() string {
	switch f {
	case FieldAmount:
		return "Amount"
	case FieldNote:
		return "Note"
	case FieldDate:
		return "Date"
	case FieldCategory:
		return "Category"
	default:
		return "Type"
	}
}

// textEditable reports whether the field is edited through a text input;
// category and type cycle through fixed values instead.
func (f Field) textEditable() bool {
	return f == FieldAmount || f == FieldNote || f == FieldDate
}

// Model is the bubbletea model for the confirmation review.
type Model struct {
	theme      Theme
	keymap     KeyMap
	input      textinput.Model
	errMsg     string
	categories []string
	pending    []model.ParseResult
	variant    Variant
	cursor     int
	focus      Field
	width      int
	height     int
	editing    bool
	confirmed  bool
	canceled   bool
	quitting   bool
}

// NewModel creates a review over a deep copy of the pending records, so
// user edits can never corrupt the orchestrator's result.
func NewModel(pending []model.ParseResult, categories []string) Model {
	copied := make([]model.ParseResult, len(pending))
	copy(copied, pending)

	if len(categories) == 0 {
		categories = model.DefaultCategories
	}

	input := textinput.New()
	input.CharLimit = 64

	return Model{
		theme:      DefaultTheme,
		keymap:     DefaultKeyMap(),
		categories: categories,
		pending:    copied,
		variant:    variantFor(len(copied)),
		input:      input,
	}
}

func variantFor(count int) Variant {
	switch count {
	case 0:
		return VariantEmpty
	case 1:
		return VariantSingle
	default:
		return VariantBatch
	}
}

// Confirmed returns the reviewed records and whether the user approved them.
func (m Model) Confirmed() ([]model.ParseResult, bool) {
	if !m.confirmed {
		return nil, false
	}
	return m.pending, true
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.variant == VariantEmpty {
		return tea.Quit
	}
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.canceled = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Confirm):
		m.confirmed = true
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.pending)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keymap.NextField):
		m.focus = (m.focus + 1) % fieldCount
		return m, nil

	case key.Matches(msg, m.keymap.PrevField):
		m.focus = (m.focus + fieldCount - 1) % fieldCount
		return m, nil

	case key.Matches(msg, m.keymap.Remove):
		if m.variant == VariantBatch {
			return m.removeCurrent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Edit):
		return m.beginEdit()
	}

	return m, nil
}

// removeCurrent drops the record under the cursor. Removing the last
// remaining record closes the review with nothing to confirm.
func (m Model) removeCurrent() (tea.Model, tea.Cmd) {
	m.pending = append(m.pending[:m.cursor], m.pending[m.cursor+1:]...)
	if m.cursor >= len(m.pending) && m.cursor > 0 {
		m.cursor--
	}

	m.variant = variantFor(len(m.pending))
	if m.variant == VariantEmpty {
		m.canceled = true
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	record := &m.pending[m.cursor]

	switch m.focus {
	case FieldCategory:
		record.Category = m.nextCategory(record.Category)
		return m, nil
	case FieldType:
		record.Type = record.Type.Toggle()
		return m, nil
	}

	switch m.focus {
	case FieldAmount:
		m.input.SetValue(strconv.FormatFloat(record.Amount, 'f', -1, 64))
	case FieldNote:
		m.input.SetValue(record.Note)
	case FieldDate:
		m.input.SetValue(record.Date)
	}

	m.editing = true
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// nextCategory cycles through the vocabulary; unknown values restart at the
// beginning so drifted model output can be corrected.
func (m Model) nextCategory(current string) string {
	idx := model.CategoryIndex(m.categories, current)
	return m.categories[(idx+1)%len(m.categories)]
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil

	case "enter":
		if err := m.commitEdit(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) commitEdit() error {
	record := &m.pending[m.cursor]
	value := strings.TrimSpace(m.input.Value())

	switch m.focus {
	case FieldAmount:
		amount, err := strconv.ParseFloat(value, 64)
		if err != nil || amount < 0 {
			return fmt.Errorf("amount must be a non-negative number")
		}
		record.Amount = amount
	case FieldNote:
		record.Note = value
	case FieldDate:
		if !validISODate(value) {
			return fmt.Errorf("date must be YYYY-MM-DD")
		}
		record.Date = value
	}

	return nil
}

func validISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// View renders the review.
func (m Model) View() string {
	if m.quitting || m.variant == VariantEmpty {
		return ""
	}

	var b strings.Builder

	switch m.variant {
	case VariantSingle:
		b.WriteString(m.theme.Title.Render("Confirm record"))
		b.WriteString("\n")
		b.WriteString(m.renderRecord(0, true))
	case VariantBatch:
		b.WriteString(m.theme.Title.Render(fmt.Sprintf("Confirm %d records", len(m.pending))))
		b.WriteString("\n")
		for i := range m.pending {
			b.WriteString(m.renderRecord(i, i == m.cursor))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString(m.theme.Error.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderRecord(idx int, selected bool) string {
	record := m.pending[idx]

	typeStyle := m.theme.Expense
	if record.Type == model.TypeIncome {
		typeStyle = m.theme.Income
	}

	lines := make([]string, 0, int(fieldCount))
	for f := Field(0); f < fieldCount; f++ {
		value := ""
		switch f {
		case FieldAmount:
			value = strconv.FormatFloat(record.Amount, 'f', -1, 64)
		case FieldNote:
			value = record.Note
		case FieldDate:
			value = record.Date
		case FieldCategory:
			value = record.Category
		case FieldType:
			value = typeStyle.Render(string(record.Type))
		}

		label := m.theme.FieldLabel.Render(f.label())
		if selected && f == m.focus {
			label = m.theme.Focused.Render(fmt.Sprintf("%-10s", f.label()))
			if m.editing && f.textEditable() {
				value = m.input.View()
			}
		}

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, m.theme.FieldValue.Render(value)))
	}

	card := m.theme.Card
	if selected {
		card = m.theme.SelectedBox
	}
	return card.Render(strings.Join(lines, "\n"))
}

func (m Model) helpLine() string {
	parts := []string{
		"Tab: field",
		"Enter: edit/cycle",
		"y: confirm",
		"Esc: cancel",
	}
	if m.variant == VariantBatch {
		parts = append([]string{"↑/↓: record", "d: remove"}, parts...)
	}
	if m.editing {
		parts = []string{"Enter: apply", "Esc: abort edit"}
	}
	return strings.Join(parts, " · ")
}

// Run opens the review and blocks until the user confirms or cancels.
// It returns the reviewed records and whether they were approved.
func Run(pending []model.ParseResult, categories []string) ([]model.ParseResult, bool, error) {
	m := NewModel(pending, categories)
	if m.variant == VariantEmpty {
		return nil, false, nil
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, false, fmt.Errorf("review failed: %w", err)
	}

	reviewed, ok := final.(Model)
	if !ok {
		return nil, false, fmt.Errorf("unexpected model type %T", final)
	}

	records, ok := reviewed.Confirmed()
	return records, ok, nil
}
