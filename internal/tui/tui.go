package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"insightmix/internal/compat"
	"insightmix/internal/core"
	"insightmix/internal/generate"
	"insightmix/internal/logger"
	"insightmix/internal/mix"
	"insightmix/internal/profiles"
	"insightmix/internal/recipes"
	"insightmix/internal/scoring"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PreferenceSaver persists view preferences on change. Last write wins.
type PreferenceSaver interface {
	SaveViewPreferences(prefs core.ViewPreferences) error
}

// typeFilters is the cycle order for the type filter key.
var typeFilters = []string{
	mix.FilterAll,
	string(core.InsightCustomer),
	string(core.InsightMarket),
	string(core.InsightCompetition),
	string(core.InsightLocal),
	string(core.InsightOpportunity),
}

// generateDoneMsg reports the outcome of a generation hand-off.
type generateDoneMsg struct {
	content string
	err     error
}

// model is the Power Mode screen state: the normalized cards, the user's
// mix, the active filter, and transient display state.
type model struct {
	cards     []core.InsightCard
	selection *mix.Selection
	filter    string
	cursor    int
	width     int
	height    int

	prefs   core.ViewPreferences
	saver   PreferenceSaver
	gen     generate.Generator
	genBusy bool
	status  string

	quitting bool
}

// Options configures the Power Mode screen.
type Options struct {
	Cards       []core.InsightCard
	Preferences core.ViewPreferences
	Saver       PreferenceSaver    // Optional; nil disables persistence
	Generator   generate.Generator // Optional; nil disables the generate action
	Filter      string             // Initial type filter; empty means "all"
}

// InitialModel returns the initial Power Mode state.
func InitialModel(opts Options) model {
	filter := opts.Filter
	if filter == "" {
		filter = mix.FilterAll
	}
	return model{
		cards:     opts.Cards,
		selection: mix.NewSelection(),
		filter:    filter,
		prefs:     opts.Preferences,
		saver:     opts.Saver,
		gen:       opts.Generator,
	}
}

// Init is the first command that will be run.
func (m model) Init() tea.Cmd {
	return nil
}

// visible returns the filtered, ordered cards currently on screen.
func (m model) visible() []core.InsightCard {
	return mix.DisplayOrder(m.cards, m.selection, m.filter)
}

// Update handles messages and updates the model accordingly.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case generateDoneMsg:
		m.genBusy = false
		if msg.err != nil {
			// Failure is logged and swallowed; the mix stays intact so
			// the user can retry.
			logger.Error("Content generation failed", msg.err)
			m.status = "Generation failed, mix unchanged. Press g to retry."
		} else {
			m.status = fmt.Sprintf("Generated %d characters of content.", len(msg.content))
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}

		case " ", "enter":
			visible := m.visible()
			if m.cursor < len(visible) {
				m.selection.Toggle(visible[m.cursor].ID)
				m.status = ""
			}

		case "f":
			m.filter = nextFilter(m.filter)
			m.cursor = 0

		case "c":
			m.selection.Clear()
			m.status = ""

		case "p":
			m.prefs.PanelCollapsed = !m.prefs.PanelCollapsed
			m.savePrefs()

		case "1", "2", "3", "4", "5":
			catalog := recipes.Catalog()
			idx := int(msg.String()[0] - '1')
			if idx < len(catalog) {
				recipe := catalog[idx]
				m.selection.ReplaceAll(recipes.Apply(recipe, m.cards))
				m.status = fmt.Sprintf("%s %s: %d insights selected", recipe.Icon, recipe.Name, m.selection.Len())
			}

		case "g":
			if m.gen != nil && !m.selection.Empty() && !m.genBusy {
				m.genBusy = true
				m.status = "Generating..."
				return m, m.generateCmd()
			}
		}
	}

	return m, nil
}

// generateCmd hands the current mix to the content generator.
func (m model) generateCmd() tea.Cmd {
	ids := m.selection.IDs()
	cards := m.selection.Cards(m.cards)
	gen := m.gen
	return func() tea.Msg {
		result, err := gen.Generate(context.Background(), generate.Request{
			InsightIDs: ids,
			Cards:      cards,
		})
		if err != nil {
			return generateDoneMsg{err: err}
		}
		return generateDoneMsg{content: result.Content}
	}
}

func (m *model) savePrefs() {
	if m.saver == nil {
		return
	}
	if err := m.saver.SaveViewPreferences(m.prefs); err != nil {
		logger.Warn("Failed to persist view preferences", "error", err.Error())
	}
}

func nextFilter(current string) string {
	for i, f := range typeFilters {
		if f == current {
			return typeFilters[(i+1)%len(typeFilters)]
		}
	}
	return mix.FilterAll
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	synergyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("84"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// View renders the Power Mode screen.
func (m model) View() string {
	if m.quitting {
		return "Quitting...\n"
	}

	docStyle := lipgloss.NewStyle().Margin(1, 2)
	paneWidth := m.width/2 - 5
	if paneWidth < 30 {
		paneWidth = 30
	}
	listStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(paneWidth)
	detailStyle := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Padding(1).Width(paneWidth)

	visible := m.visible()
	leftPane := listStyle.Render(m.renderList(visible))
	rightPane := detailStyle.Render(m.renderDetail(visible) + "\n\n" + m.renderMixPanel())

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	help := dimStyle.Render("\n[space] toggle | [f] filter | [1-5] recipe | [c] clear | [g] generate | [p] panel | [q] quit")
	status := ""
	if m.status != "" {
		status = "\n" + m.status
	}

	return docStyle.Render(mainContent + status + help)
}

func (m model) renderList(visible []core.InsightCard) string {
	header := titleStyle.Render(fmt.Sprintf("Insights (%s)", m.filter)) + "\n\n"
	if len(visible) == 0 {
		return header + "No insights in this category."
	}

	var b strings.Builder
	b.WriteString(header)
	for i, card := range visible {
		cursor := " "
		if i == m.cursor {
			cursor = ">"
		}
		check := "[ ]"
		line := fmt.Sprintf("%s %s %s (%s) EQ:%d T%d",
			cursor, check, card.Title, card.Type, scoring.EQScore(card), mix.ValidationTier(card))
		if m.selection.Contains(card.ID) {
			line = fmt.Sprintf("%s [x] %s (%s) EQ:%d T%d",
				cursor, card.Title, card.Type, scoring.EQScore(card), mix.ValidationTier(card))
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m model) renderDetail(visible []core.InsightCard) string {
	if len(visible) == 0 || m.cursor >= len(visible) {
		return titleStyle.Render("Detail") + "\n\nNothing to show."
	}
	card := visible[m.cursor]

	var b strings.Builder
	b.WriteString(titleStyle.Render(card.Title) + "\n\n")
	b.WriteString(fmt.Sprintf("Type: %s | Category: %s\n", card.Type, card.Category))
	b.WriteString(fmt.Sprintf("Confidence: %.0f%% | EQ: %d %s\n",
		card.Confidence*100, scoring.EQScore(card),
		scoring.ResonanceEmoji[scoring.ClassifyResonance(scoring.EQScore(card))]))
	b.WriteString("Audience: " + strings.Join(profiles.MatchProfiles(card), ", ") + "\n")
	if card.Description != "" && card.Description != card.Title {
		b.WriteString("\n" + card.Description + "\n")
	}
	for _, source := range card.Sources {
		entry := source.Platform
		if source.Timestamp != "" {
			entry += " (" + source.Timestamp + ")"
		}
		b.WriteString(dimStyle.Render("• "+entry) + "\n")
	}
	return b.String()
}

// renderMixPanel shows the current selection with compatibility read-outs
// between adjacent selected cards.
func (m model) renderMixPanel() string {
	header := titleStyle.Render(fmt.Sprintf("Your Mix (%d)", m.selection.Len()))
	if m.prefs.PanelCollapsed {
		return header + dimStyle.Render(" [collapsed]")
	}
	if m.selection.Empty() {
		return header + "\n\nYour mix is empty. Select insights to combine,\nor press 1-5 to apply a recipe.\n" +
			dimStyle.Render("Generate is disabled until you add insights.")
	}

	selected := m.selection.Cards(m.cards)
	var b strings.Builder
	b.WriteString(header + "\n\n")
	for i, card := range selected {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, card.Title))
		if i+1 < len(selected) {
			score := compat.Score(card, selected[i+1])
			label := compat.Classify(score)
			line := fmt.Sprintf("   ↕ %d %s", score, label)
			if label == compat.SynergyConflict {
				b.WriteString(conflictStyle.Render(line) + "\n")
			} else {
				b.WriteString(synergyStyle.Render(line) + "\n")
			}
		}
	}
	return b.String()
}

// Start launches the Power Mode screen.
func Start(opts Options) {
	p := tea.NewProgram(InitialModel(opts), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running Power Mode: %v\n", err)
		os.Exit(1)
	}
}
