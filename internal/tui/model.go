// Package tui provides the Bubble Tea quiz interface.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/jyutquiz/internal/model"
	"github.com/verte-zerg/jyutquiz/internal/quiz"
	"github.com/verte-zerg/jyutquiz/internal/speech"
	"github.com/verte-zerg/jyutquiz/internal/stats"
)

// Recorder persists quiz progress.
type Recorder interface {
	SavePerformance(ctx context.Context, table model.PerformanceTable) error
	InsertSession(ctx context.Context, summary model.SessionSummary, answers []model.AnswerRecord) error
}

// Options configures a Model.
type Options struct {
	Title    string
	Session  *quiz.Session
	Table    model.PerformanceTable
	Recorder Recorder
	// Speech and Typed are nil when speech recognition is disabled.
	Speech *speech.Controller
	Typed  *speech.TypedRecognizer
	Log    *slog.Logger
}

type speechResultMsg struct {
	index  int
	result speech.Result
}

// Model implements the Bubble Tea quiz UI.
type Model struct {
	title    string
	sess     *quiz.Session
	table    model.PerformanceTable
	recorder Recorder
	speech   *speech.Controller
	typed    *speech.TypedRecognizer
	log      *slog.Logger

	width  int
	height int

	cursor    int
	arranged  []int
	input     textinput.Model
	listening bool

	last    *model.AnswerRecord
	done    bool
	summary stats.ScoreSummary
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))
	promptStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Underline(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

var instructions = map[model.QuestionType]string{
	model.FillChinese:      "Fill in the blank",
	model.SelectJyutping:   "Choose the jyutping",
	model.SelectPicture:    "Choose the picture",
	model.WordOrder:        "Put the words in order",
	model.MatchTranslation: "Choose the meaning",
	model.AudioIdentify:    "Which characters match the sound?",
	model.Speaking:         "Say it aloud: type jyutping or characters, separate alternatives with |",
}

// NewModel constructs a quiz TUI model.
func NewModel(opts Options) *Model {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	table := opts.Table
	if table == nil {
		table = model.PerformanceTable{}
	}
	input := textinput.New()
	input.Prompt = "🎤 "
	input.Placeholder = "jyutping or characters"
	input.CharLimit = 64

	m := &Model{
		title:    opts.Title,
		sess:     opts.Session,
		table:    table,
		recorder: opts.Recorder,
		speech:   opts.Speech,
		typed:    opts.Typed,
		log:      log,
		input:    input,
	}
	if m.sess.Finished() {
		m.finish()
	}
	return m
}

// Table returns the performance table after every graded answer.
func (m *Model) Table() model.PerformanceTable {
	return m.table
}

// Result returns the score summary once the section is finished.
func (m *Model) Result() (stats.ScoreSummary, bool) {
	return m.summary, m.done
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.done {
		return nil
	}
	return m.prepare()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case speechResultMsg:
		m.handleSpeechResult(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.stopListening()
		return m, tea.Quit
	}
	if m.done {
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.stopListening()
		return m, tea.Quit
	}
	if m.sess.Answered() {
		switch msg.String() {
		case "enter", " ":
			return m, m.advance()
		}
		return m, nil
	}

	q, ok := m.sess.Current()
	if !ok {
		return m, nil
	}
	switch q.Type {
	case model.Speaking:
		return m, m.updateSpeaking(msg)
	case model.WordOrder:
		m.updateWordOrder(q, msg)
		return m, nil
	default:
		m.updateChoice(q, msg)
		return m, nil
	}
}

func (m *Model) prepare() tea.Cmd {
	m.cursor = 0
	m.arranged = nil
	m.input.SetValue("")
	m.input.Blur()
	q, ok := m.sess.Current()
	if !ok || q.Type != model.Speaking {
		return nil
	}
	return m.startListening()
}

func (m *Model) startListening() tea.Cmd {
	index := m.sess.Index()
	if m.speech == nil {
		return speechResult(index, speech.Result{Err: speech.ErrNotAllowed})
	}
	results := make(chan speech.Result, 1)
	started, err := m.speech.Start(context.Background(), func(r speech.Result) { results <- r })
	if err != nil {
		m.log.Warn("failed to start recognition", "err", err)
		return speechResult(index, speech.Result{Err: speech.ErrNotAllowed})
	}
	if !started {
		return nil
	}
	m.listening = true
	m.input.Focus()
	return func() tea.Msg {
		return speechResultMsg{index: index, result: <-results}
	}
}

func speechResult(index int, r speech.Result) tea.Cmd {
	return func() tea.Msg {
		return speechResultMsg{index: index, result: r}
	}
}

func (m *Model) stopListening() {
	if m.listening && m.speech != nil {
		m.speech.Stop()
	}
	m.listening = false
}

func (m *Model) handleSpeechResult(msg speechResultMsg) {
	if m.done || msg.index != m.sess.Index() || m.sess.Answered() {
		return
	}
	m.listening = false
	m.input.Blur()
	rec, table, err := m.sess.AnswerRecognition(m.table, msg.result)
	m.afterAnswer(rec, table, err)
}

func (m *Model) updateSpeaking(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEnter {
		switch {
		case m.typed != nil:
			m.typed.Submit(m.input.Value())
		case m.speech != nil:
			m.speech.Stop()
		}
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateChoice(q model.Question, msg tea.KeyMsg) {
	n := len(q.Options)
	if n == 0 {
		return
	}
	key := msg.String()
	switch key {
	case "up", "k", "left", "h", "shift+tab":
		m.cursor = (m.cursor - 1 + n) % n
	case "down", "j", "right", "l", "tab":
		m.cursor = (m.cursor + 1) % n
	case "enter", " ":
		m.answerChoice(q.Options[m.cursor])
	default:
		if idx, ok := digitIndex(key); ok && idx < n {
			m.cursor = idx
			m.answerChoice(q.Options[idx])
		}
	}
}

func (m *Model) answerChoice(choice string) {
	rec, table, err := m.sess.Answer(m.table, choice)
	m.afterAnswer(rec, table, err)
}

func (m *Model) updateWordOrder(q model.Question, msg tea.KeyMsg) {
	remaining := m.remaining(q)
	key := msg.String()
	switch key {
	case "backspace", "delete":
		if len(m.arranged) > 0 {
			m.arranged = m.arranged[:len(m.arranged)-1]
		}
	case "up", "k", "left", "h", "shift+tab":
		if len(remaining) > 0 {
			m.cursor = (m.cursor - 1 + len(remaining)) % len(remaining)
		}
	case "down", "j", "right", "l", "tab":
		if len(remaining) > 0 {
			m.cursor = (m.cursor + 1) % len(remaining)
		}
	case "enter", " ":
		if m.cursor < len(remaining) {
			m.arranged = append(m.arranged, remaining[m.cursor])
		}
	default:
		if idx, ok := digitIndex(key); ok && idx < len(remaining) {
			m.arranged = append(m.arranged, remaining[idx])
		}
	}
	m.cursor = min(m.cursor, max(len(m.remaining(q))-1, 0))

	if len(q.Scrambled) > 0 && len(m.arranged) == len(q.Scrambled) {
		tokens := make([]string, len(m.arranged))
		for i, idx := range m.arranged {
			tokens[i] = q.Scrambled[idx]
		}
		rec, table, err := m.sess.AnswerTokens(m.table, tokens)
		m.afterAnswer(rec, table, err)
	}
}

func (m *Model) remaining(q model.Question) []int {
	used := make(map[int]bool, len(m.arranged))
	for _, idx := range m.arranged {
		used[idx] = true
	}
	out := make([]int, 0, len(q.Scrambled))
	for i := range q.Scrambled {
		if !used[i] {
			out = append(out, i)
		}
	}
	return out
}

func digitIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

func (m *Model) afterAnswer(rec model.AnswerRecord, table model.PerformanceTable, err error) {
	if err != nil {
		m.log.Warn("answer rejected", "err", err)
		return
	}
	m.table = table
	m.last = &rec
	m.log.Debug("answer graded", "question", rec.Number, "type", string(rec.Type), "correct", rec.Correct)
	if m.recorder == nil {
		return
	}
	if err := m.recorder.SavePerformance(context.Background(), table); err != nil {
		m.log.Error("failed to save performance", "err", err)
	}
}

func (m *Model) advance() tea.Cmd {
	m.last = nil
	if !m.sess.Next() {
		m.finish()
		return nil
	}
	return m.prepare()
}

func (m *Model) finish() {
	if m.done {
		return
	}
	m.done = true
	summary := m.sess.Summary()
	m.summary = stats.Summarize(summary.Score, summary.Total)
	answers := m.sess.Answers()
	if m.recorder == nil || len(answers) == 0 {
		return
	}
	if err := m.recorder.InsertSession(context.Background(), summary, answers); err != nil {
		m.log.Error("failed to save session", "err", err)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	contentWidth := 0
	if m.width > 0 {
		contentWidth = max(int(float64(m.width)*0.70), 1)
	}
	var content string
	if m.done {
		content = m.renderSummary()
	} else {
		content = m.renderQuestion(contentWidth)
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	content = lipgloss.NewStyle().Width(contentWidth).Render(content)
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderQuestion(width int) string {
	q, ok := m.sess.Current()
	if !ok {
		return ""
	}
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s  Q%d/%d", m.title, m.sess.Index()+1, m.sess.Len())),
		hintStyle.Render(instructions[q.Type]),
		"",
	}
	if q.Picture != "" {
		lines = append(lines, q.Picture)
	}
	for _, line := range promptLines(q) {
		lines = append(lines, promptStyle.Render(wrapText(line, width)))
	}
	if hint := hintLine(q); hint != "" {
		lines = append(lines, hintStyle.Render(wrapText(hint, width)))
	}
	lines = append(lines, "")

	switch q.Type {
	case model.Speaking:
		lines = append(lines, m.input.View())
		if m.listening {
			lines = append(lines, hintStyle.Render("listening..."))
		}
	case model.WordOrder:
		lines = append(lines, m.renderWordOrder(q)...)
	default:
		lines = append(lines, m.renderOptions(q)...)
	}

	if m.last != nil {
		lines = append(lines, "", m.renderFeedback(*m.last), hintStyle.Render("enter to continue"))
	}
	return strings.Join(lines, "\n")
}

func promptLines(q model.Question) []string {
	switch q.Type {
	case model.AudioIdentify:
		return []string{"🔊 " + q.Jyutping}
	case model.WordOrder:
		return []string{q.English}
	default:
		if q.Chinese != "" {
			return []string{q.Chinese}
		}
		return []string{q.English}
	}
}

func hintLine(q model.Question) string {
	var parts []string
	switch q.Type {
	case model.AudioIdentify:
		return ""
	case model.WordOrder:
		parts = append(parts, q.Jyutping)
	case model.SelectJyutping:
		parts = append(parts, q.English)
	case model.MatchTranslation:
		parts = append(parts, q.Jyutping)
	default:
		parts = append(parts, q.Jyutping, q.English)
	}
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " · ")
}

func (m *Model) renderOptions(q model.Question) []string {
	lines := make([]string, 0, len(q.Options))
	for i, opt := range q.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case m.last != nil && opt == m.last.CorrectAnswer:
			label = correctStyle.Render(label)
		case m.last != nil && opt == m.last.UserAnswer:
			label = incorrectStyle.Render(label)
		case m.last == nil && i == m.cursor:
			label = selectedStyle.Render(label)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = "› "
		}
		lines = append(lines, prefix+label)
	}
	return lines
}

func (m *Model) renderWordOrder(q model.Question) []string {
	chosen := make([]string, len(m.arranged))
	for i, idx := range m.arranged {
		chosen[i] = q.Scrambled[idx]
	}
	lines := []string{"Your order: " + strings.Join(chosen, " ")}
	remaining := m.remaining(q)
	tokens := make([]string, len(remaining))
	for i, idx := range remaining {
		label := fmt.Sprintf("%d.%s", i+1, q.Scrambled[idx])
		if i == m.cursor {
			label = selectedStyle.Render(label)
		}
		tokens[i] = label
	}
	if len(tokens) > 0 {
		lines = append(lines, strings.Join(tokens, "  "), hintStyle.Render("backspace to undo"))
	}
	return lines
}

func (m *Model) renderFeedback(rec model.AnswerRecord) string {
	if rec.Correct {
		return correctStyle.Render("✅ Correct!")
	}
	return incorrectStyle.Render(fmt.Sprintf("❌ Answer: %s  You: %s", rec.CorrectAnswer, rec.UserAnswer))
}

func (m *Model) renderSummary() string {
	s := m.summary
	lines := []string{
		titleStyle.Render(m.title),
		"",
		fmt.Sprintf("%s %s", s.Emoji, s.Message),
		fmt.Sprintf("Score %d/%d (%d%%)", s.Correct, s.Total, s.Percentage),
		hintStyle.Render(fmt.Sprintf("Next section: %s", s.Adjustment)),
		"",
		hintStyle.Render("enter to exit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	if m.done {
		return ""
	}
	score := m.sess.Summary().Score
	segments := []string{
		fmt.Sprintf("Q %d/%d", m.sess.Index()+1, m.sess.Len()),
		fmt.Sprintf("Score %d", score),
		"esc quit",
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}
