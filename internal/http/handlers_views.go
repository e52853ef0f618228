package http

import (
	"bytes"
	"net/http"
	"time"

	"spendsense/internal/core"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	snap := s.store.Snapshot()
	data := struct {
		Categories []core.Category
		Moods      []core.Mood
		Currency   core.Currency
	}{
		Categories: core.Categories,
		Moods:      core.Moods,
		Currency:   snap.Settings.Currency,
	}

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type timelineRow struct {
	ID         string
	Emoji      string
	Category   string
	DateLabel  string
	Amount     string
	Expandable bool
	Expanded   bool
	Items      []pendingItemView
}

// handleTimeline renders the chronological view: optionally filtered to
// one UTC calendar day, always newest first, with at most one record
// expanded into its sub-item breakdown.
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	day := sanitizeInput(r.URL.Query().Get("date"))
	if day != "" {
		if _, err := time.Parse(core.DayLayout, day); err != nil {
			day = ""
		}
	}
	expanded := sanitizeInput(r.URL.Query().Get("expanded"))

	key := day + "|" + expanded
	if cached, ok := s.timelineCache.Get(key); ok {
		s.logger.DebugContext(r.Context(), "Timeline cache hit", "day", day)
		_, _ = w.Write(cached)
		return
	}

	snap := s.store.Snapshot()
	symbol := snap.Settings.Currency.Symbol

	filtered := core.FilterByDay(snap.Expenses, day)
	ordered := core.NewestFirst(filtered)

	rows := make([]timelineRow, len(ordered))
	for i, e := range ordered {
		row := timelineRow{
			ID:         e.ID,
			Emoji:      emojiFor(e.Mood),
			Category:   e.Category,
			DateLabel:  e.Date.UTC().Format("2 Jan"),
			Amount:     formatAmount(symbol, e.Amount.Cents),
			Expandable: e.Grouped(),
			Expanded:   e.Grouped() && e.ID == expanded,
		}
		if row.Expanded {
			row.Items = make([]pendingItemView, len(e.Items))
			for j, it := range e.Items {
				row.Items[j] = pendingItemView{
					ID:     it.ID,
					Note:   it.Note,
					Amount: formatAmount(symbol, it.Amount.Cents),
					Emoji:  emojiFor(it.Mood),
				}
			}
		}
		rows[i] = row
	}

	data := struct {
		Empty    bool // no records at all
		NoMatch  bool // records exist, none on the selected day
		Day      string
		Rows     []timelineRow
		Expanded string
	}{
		Empty:    len(snap.Expenses) == 0,
		NoMatch:  len(snap.Expenses) > 0 && len(rows) == 0,
		Day:      day,
		Rows:     rows,
		Expanded: expanded,
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "timeline.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "timeline.html", "day", day)
		http.Error(w, "render error", http.StatusInternalServerError)
		return
	}

	s.timelineCache.Set(key, buf.Bytes())
	_, _ = w.Write(buf.Bytes())
}

type moodSegment struct {
	Mood  core.Mood
	Count int
	Color string
}

// handleInsights renders the mood-frequency distribution, the narrative
// line and one freshly drawn tip. Each request is one view activation,
// so the tip is drawn exactly once here and nowhere else.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap := s.store.Snapshot()

	dist := core.MoodDistribution(snap.Expenses)
	segments := make([]moodSegment, len(dist))
	for i, mc := range dist {
		segments[i] = moodSegment{Mood: mc.Mood, Count: mc.Count, Color: moodColor[mc.Mood]}
	}

	narrative := "Keep tracking to see your happiness trends grow."
	if core.AnyHappy(snap.Expenses) {
		narrative = "It's great to see you're finding joy in some of your purchases!"
	}

	s.rngMu.Lock()
	tip := core.PickTip(s.rng)
	s.rngMu.Unlock()

	data := struct {
		Empty     bool
		Total     int
		Segments  []moodSegment
		Narrative string
		Tip       string
	}{
		Empty:     len(snap.Expenses) == 0,
		Total:     len(snap.Expenses),
		Segments:  segments,
		Narrative: narrative,
		Tip:       tip,
	}

	if err := s.templates.ExecuteTemplate(w, "insights.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "insights.html")
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func (s *Server) renderSettings(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	data := struct {
		Currencies []core.Currency
		Active     string
	}{
		Currencies: core.Currencies,
		Active:     snap.Settings.Currency.Code,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "settings.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "settings.html")
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}
