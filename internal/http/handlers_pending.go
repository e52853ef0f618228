package http

import (
	"net/http"

	"spendsense/internal/core"
	"spendsense/internal/log"
)

func (s *Server) handleAddPendingItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	amountStr := sanitizeInput(r.Form.Get("amount"))
	note := sanitizeInput(r.Form.Get("note"))
	mood := core.Mood(sanitizeInput(r.Form.Get("mood")))
	if !mood.Valid() {
		mood = core.Neutral
	}

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		// Invalid amounts never enter the pending list; re-render it
		// unchanged so the form keeps its state.
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderPending(w, r, `Please enter a valid amount`)
		return
	}

	s.pending.AddItem(core.Money{Cents: cents}, note, mood)
	s.renderPending(w, r, "")
}

func (s *Server) handleRemovePendingItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.pending.RemoveItem(sanitizeInput(r.Form.Get("id")))
	s.renderPending(w, r, "")
}

func (s *Server) handleSavePending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	exp, saved := s.pending.SaveAll(r.Context(), s.store)
	if !saved {
		// Empty list: nothing committed, nothing cleared.
		s.renderPending(w, r, "")
		return
	}

	s.logger.InfoContext(r.Context(), "Grouped spend saved",
		log.FieldExpenseID, exp.ID,
		log.FieldAmountCents, exp.Amount.Cents,
		"items", len(exp.Items))

	w.Header().Set("HX-Trigger", `{"expense:created": {}, "pending:saved": {}}`)
	s.renderPending(w, r, "")
}

func (s *Server) handlePendingList(w http.ResponseWriter, r *http.Request) {
	s.renderPending(w, r, "")
}

type pendingItemView struct {
	ID     string
	Note   string
	Amount string
	Emoji  string
}

func (s *Server) renderPending(w http.ResponseWriter, r *http.Request, errMsg string) {
	snap := s.store.Snapshot()
	symbol := snap.Settings.Currency.Symbol

	items := s.pending.Items()
	views := make([]pendingItemView, len(items))
	for i, it := range items {
		views[i] = pendingItemView{
			ID:     it.ID,
			Note:   it.Note,
			Amount: formatAmount(symbol, it.Amount.Cents),
			Emoji:  emojiFor(it.Mood),
		}
	}

	data := struct {
		Items  []pendingItemView
		Count  int
		Total  string
		Symbol string
		Error  string
	}{
		Items:  views,
		Count:  len(views),
		Total:  core.FormatGrouped(s.pending.Total().Cents),
		Symbol: symbol,
		Error:  errMsg,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "pending.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "pending.html")
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}
