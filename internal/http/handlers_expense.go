package http

import (
	"html/template"
	"net/http"
	"strconv"
	"time"

	"spendsense/internal/core"
	"spendsense/internal/log"

	"github.com/google/uuid"
)

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error", "error", err, "method", r.Method, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="error">Invalid request format</div>`))
		return
	}

	amountStr := sanitizeInput(r.Form.Get("amount"))
	category := sanitizeInput(r.Form.Get("category"))
	notes := sanitizeInput(r.Form.Get("notes"))
	mood := core.Mood(sanitizeInput(r.Form.Get("mood")))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Please enter a valid amount</div>`))
		return
	}
	if category == "" {
		category = core.Categories[0].Label
	}
	if !mood.Valid() {
		mood = core.Neutral
	}

	snap := s.store.Snapshot()
	exp := core.Expense{
		ID:       uuid.NewString(),
		Amount:   core.Money{Cents: cents},
		Currency: snap.Settings.Currency.Code,
		Category: category,
		Mood:     mood,
		Notes:    notes,
		Date:     time.Now().UTC(),
	}
	if err := exp.Validate(); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Invalid data: ` + template.HTMLEscapeString(err.Error()) + `</div>`))
		return
	}

	if err := s.store.AddExpense(r.Context(), exp); err != nil {
		s.logger.ErrorContext(r.Context(), "Failed to record expense",
			"error", err,
			log.FieldExpenseID, exp.ID,
			log.FieldAmountCents, exp.Amount.Cents,
			log.FieldCategory, exp.Category)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Error saving expense</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"expense:created": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">Spend saved: ` +
		template.HTMLEscapeString(formatAmount(snap.Settings.Currency.Symbol, cents)) +
		` (` + template.HTMLEscapeString(exp.Category) + `)</div>`))
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id := sanitizeInput(r.Form.Get("id"))
	// Unknown ids are a no-op by contract, so this cannot fail.
	s.store.DeleteExpense(r.Context(), id)

	w.Header().Set("HX-Trigger", `{"expense:deleted": {}}`)
	s.handleTimeline(w, r)
}

func (s *Server) handleClearAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Confirmation happens in the template before this request is ever
	// sent; the operation itself is unconditional.
	s.store.ClearAll(r.Context())

	w.Header().Set("HX-Trigger", `{"data:cleared": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="success">All data has been cleared.</div>`))
}

func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	code := sanitizeInput(r.Form.Get("code"))
	cur, ok := core.FindCurrency(code)
	if !ok {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="error">Unknown currency: ` + template.HTMLEscapeString(code) + `</div>`))
		return
	}

	if err := s.store.SetCurrency(r.Context(), cur); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<div class="error">Error saving settings</div>`))
		return
	}

	w.Header().Set("HX-Trigger", `{"currency:changed": {"code": `+strconv.Quote(cur.Code)+`}}`)
	s.renderSettings(w, r)
}
