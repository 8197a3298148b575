package daemon

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/report"
	"github.com/theirongolddev/mealplan/internal/store"
)

const maxBodyBytes = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type shoppingResponse struct {
	WeekStart    string                `json:"week_start"`
	Groups       []model.ShoppingGroup `json:"groups"`
	Total        float64               `json:"total"`
	Checked      []string              `json:"checked"`
	CheckedTotal float64               `json:"checked_total"`
	OverBudget   bool                  `json:"over_budget"`
	Tracking     bool                  `json:"tracking"`
}

type checkRequest struct {
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
	Week    string `json:"week"`
}

type householdResponse struct {
	Members []model.MemberTargets `json:"members"`
	Totals  household.Totals      `json:"totals"`
}

type budgetResponse struct {
	WeekStart    string             `json:"week_start"`
	WeekLabel    string             `json:"week_label"`
	Budget       model.BudgetStatus `json:"budget"`
	SpendByStore []model.StoreSpend `json:"spend_by_store"`
	Days         []model.ReceiptDay `json:"days"`
}

// receiptRequest accepts the amount as a JSON number or a string such as "$12.50".
type receiptRequest struct {
	StoreType   string          `json:"store_type"`
	StoreName   string          `json:"store_name"`
	Amount      json.RawMessage `json:"amount"`
	PurchasedAt string          `json:"purchased_at"`
	Notes       string          `json:"notes"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// writeLedgerError maps ledger failures onto status codes.
func writeLedgerError(w http.ResponseWriter, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, store.ErrUnavailable):
		log.Printf("mealplan daemon ledger error: %v", err)
		writeError(w, http.StatusServiceUnavailable, "tracking unavailable")
	default:
		log.Printf("mealplan daemon error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// weekParam reads ?week=YYYY-MM-DD as the week containing that date,
// defaulting to the current week.
func weekParam(r *http.Request) (time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get("week"))
	if v == "" {
		return store.WeekStartOf(store.Today()), nil
	}
	d, err := store.ParseDate(v)
	if err != nil {
		return time.Time{}, errors.New("week must be a date like 2026-10-12")
	}
	return store.WeekStartOf(d), nil
}

func (s *Service) ledger() (store.Ledger, error) {
	if s.cfg.Ledger == nil {
		return nil, fmt.Errorf("no ledger configured: %w", store.ErrUnavailable)
	}
	return s.cfg.Ledger, nil
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleWeek(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, report.Days(s.week, s.cfg.Household))
}

func (s *Service) handleDay(w http.ResponseWriter, r *http.Request) {
	day := model.DayKey(strings.ToLower(r.PathValue("day")))
	plan, ok := s.week[day]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no plan for %q", r.PathValue("day")))
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Service) handleMeals(w http.ResponseWriter, r *http.Request) {
	meals := pipeline.AllMeals(s.week)
	if t := r.URL.Query().Get("type"); t != "" && t != "all" {
		mt := model.MealType(strings.ToLower(t))
		if mt != model.Breakfast && mt != model.Lunch && mt != model.Dinner {
			writeError(w, http.StatusBadRequest, "type must be all, breakfast, lunch or dinner")
			return
		}
		meals = pipeline.FilterByMealType(meals, mt)
	}
	if c := r.URL.Query().Get("cuisine"); c != "" {
		meals = pipeline.FilterByCuisine(meals, model.Cuisine(c))
	}
	if meals == nil {
		meals = []model.ComposedMeal{}
	}
	writeJSON(w, http.StatusOK, meals)
}

func (s *Service) handleMeal(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, m := range pipeline.AllMeals(s.week) {
		if m.ID == id {
			writeJSON(w, http.StatusOK, m)
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("no meal %q", id))
}

func (s *Service) handleShopping(w http.ResponseWriter, r *http.Request) {
	weekStart, err := weekParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items := pipeline.AggregateShopping(s.week)
	resp := shoppingResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		Groups:    pipeline.GroupShopping(items),
		Total:     pipeline.ShoppingTotal(items),
		Checked:   []string{},
	}
	resp.OverBudget = resp.Total > s.cfg.Budget

	if l, err := s.ledger(); err == nil {
		checked, err := l.Checked(r.Context(), weekStart)
		if err == nil {
			resp.Tracking = true
			resp.CheckedTotal = pipeline.CheckedTotal(items, checked)
			for _, it := range items {
				if checked[it.Name] {
					resp.Checked = append(resp.Checked, it.Name)
				}
			}
		} else {
			log.Printf("mealplan daemon shopping checks: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handleShoppingCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	req.Item = strings.TrimSpace(req.Item)
	if req.Item == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Enter an item name.", Field: "item"})
		return
	}
	weekStart := store.WeekStartOf(store.Today())
	if req.Week != "" {
		d, err := store.ParseDate(req.Week)
		if err != nil {
			writeError(w, http.StatusBadRequest, "week must be a date like 2026-10-12")
			return
		}
		weekStart = store.WeekStartOf(d)
	}

	l, err := s.ledger()
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	if err := l.SetChecked(r.Context(), weekStart, req.Item, req.Checked); err != nil {
		writeLedgerError(w, err)
		return
	}
	s.emit(Event{
		Type:      EventShoppingChecked,
		WeekStart: weekStart.Format("2006-01-02"),
		Item:      req.Item,
		Checked:   req.Checked,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleHousehold(w http.ResponseWriter, _ *http.Request) {
	resp := householdResponse{Members: []model.MemberTargets{}}
	if s.cfg.Household != nil {
		resp.Members = s.cfg.Household.Members()
		resp.Totals = s.cfg.Household.Totals()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handleBudget(w http.ResponseWriter, r *http.Request) {
	weekStart, err := weekParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := s.ledger()
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	receipts, err := l.Receipts(r.Context(), weekStart)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	resp := budgetResponse{
		WeekStart:    weekStart.Format("2006-01-02"),
		WeekLabel:    store.WeekRangeLabel(weekStart),
		Budget:       pipeline.ComputeBudget(pipeline.SumReceipts(receipts), s.cfg.Budget),
		SpendByStore: pipeline.SpendByStore(receipts),
		Days:         pipeline.GroupReceiptsByDay(receipts),
	}
	if resp.SpendByStore == nil {
		resp.SpendByStore = []model.StoreSpend{}
	}
	if resp.Days == nil {
		resp.Days = []model.ReceiptDay{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) handleReceipts(w http.ResponseWriter, r *http.Request) {
	weekStart, err := weekParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := s.ledger()
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	receipts, err := l.Receipts(r.Context(), weekStart)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	if receipts == nil {
		receipts = []model.Receipt{}
	}
	writeJSON(w, http.StatusOK, receipts)
}

func (s *Service) handleCreateReceipt(w http.ResponseWriter, r *http.Request) {
	var req receiptRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	draft, err := req.draft()
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	l, err := s.ledger()
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	rec, err := l.CreateReceipt(r.Context(), draft)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	s.metrics.receiptsCreated.Inc()
	s.emit(Event{Type: EventReceiptCreated, WeekStart: rec.WeekStart.Format("2006-01-02"), Receipt: &rec})
	if err := s.refreshBudget(r.Context()); err != nil {
		log.Printf("mealplan daemon budget refresh: %v", err)
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Service) handleDeleteReceipt(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	l, err := s.ledger()
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	if err := l.DeleteReceipt(r.Context(), id); err != nil {
		writeLedgerError(w, err)
		return
	}
	s.metrics.receiptsDeleted.Inc()
	s.emit(Event{Type: EventReceiptDeleted, ReceiptID: id})
	if err := s.refreshBudget(r.Context()); err != nil {
		log.Printf("mealplan daemon budget refresh: %v", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// draft converts the request into a receipt draft. A missing purchase date
// means today.
func (req receiptRequest) draft() (model.ReceiptDraft, error) {
	d := model.ReceiptDraft{
		StoreType: model.StoreType(strings.ToLower(strings.TrimSpace(req.StoreType))),
		StoreName: req.StoreName,
		Notes:     req.Notes,
	}
	amount, err := store.ParseAmount(strings.Trim(string(req.Amount), `"`))
	if err != nil {
		return d, err
	}
	d.Amount = amount

	if strings.TrimSpace(req.PurchasedAt) == "" {
		d.PurchasedAt = store.Today()
	} else {
		p, err := store.ParseDate(strings.TrimSpace(req.PurchasedAt))
		if err != nil {
			return d, &store.ValidationError{Field: "purchased_at", Message: "Enter the purchase date."}
		}
		d.PurchasedAt = p
	}
	return d, store.ValidateDraft(d)
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	st := s.snapshotStatus()
	writeSSE(w, Event{
		Type:      EventSnapshot,
		Timestamp: time.Now(),
		WeekStart: st.WeekStart,
		Budget:    &st.Budget,
	})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}
