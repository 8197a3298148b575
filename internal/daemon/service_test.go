package daemon

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/mealplan/internal/catalog"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/report"
	"github.com/theirongolddev/mealplan/internal/store"
)

func newTestService(t *testing.T, ledger store.Ledger) (*Service, *httptest.Server) {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	hh, err := household.New(household.Seed())
	if err != nil {
		t.Fatalf("household.New: %v", err)
	}
	s := New(Config{
		Interval:     10 * time.Second,
		EventsBuffer: 50,
		Budget:       100,
		Catalog:      cat,
		Household:    hh,
		Ledger:       ledger,
	})
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return s, srv
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, url, err)
		}
	}
	if out != nil && resp.StatusCode >= 400 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode error body %s %s: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func eventTypes(s *Service) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.events))
	for i, ev := range s.events {
		out[i] = ev.Type
	}
	return out
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(Config{Interval: time.Second, Budget: -5})
	if s.cfg.Interval != 30*time.Second {
		t.Fatalf("Interval = %s, want 30s", s.cfg.Interval)
	}
	if s.cfg.EventsBuffer != 200 {
		t.Fatalf("EventsBuffer = %d, want 200", s.cfg.EventsBuffer)
	}
	if s.cfg.Addr != "127.0.0.1:8788" {
		t.Fatalf("Addr = %q", s.cfg.Addr)
	}
	if s.cfg.Budget != 0 {
		t.Fatalf("Budget = %.2f, want 0", s.cfg.Budget)
	}
}

func TestHealthz(t *testing.T) {
	_, srv := newTestService(t, store.NewMemory())
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok\n" {
		t.Fatalf("healthz = %d %q", resp.StatusCode, body)
	}
}

func TestWeekRoutes(t *testing.T) {
	_, srv := newTestService(t, store.NewMemory())

	var days []report.Day
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/week", "", &days); code != http.StatusOK {
		t.Fatalf("GET /v1/week = %d", code)
	}
	if len(days) != 6 || days[0].Day != model.Mon {
		t.Fatalf("week days = %d, first %v", len(days), days)
	}
	if days[0].Meals[1].Coverage == nil || *days[0].Meals[1].Coverage != 29 {
		t.Fatalf("mon lunch coverage = %v, want 29", days[0].Meals[1].Coverage)
	}

	var plan model.DayPlan
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/week/MON", "", &plan); code != http.StatusOK {
		t.Fatalf("GET /v1/week/MON = %d", code)
	}
	if plan.Lunch.Totals.Calories != 520 {
		t.Fatalf("mon lunch calories = %d, want 520", plan.Lunch.Totals.Calories)
	}

	var e errorResponse
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/week/sun", "", &e); code != http.StatusNotFound {
		t.Fatalf("GET /v1/week/sun = %d, want 404", code)
	}
}

func TestMealsFilters(t *testing.T) {
	_, srv := newTestService(t, store.NewMemory())

	var meals []model.ComposedMeal
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/meals?type=breakfast", "", &meals); code != http.StatusOK {
		t.Fatalf("GET meals = %d", code)
	}
	if len(meals) != 6 {
		t.Fatalf("breakfasts = %d, want 6", len(meals))
	}

	meals = nil
	doJSON(t, http.MethodGet, srv.URL+"/v1/meals?type=all", "", &meals)
	if len(meals) != 21 {
		t.Fatalf("all meals = %d, want 21", len(meals))
	}

	meals = nil
	doJSON(t, http.MethodGet, srv.URL+"/v1/meals?cuisine=Klingon", "", &meals)
	if meals == nil || len(meals) != 0 {
		t.Fatalf("unknown cuisine = %v, want empty list", meals)
	}

	var e errorResponse
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/meals?type=brunch", "", &e); code != http.StatusBadRequest {
		t.Fatalf("type=brunch = %d, want 400", code)
	}

	var m model.ComposedMeal
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/meals/wed-lunch-marcus", "", &m); code != http.StatusOK {
		t.Fatalf("GET meal = %d", code)
	}
	if m.Type != model.Lunch {
		t.Fatalf("meal type = %s, want lunch", m.Type)
	}
}

func TestReceiptLifecycle(t *testing.T) {
	s, srv := newTestService(t, store.NewMemory())
	today := store.Today().Format("2006-01-02")

	var rec model.Receipt
	body := `{"store_type":"ntuc","amount":"$42.50","purchased_at":"` + today + `","notes":" weekly shop "}`
	if code := doJSON(t, http.MethodPost, srv.URL+"/v1/receipts", body, &rec); code != http.StatusCreated {
		t.Fatalf("POST receipt = %d, want 201", code)
	}
	if rec.ID == "" || rec.Amount != 42.5 || rec.Notes != "weekly shop" {
		t.Fatalf("created receipt = %+v", rec)
	}

	var status Status
	doJSON(t, http.MethodGet, srv.URL+"/v1/status", "", &status)
	if status.Receipts != 1 || math.Abs(status.Budget.Spent-42.5) > 1e-9 {
		t.Fatalf("status budget = %+v receipts %d", status.Budget, status.Receipts)
	}

	var budget budgetResponse
	doJSON(t, http.MethodGet, srv.URL+"/v1/budget", "", &budget)
	if math.Abs(budget.Budget.Remaining-57.5) > 1e-9 || len(budget.SpendByStore) != 1 || len(budget.Days) != 1 {
		t.Fatalf("budget = %+v", budget)
	}

	var receipts []model.Receipt
	doJSON(t, http.MethodGet, srv.URL+"/v1/receipts?week="+today, "", &receipts)
	if len(receipts) != 1 {
		t.Fatalf("receipts = %d, want 1", len(receipts))
	}

	if code := doJSON(t, http.MethodDelete, srv.URL+"/v1/receipts/"+rec.ID, "", nil); code != http.StatusNoContent {
		t.Fatalf("DELETE = %d, want 204", code)
	}
	if code := doJSON(t, http.MethodDelete, srv.URL+"/v1/receipts/"+rec.ID, "", nil); code != http.StatusNoContent {
		t.Fatalf("second DELETE = %d, want 204", code)
	}
	receipts = nil
	doJSON(t, http.MethodGet, srv.URL+"/v1/receipts", "", &receipts)
	if receipts == nil || len(receipts) != 0 {
		t.Fatalf("receipts after delete = %v, want empty list", receipts)
	}

	want := []string{EventReceiptCreated, EventBudget, EventReceiptDeleted, EventBudget, EventReceiptDeleted}
	got := eventTypes(s)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("events = %v, want %v", got, want)
	}
}

func TestCreateReceiptValidation(t *testing.T) {
	_, srv := newTestService(t, store.NewMemory())

	tests := []struct {
		body  string
		code  int
		field string
	}{
		{`{"store_type":"ntuc","amount":"abc"}`, http.StatusBadRequest, "amount"},
		{`{"store_type":"ntuc","amount":0}`, http.StatusBadRequest, "amount"},
		{`{"store_type":"ntuc"}`, http.StatusBadRequest, "amount"},
		{`{"store_type":"deli","amount":5}`, http.StatusBadRequest, "store_type"},
		{`{"store_type":"bakery","amount":5,"purchased_at":"yesterday"}`, http.StatusBadRequest, "purchased_at"},
		{`{not json`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		var e errorResponse
		code := doJSON(t, http.MethodPost, srv.URL+"/v1/receipts", tt.body, &e)
		if code != tt.code || e.Field != tt.field {
			t.Errorf("POST %s = %d field %q, want %d field %q", tt.body, code, e.Field, tt.code, tt.field)
		}
	}
}

func TestLedgerUnavailable(t *testing.T) {
	s, srv := newTestService(t, nil)

	var e errorResponse
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/receipts", "", &e); code != http.StatusServiceUnavailable {
		t.Fatalf("GET receipts = %d, want 503", code)
	}
	if e.Error != "tracking unavailable" {
		t.Fatalf("error = %q", e.Error)
	}
	if code := doJSON(t, http.MethodPost, srv.URL+"/v1/receipts", `{"store_type":"ntuc","amount":5}`, &e); code != http.StatusServiceUnavailable {
		t.Fatalf("POST receipt = %d, want 503", code)
	}

	var shop shoppingResponse
	if code := doJSON(t, http.MethodGet, srv.URL+"/v1/shopping", "", &shop); code != http.StatusOK {
		t.Fatalf("GET shopping = %d, want 200", code)
	}
	if shop.Tracking || len(shop.Groups) == 0 {
		t.Fatalf("shopping tracking=%v groups=%d", shop.Tracking, len(shop.Groups))
	}

	s.pollOnce(context.Background())
	st := s.snapshotStatus()
	if st.Tracking || st.LastError == "" || st.PollCount != 1 {
		t.Fatalf("status after failed poll = %+v", st)
	}
}

func TestShoppingChecks(t *testing.T) {
	s, srv := newTestService(t, store.NewMemory())

	for _, item := range []string{"Garlic", "Salt"} {
		body := `{"item":"` + item + `","checked":true}`
		if code := doJSON(t, http.MethodPost, srv.URL+"/v1/shopping/check", body, nil); code != http.StatusNoContent {
			t.Fatalf("check %s = %d, want 204", item, code)
		}
	}
	var e errorResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/v1/shopping/check", `{"item":"  "}`, &e); code != http.StatusBadRequest {
		t.Fatalf("empty item = %d, want 400", code)
	}

	var shop shoppingResponse
	doJSON(t, http.MethodGet, srv.URL+"/v1/shopping", "", &shop)
	if !shop.Tracking || len(shop.Checked) != 2 {
		t.Fatalf("checked = %v tracking %v", shop.Checked, shop.Tracking)
	}
	if math.Abs(shop.CheckedTotal-3.00) > 1e-9 {
		t.Fatalf("checked total = %.2f, want 3.00", shop.CheckedTotal)
	}
	if math.Abs(shop.Total-88.90) > 1e-6 || shop.OverBudget {
		t.Fatalf("total = %.2f over=%v, want 88.90 within 100", shop.Total, shop.OverBudget)
	}

	got := eventTypes(s)
	if len(got) != 2 || got[0] != EventShoppingChecked {
		t.Fatalf("events = %v", got)
	}
}

func TestHousehold(t *testing.T) {
	_, srv := newTestService(t, store.NewMemory())
	var hh householdResponse
	doJSON(t, http.MethodGet, srv.URL+"/v1/household", "", &hh)
	if len(hh.Members) != 7 || hh.Totals.Calories != 12800 || hh.Totals.Protein != 310 {
		t.Fatalf("household = %d members, totals %+v", len(hh.Members), hh.Totals)
	}
}

func TestPollPublishesBudgetOnChange(t *testing.T) {
	ledger := store.NewMemory()
	s, _ := newTestService(t, ledger)
	ctx := context.Background()

	s.pollOnce(ctx)
	s.pollOnce(ctx)
	if got := eventTypes(s); len(got) != 1 || got[0] != EventBudget {
		t.Fatalf("events after idle polls = %v, want one budget event", got)
	}

	if _, err := ledger.CreateReceipt(ctx, model.ReceiptDraft{
		StoreType: model.StoreMarket, Amount: 85, PurchasedAt: store.Today(),
	}); err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}
	s.pollOnce(ctx)

	s.mu.RLock()
	last := s.events[len(s.events)-1]
	s.mu.RUnlock()
	if last.Type != EventBudget || last.Budget == nil || !last.Budget.NearLimit || last.Budget.Over {
		t.Fatalf("last event = %+v", last)
	}
	if st := s.snapshotStatus(); st.PollCount != 3 || !st.Tracking {
		t.Fatalf("status = %+v", st)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, srv := newTestService(t, store.NewMemory())
	doJSON(t, http.MethodPost, srv.URL+"/v1/receipts", `{"store_type":"other","amount":12}`, &model.Receipt{})

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	text := string(body)

	for _, want := range []string{
		"mealplan_receipts_created_total 1",
		"mealplan_budget_spent 12",
		"mealplan_budget_weekly 100",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestInstrumentCountsByStatus(t *testing.T) {
	m := newMetrics()
	h := m.instrument("GET /x", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	rec := httptest.NewRecorder()
	m.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `mealplan_http_requests_total{code="418",route="GET /x"} 2`
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("metrics missing %q", want)
	}
}

func TestStreamSendsSnapshotThenEvents(t *testing.T) {
	s, srv := newTestService(t, store.NewMemory())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1/stream", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /v1/stream: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q", ct)
	}

	r := bufio.NewReader(resp.Body)
	readEvent := func() string {
		t.Helper()
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read stream: %v", err)
		}
		_, _ = r.ReadString('\n') // data
		_, _ = r.ReadString('\n') // blank
		return strings.TrimSpace(strings.TrimPrefix(line, "event:"))
	}

	if got := readEvent(); got != EventSnapshot {
		t.Fatalf("first event = %q, want snapshot", got)
	}

	// The subscriber is registered before the snapshot is written.
	s.emit(Event{Type: EventReceiptDeleted, ReceiptID: "abc"})
	if got := readEvent(); got != EventReceiptDeleted {
		t.Fatalf("second event = %q, want receipt_deleted", got)
	}
}
