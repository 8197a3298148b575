// Package daemon serves the meal plan, shopping list and grocery ledger over
// a local HTTP API, with ledger events on an SSE stream and Prometheus metrics.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/mealplan/internal/catalog"
	"github.com/theirongolddev/mealplan/internal/household"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/pipeline"
	"github.com/theirongolddev/mealplan/internal/store"
)

// Event types.
const (
	EventSnapshot        = "snapshot"
	EventBudget          = "budget"
	EventReceiptCreated  = "receipt_created"
	EventReceiptDeleted  = "receipt_deleted"
	EventShoppingChecked = "shopping_checked"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Interval     time.Duration
	Addr         string
	EventsBuffer int
	Budget       float64

	Catalog   *catalog.Catalog
	Household *household.Directory
	// Ledger may be nil; ledger routes then answer 503.
	Ledger store.Ledger
}

// Event is published on every ledger change and budget movement.
type Event struct {
	ID        int64               `json:"id"`
	Type      string              `json:"type"`
	Timestamp time.Time           `json:"timestamp"`
	WeekStart string              `json:"week_start,omitempty"`
	Budget    *model.BudgetStatus `json:"budget,omitempty"`
	Receipt   *model.Receipt      `json:"receipt,omitempty"`
	ReceiptID string              `json:"receipt_id,omitempty"`
	Item      string              `json:"item,omitempty"`
	Checked   bool                `json:"checked,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time          `json:"started_at"`
	LastPollAt      time.Time          `json:"last_poll_at"`
	PollIntervalSec int                `json:"poll_interval_sec"`
	PollCount       int64              `json:"poll_count"`
	WeekStart       string             `json:"week_start"`
	WeekLabel       string             `json:"week_label"`
	PlanCost        float64            `json:"plan_cost"`
	Budget          model.BudgetStatus `json:"budget"`
	Receipts        int                `json:"receipts"`
	Tracking        bool               `json:"tracking"`
	LastError       string             `json:"last_error,omitempty"`
	EventCount      int                `json:"event_count"`
	SubscriberCount int                `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg     Config
	metrics *metrics
	week    model.WeekPlan

	mu           sync.RWMutex
	startedAt    time.Time
	lastPollAt   time.Time
	pollCount    int64
	lastError    string
	hasBudget    bool
	weekStart    time.Time
	budget       model.BudgetStatus
	receiptCount int
	nextEventID  int64
	events       []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service with the provided config.
func New(cfg Config) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	if cfg.Budget < 0 {
		cfg.Budget = 0
	}

	s := &Service{
		cfg:       cfg,
		metrics:   newMetrics(),
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
	if cfg.Catalog != nil {
		s.week = cfg.Catalog.Week()
	}
	s.metrics.budget.Set(cfg.Budget)
	return s
}

// Handler returns the HTTP routes of the service.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, s.metrics.instrument(pattern, h))
	}
	route("GET /healthz", s.handleHealth)
	route("GET /v1/status", s.handleStatus)
	route("GET /v1/week", s.handleWeek)
	route("GET /v1/week/{day}", s.handleDay)
	route("GET /v1/meals", s.handleMeals)
	route("GET /v1/meals/{id}", s.handleMeal)
	route("GET /v1/shopping", s.handleShopping)
	route("POST /v1/shopping/check", s.handleShoppingCheck)
	route("GET /v1/household", s.handleHousehold)
	route("GET /v1/budget", s.handleBudget)
	route("GET /v1/receipts", s.handleReceipts)
	route("POST /v1/receipts", s.handleCreateReceipt)
	route("DELETE /v1/receipts/{id}", s.handleDeleteReceipt)
	route("GET /v1/events", s.handleEvents)
	mux.HandleFunc("GET /v1/stream", s.handleStream)
	mux.Handle("GET /metrics", s.metrics.handler())
	return mux
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.pollOnce(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce(ctx)
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

// pollOnce refreshes the current week's budget from the ledger.
func (s *Service) pollOnce(ctx context.Context) {
	s.metrics.polls.Inc()
	err := s.refreshBudget(ctx)

	s.mu.Lock()
	s.lastPollAt = time.Now()
	s.pollCount++
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		s.metrics.pollErrors.Inc()
		log.Printf("mealplan daemon poll error: %v", err)
	}
}

// refreshBudget recomputes the current week's budget and publishes a budget
// event when it moved.
func (s *Service) refreshBudget(ctx context.Context) error {
	if s.cfg.Ledger == nil {
		return fmt.Errorf("refreshing budget: %w", store.ErrUnavailable)
	}
	weekStart := store.WeekStartOf(store.Today())
	receipts, err := s.cfg.Ledger.Receipts(ctx, weekStart)
	if err != nil {
		return fmt.Errorf("refreshing budget: %w", err)
	}
	st := pipeline.ComputeBudget(pipeline.SumReceipts(receipts), s.cfg.Budget)
	s.metrics.observeBudget(st, len(receipts))

	s.mu.Lock()
	changed := !s.hasBudget || st != s.budget || !weekStart.Equal(s.weekStart) || len(receipts) != s.receiptCount
	s.hasBudget = true
	s.budget = st
	s.weekStart = weekStart
	s.receiptCount = len(receipts)
	s.mu.Unlock()

	if changed {
		s.emit(Event{Type: EventBudget, WeekStart: weekStart.Format("2006-01-02"), Budget: &st})
	}
	return nil
}

// emit stamps ev with the next id and time and publishes it.
func (s *Service) emit(ev Event) {
	s.mu.Lock()
	s.nextEventID++
	ev.ID = s.nextEventID
	s.mu.Unlock()
	ev.Timestamp = time.Now()
	s.publishEvent(ev)
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		PlanCost:        pipeline.WeekCost(s.week),
		Budget:          s.budget,
		Receipts:        s.receiptCount,
		Tracking:        s.cfg.Ledger != nil && s.lastError == "",
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
	if s.hasBudget {
		st.WeekStart = s.weekStart.Format("2006-01-02")
		st.WeekLabel = store.WeekRangeLabel(s.weekStart)
	} else {
		st.Budget = pipeline.ComputeBudget(0, s.cfg.Budget)
	}
	return st
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	s.metrics.subscribers.Set(float64(len(s.subs)))
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
	s.metrics.subscribers.Set(float64(len(s.subs)))
}
