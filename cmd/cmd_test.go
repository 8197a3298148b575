package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/mealplan/internal/config"
	"github.com/theirongolddev/mealplan/internal/model"
	"github.com/theirongolddev/mealplan/internal/store"
)

// brokenChecklist is a ledger whose receipts work but whose checklist fails.
type brokenChecklist struct {
	*store.MemoryStore
}

func (brokenChecklist) Checked(context.Context, time.Time) (map[string]bool, error) {
	return nil, errors.New("checklist table missing")
}

func TestFindItemIgnoresCaseAndSpace(t *testing.T) {
	items := []model.ShoppingItem{{Name: "Chicken thigh"}, {Name: "Kai lan"}}

	got, err := findItem(items, "  kai LAN ")
	if err != nil {
		t.Fatalf("findItem: %v", err)
	}
	if got != "Kai lan" {
		t.Errorf("got %q, want canonical name %q", got, "Kai lan")
	}

	if _, err := findItem(items, "tofu"); err == nil {
		t.Error("expected error for item not on the list")
	}
}

func TestMatchCuisine(t *testing.T) {
	meals := []model.ComposedMeal{
		{Cuisine: model.CuisineChinese},
		{Cuisine: model.CuisineMalay},
	}
	if got := matchCuisine(meals, "malay"); got != model.CuisineMalay {
		t.Errorf("matchCuisine(malay) = %q", got)
	}
	if got := matchCuisine(meals, "Korean"); got != "Korean" {
		t.Errorf("unknown cuisine should pass through, got %q", got)
	}
}

func TestMealLabel(t *testing.T) {
	if got := mealLabel(model.Breakfast); got != "Breakfast" {
		t.Errorf("mealLabel = %q", got)
	}
	if got := mealLabel(""); got != "" {
		t.Errorf("empty meal type = %q", got)
	}
}

func TestFilterDetachArg(t *testing.T) {
	got := filterDetachArg([]string{"daemon", "--detach", "--addr", ":9000", "--detach=true"})
	want := []string{"daemon", "--addr", ":9000"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDaemonAddrPrecedence(t *testing.T) {
	old := flagDaemonAddr
	defer func() { flagDaemonAddr = old }()

	cfg := config.DefaultConfig()
	cfg.Server.Addr = ""
	flagDaemonAddr = ""
	if got := daemonAddr(cfg); got != defaultDaemonAddr {
		t.Errorf("default addr = %q", got)
	}

	cfg.Server.Addr = "127.0.0.1:9100"
	if got := daemonAddr(cfg); got != "127.0.0.1:9100" {
		t.Errorf("config addr = %q", got)
	}

	flagDaemonAddr = ":9200"
	if got := daemonAddr(cfg); got != ":9200" {
		t.Errorf("flag addr = %q", got)
	}
}

func TestDaemonPIDAndState(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "mealplan.pid")

	if err := writePID(pidFile, 4242); err != nil {
		t.Fatal(err)
	}
	pid, err := readPID(pidFile)
	if err != nil || pid != 4242 {
		t.Fatalf("readPID = %d, %v", pid, err)
	}

	want := daemonRuntimeState{PID: 4242, Addr: "127.0.0.1:8788", StartedAt: time.Now().UTC().Truncate(time.Second), Ledger: "memory"}
	if err := writeState(statePath(pidFile), want); err != nil {
		t.Fatal(err)
	}
	got, err := readState(statePath(pidFile))
	if err != nil {
		t.Fatal(err)
	}
	if got.Addr != want.Addr || got.Ledger != want.Ledger || !got.StartedAt.Equal(want.StartedAt) {
		t.Errorf("state = %+v, want %+v", got, want)
	}
}

func TestEnsureDaemonNotRunningWithoutPIDFile(t *testing.T) {
	if err := ensureDaemonNotRunning(filepath.Join(t.TempDir(), "missing.pid")); err != nil {
		t.Errorf("missing pid file should not be an error: %v", err)
	}
}

func TestReceiptsSurviveChecklistFailure(t *testing.T) {
	ctx := context.Background()
	ws := time.Date(2026, 10, 12, 0, 0, 0, 0, time.Local)
	l := brokenChecklist{store.NewMemory()}
	if _, err := l.CreateReceipt(ctx, model.ReceiptDraft{StoreType: model.StoreNTUC, Amount: 42.5, PurchasedAt: ws}); err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}
	e := &env{budget: 150, weekStart: ws}

	if _, _, err := e.week(ctx, l); err == nil {
		t.Fatal("week should report the checklist failure")
	}
	receipts, err := e.receipts(ctx, l)
	if err != nil {
		t.Fatalf("receipts: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("receipts = %d, want 1", len(receipts))
	}
	if st := e.budgetStatus(receipts); st.Spent != 42.5 {
		t.Fatalf("Spent = %v, want 42.5", st.Spent)
	}
}

func TestReceiptsWithoutLedger(t *testing.T) {
	e := &env{}
	if _, err := e.receipts(context.Background(), nil); !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
