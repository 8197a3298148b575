package store

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/mealplan/internal/model"
)

func TestParseAmount(t *testing.T) {
	good := map[string]float64{
		"42":      42,
		"12.5":    12.5,
		" $7.99 ": 7.99,
		"3.456":   3.46,
		"0.006":   0.01,
		".5":      0.5,
		"8.":      8,
	}
	for in, want := range good {
		got, err := ParseAmount(in)
		if err != nil {
			t.Errorf("ParseAmount(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseAmount(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"", "abc", "0", "-5", "NaN", "Inf", "$", "0.004", "0x1p4", "1_0", "1e2", "+3", "1.2.3"} {
		_, err := ParseAmount(in)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("ParseAmount(%q) err = %v, want ValidationError", in, err)
			continue
		}
		if ve.Message != "Enter a valid amount." || ve.Field != "amount" {
			t.Errorf("ParseAmount(%q) = %+v", in, ve)
		}
	}
}

func TestValidateDraft(t *testing.T) {
	ok := model.ReceiptDraft{StoreType: model.StoreNTUC, Amount: 10, PurchasedAt: date("2026-10-13")}
	if err := ValidateDraft(ok); err != nil {
		t.Fatalf("ValidateDraft(valid) = %v", err)
	}

	tests := []struct {
		name  string
		edit  func(*model.ReceiptDraft)
		field string
	}{
		{"zero amount", func(d *model.ReceiptDraft) { d.Amount = 0 }, "amount"},
		{"negative amount", func(d *model.ReceiptDraft) { d.Amount = -1 }, "amount"},
		{"rounds to zero", func(d *model.ReceiptDraft) { d.Amount = 0.004 }, "amount"},
		{"unknown store", func(d *model.ReceiptDraft) { d.StoreType = "hawker" }, "store_type"},
		{"no date", func(d *model.ReceiptDraft) { d.PurchasedAt = time.Time{} }, "purchased_at"},
	}
	for _, tt := range tests {
		d := ok
		tt.edit(&d)
		var ve *ValidationError
		if err := ValidateDraft(d); !errors.As(err, &ve) || ve.Field != tt.field {
			t.Errorf("%s: err = %v, want field %s", tt.name, err, tt.field)
		}
	}
}

func TestValidateMember(t *testing.T) {
	m := model.Member{Name: "Zann", Age: 40, Gender: model.Female, Activity: model.Light}
	if err := ValidateMember(m); err != nil {
		t.Fatalf("ValidateMember(valid) = %v", err)
	}
	bad := m
	bad.Activity = model.LightModerate
	if err := ValidateMember(bad); err == nil {
		t.Fatal("light-moderate should not be accepted by the member store")
	}
	bad = m
	bad.Gender = "X"
	if err := ValidateMember(bad); err == nil {
		t.Fatal("unknown gender accepted")
	}
}
