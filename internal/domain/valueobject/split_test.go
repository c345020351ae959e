package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEqualSplit(t *testing.T) {
	t.Run("splits evenly across members", func(t *testing.T) {
		shares, err := EqualSplit(dec("100"), []string{"You", "Bob"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !shares["You"].Equal(dec("50")) || !shares["Bob"].Equal(dec("50")) {
			t.Errorf("expected 50/50, got %v", shares)
		}
	})

	t.Run("keeps shares unrounded", func(t *testing.T) {
		shares, err := EqualSplit(dec("100"), []string{"You", "Bob", "Eve"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		total := decimal.Zero
		for _, share := range shares {
			total = total.Add(share)
		}
		if !total.Round(10).Equal(dec("100")) {
			t.Errorf("shares should sum back to the amount, got %v", total)
		}
	})

	t.Run("rejects zero members", func(t *testing.T) {
		if _, err := EqualSplit(dec("100"), nil); !errors.Is(err, domainerror.ErrNoSplitMembers) {
			t.Errorf("expected ErrNoSplitMembers, got %v", err)
		}
	})
}

func TestCustomSplit(t *testing.T) {
	members := []string{"You", "Bob"}

	t.Run("accepts an exact split and rounds for storage", func(t *testing.T) {
		shares, err := CustomSplit(dec("100"), members, map[string]decimal.Decimal{
			"You": dec("70.005"),
			"Bob": dec("29.995"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !shares["You"].Equal(dec("70.01")) {
			t.Errorf("expected You share 70.01, got %v", shares["You"])
		}
		if !shares["Bob"].Equal(dec("30")) {
			t.Errorf("expected Bob share 30, got %v", shares["Bob"])
		}
	})

	t.Run("missing members contribute zero", func(t *testing.T) {
		shares, err := CustomSplit(dec("100"), members, map[string]decimal.Decimal{
			"You": dec("100"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !shares["Bob"].IsZero() {
			t.Errorf("expected Bob share 0, got %v", shares["Bob"])
		}
	})

	t.Run("rejects a mismatched total", func(t *testing.T) {
		_, err := CustomSplit(dec("100"), members, map[string]decimal.Decimal{
			"You": dec("70"),
			"Bob": dec("29.99"),
		})
		if !errors.Is(err, domainerror.ErrSplitMismatch) {
			t.Errorf("expected ErrSplitMismatch, got %v", err)
		}
	})

	t.Run("rejects an overshooting total", func(t *testing.T) {
		_, err := CustomSplit(dec("100"), members, map[string]decimal.Decimal{
			"You": dec("70"),
			"Bob": dec("30.01"),
		})
		if !errors.Is(err, domainerror.ErrSplitMismatch) {
			t.Errorf("expected ErrSplitMismatch, got %v", err)
		}
	})

	t.Run("rejects a non-member entry", func(t *testing.T) {
		_, err := CustomSplit(dec("100"), members, map[string]decimal.Decimal{
			"You":     dec("50"),
			"Mallory": dec("50"),
		})
		if !errors.Is(err, domainerror.ErrUnknownSplitMember) {
			t.Errorf("expected ErrUnknownSplitMember, got %v", err)
		}
	})

	t.Run("rejects zero members", func(t *testing.T) {
		_, err := CustomSplit(dec("100"), nil, nil)
		if !errors.Is(err, domainerror.ErrNoSplitMembers) {
			t.Errorf("expected ErrNoSplitMembers, got %v", err)
		}
	})
}

func TestRemainder(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		entries map[string]decimal.Decimal
		want    string
	}{
		{name: "nothing assigned", amount: "100", entries: nil, want: "100"},
		{name: "partially assigned", amount: "100", entries: map[string]decimal.Decimal{"You": dec("60")}, want: "40"},
		{name: "fully assigned", amount: "100", entries: map[string]decimal.Decimal{"You": dec("60"), "Bob": dec("40")}, want: "0"},
		{name: "over-assigned goes negative", amount: "100", entries: map[string]decimal.Decimal{"You": dec("110")}, want: "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remainder(dec(tt.amount), tt.entries)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("expected remainder %s, got %v", tt.want, got)
			}
		})
	}
}
