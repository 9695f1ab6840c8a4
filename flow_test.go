package fundflow

import "testing"

func TestSeries_Sorted(t *testing.T) {
	s := Series{
		flow("2021-01-01", 600),
		flow("2020-01-01", -1000),
		flow("2020-07-01", 500),
	}
	sorted := s.Sorted()

	for i := 1; i < len(sorted); i++ {
		if sorted[i].On.Before(sorted[i-1].On) {
			t.Fatalf("Sorted() not ascending: %s before %s", sorted[i].On, sorted[i-1].On)
		}
	}
	// the receiver is left untouched.
	if s[0].On != on("2021-01-01") {
		t.Errorf("Sorted() mutated the receiver")
	}
}

func TestSeries_Sorted_StableOnSameDay(t *testing.T) {
	s := Series{
		flow("2020-01-01", 1),
		flow("2020-01-01", 2),
		flow("2020-01-01", 3),
	}
	sorted := s.Sorted()
	for i := range s {
		if !sorted[i].Amount.Equal(s[i].Amount) {
			t.Fatalf("Sorted() reordered same-day flows: %v", sorted)
		}
	}
}

func TestSeries_HasSignChange(t *testing.T) {
	tests := []struct {
		name string
		s    Series
		want bool
	}{
		{"mixed", Series{flow("2020-01-01", -1), flow("2020-02-01", 1)}, true},
		{"all positive", Series{flow("2020-01-01", 1), flow("2020-02-01", 2)}, false},
		{"all negative", Series{flow("2020-01-01", -1), flow("2020-02-01", -2)}, false},
		{"zeros ignored", Series{flow("2020-01-01", 0), flow("2020-02-01", 1)}, false},
		{"zeros plus mixed", Series{flow("2020-01-01", 0), flow("2020-02-01", 1), flow("2020-03-01", -1)}, true},
		{"empty", Series{}, false},
	}
	for _, tc := range tests {
		if got := tc.s.HasSignChange(); got != tc.want {
			t.Errorf("%s: HasSignChange() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSeries_Total(t *testing.T) {
	s := Series{
		flow("2020-01-01", -1000),
		flow("2020-07-01", 500),
		flow("2021-01-01", 600),
	}
	if got := s.Total(); !got.Equal(USD(100)) {
		t.Errorf("Total() = %s, want %s", got, USD(100))
	}
}

func TestSeries_Currency(t *testing.T) {
	s := Series{
		NewCashFlow(on("2020-01-01"), NO(-1000)),
		flow("2021-01-01", 1100),
	}
	if got := s.Currency(); got != "USD" {
		t.Errorf("Currency() = %q, want USD", got)
	}
	if got := (Series{}).Currency(); got != "" {
		t.Errorf("Currency() of empty series = %q, want empty", got)
	}
}

func TestNewSchedule_AnchorsAtEarliestDate(t *testing.T) {
	// unsorted on purpose: the anchor must still be the earliest date.
	s := Series{
		flow("2021-01-01", 1100),
		flow("2020-01-01", -1000),
	}
	sc := newSchedule(s)
	if sc.years[0] != 0 {
		t.Errorf("first scheduled year = %v, want 0 (the anchor)", sc.years[0])
	}
	want := 366.0 / 365.0
	if sc.years[1] != want {
		t.Errorf("second scheduled year = %v, want %v", sc.years[1], want)
	}
	if sc.amounts[0] != -1000 || sc.amounts[1] != 1100 {
		t.Errorf("schedule amounts = %v, want [-1000 1100]", sc.amounts)
	}
}
