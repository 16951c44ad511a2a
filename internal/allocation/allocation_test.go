package allocation_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"berichtsheft-bot/internal/allocation"
)

func undurated(names ...string) []allocation.Activity {
	out := make([]allocation.Activity, len(names))
	for i, n := range names {
		out[i] = allocation.Activity{Description: n}
	}
	return out
}

func durations(items []allocation.Allocated) []float64 {
	out := make([]float64, len(items))
	for i, a := range items {
		out[i] = a.Duration
	}
	return out
}

func descriptions(items []allocation.Allocated) []string {
	out := make([]string, len(items))
	for i, a := range items {
		out[i] = a.Description
	}
	return out
}

// Восемь часов на три активности: base = floor(8/3*2)/2 = 2.5, остаток 0.5
// достается первой активности. Сумма совпадает с бюджетом.
func TestAllocateThreeUnduratedActivities(t *testing.T) {
	got, err := allocation.Allocate(8, undurated("X", "Y", "Z"))
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	want := []float64{3, 2.5, 2.5}
	if !reflect.DeepEqual(durations(got), want) {
		t.Errorf("durations = %v, want %v", durations(got), want)
	}
	if allocation.Sum(got) != 8 {
		t.Errorf("sum = %v, want 8", allocation.Sum(got))
	}
}

func TestAllocateFillsRemainderAfterExplicitDuration(t *testing.T) {
	in := []allocation.Activity{
		{Description: "A", Duration: allocation.Hours(3)},
		{Description: "B"},
	}
	got, err := allocation.Allocate(8, in)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	want := []allocation.Allocated{{"A", 3}, {"B", 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Allocate = %v, want %v", got, want)
	}
}

func TestAllocateMovesDuratedActivitiesFirst(t *testing.T) {
	in := []allocation.Activity{
		{Description: "free-1"},
		{Description: "fixed-1", Duration: allocation.Hours(1)},
		{Description: "free-2"},
		{Description: "fixed-2", Duration: allocation.Hours(0)},
		{Description: "free-3"},
	}
	got, err := allocation.Allocate(8, in)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	wantOrder := []string{"fixed-1", "fixed-2", "free-1", "free-2", "free-3"}
	if !reflect.DeepEqual(descriptions(got), wantOrder) {
		t.Errorf("order = %v, want %v", descriptions(got), wantOrder)
	}
	// remaining 7h: base floor(7/3*2)/2 = 2, leftover 1h -> two extra slots
	wantDurations := []float64{1, 0, 2.5, 2.5, 2}
	if !reflect.DeepEqual(durations(got), wantDurations) {
		t.Errorf("durations = %v, want %v", durations(got), wantDurations)
	}
}

func TestAllocateZeroBudget(t *testing.T) {
	got, err := allocation.Allocate(0, undurated("A", "B"))
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if !reflect.DeepEqual(durations(got), []float64{0, 0}) {
		t.Errorf("durations = %v, want zeros", durations(got))
	}
}

func TestAllocateBudgetAlreadyUsed(t *testing.T) {
	in := []allocation.Activity{
		{Description: "A", Duration: allocation.Hours(6)},
		{Description: "B", Duration: allocation.Hours(4)},
		{Description: "C"},
	}
	got, err := allocation.Allocate(8, in)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	// Явные длительности превышают бюджет: остаток 0, сумма остается 10
	if !reflect.DeepEqual(durations(got), []float64{6, 4, 0}) {
		t.Errorf("durations = %v", durations(got))
	}
}

func TestAllocateAllDuratedKeepsUserOverride(t *testing.T) {
	in := []allocation.Activity{
		{Description: "A", Duration: allocation.Hours(2)},
		{Description: "B", Duration: allocation.Hours(1.5)},
	}
	got, err := allocation.Allocate(8, in)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if allocation.Sum(got) != 3.5 {
		t.Errorf("sum = %v, want 3.5", allocation.Sum(got))
	}
}

func TestAllocateMinimumHalfHourMayExceedBudget(t *testing.T) {
	got, err := allocation.Allocate(1, undurated("A", "B", "C", "D"))
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if !reflect.DeepEqual(durations(got), []float64{0.5, 0.5, 0.5, 0.5}) {
		t.Errorf("durations = %v", durations(got))
	}
	if allocation.Sum(got) != 2 {
		t.Errorf("sum = %v, want 2 (n * 0.5)", allocation.Sum(got))
	}
}

func TestAllocateRejectsInvalidInput(t *testing.T) {
	if _, err := allocation.Allocate(-1, undurated("A")); !errors.Is(err, allocation.ErrNegativeBudget) {
		t.Errorf("negative budget err = %v", err)
	}
	if _, err := allocation.Allocate(math.NaN(), undurated("A")); !errors.Is(err, allocation.ErrNegativeBudget) {
		t.Errorf("NaN budget err = %v", err)
	}

	neg := []allocation.Activity{{Description: "A", Duration: allocation.Hours(-2)}}
	if _, err := allocation.Allocate(8, neg); !errors.Is(err, allocation.ErrNegativeDuration) {
		t.Errorf("negative duration err = %v", err)
	}

	odd := []allocation.Activity{{Description: "A", Duration: allocation.Hours(1.25)}}
	if _, err := allocation.Allocate(8, odd); !errors.Is(err, allocation.ErrGranularity) {
		t.Errorf("granularity err = %v", err)
	}
}

func TestAllocateEmptyInput(t *testing.T) {
	got, err := allocation.Allocate(8, nil)
	if err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

// Для бюджетов с шагом 0.5: сумма равна бюджету, если каждому хватает 0.5ч,
// иначе ровно n*0.5. Все длительности кратны 0.5 и неотрицательны.
func TestAllocateSumAndGranularityProperties(t *testing.T) {
	for budget := 0.0; budget <= 12; budget += 0.5 {
		for n := 1; n <= 9; n++ {
			names := make([]string, n)
			for i := range names {
				names[i] = "a"
			}
			got, err := allocation.Allocate(budget, undurated(names...))
			if err != nil {
				t.Fatalf("Allocate(%v, %d): %v", budget, n, err)
			}

			for _, a := range got {
				if a.Duration < 0 || math.Mod(a.Duration*2, 1) != 0 {
					t.Fatalf("Allocate(%v, %d) produced %v", budget, n, a.Duration)
				}
			}

			sum := allocation.Sum(got)
			minimum := float64(n) * allocation.Step
			switch {
			case budget == 0:
				if sum != 0 {
					t.Errorf("Allocate(0, %d) sum = %v, want 0", n, sum)
				}
			case minimum <= budget:
				if sum != budget {
					t.Errorf("Allocate(%v, %d) sum = %v, want %v", budget, n, sum, budget)
				}
			default:
				if sum != minimum {
					t.Errorf("Allocate(%v, %d) sum = %v, want %v", budget, n, sum, minimum)
				}
			}
		}
	}
}

func TestEven(t *testing.T) {
	tests := []struct {
		total float64
		count int
		want  []float64
	}{
		{8, 3, []float64{3, 2.5, 2.5}},
		{8, 2, []float64{4, 4}},
		{7.5, 2, []float64{4, 3.5}},
		{1, 3, []float64{0.5, 0.5, 0}},
		{0, 2, []float64{0, 0}},
		{8, 0, nil},
	}
	for _, tt := range tests {
		got := allocation.Even(tt.total, tt.count)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Even(%v, %d) = %v, want %v", tt.total, tt.count, got, tt.want)
		}
	}
}
