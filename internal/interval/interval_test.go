package interval

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		in     Interval
		min    int
		max    int
		want   Interval
		wantOK bool
	}{
		{"inside", Interval{60, 120}, 0, 1440, Interval{60, 120}, true},
		{"cut left", Interval{-30, 30}, 0, 1440, Interval{0, 30}, true},
		{"cut right", Interval{1400, 1500}, 0, 1440, Interval{1400, 1440}, true},
		{"outside", Interval{1500, 1600}, 0, 1440, Interval{}, false},
		{"touching edge", Interval{1440, 1500}, 0, 1440, Interval{}, false},
		{"zero length", Interval{60, 60}, 0, 1440, Interval{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Clamp(tt.in, tt.min, tt.max)
			if ok != tt.wantOK {
				t.Fatalf("Clamp() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Clamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{"empty", nil, nil},
		{"single", []Interval{{10, 20}}, []Interval{{10, 20}}},
		{"unsorted disjoint", []Interval{{50, 60}, {10, 20}}, []Interval{{10, 20}, {50, 60}}},
		{"overlapping", []Interval{{540, 600}, {570, 660}}, []Interval{{540, 660}}},
		{"touching", []Interval{{0, 420}, {420, 480}}, []Interval{{0, 480}}},
		{"contained", []Interval{{0, 100}, {10, 20}}, []Interval{{0, 100}}},
		{"drops zero length", []Interval{{30, 30}, {40, 50}}, []Interval{{40, 50}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	in := []Interval{{50, 60}, {10, 55}}
	Merge(in)
	if in[0] != (Interval{50, 60}) || in[1] != (Interval{10, 55}) {
		t.Errorf("Merge mutated its input: %v", in)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		busy []Interval
		want []Interval
	}{
		{"no busy", nil, []Interval{{0, 1440}}},
		{"fully covered", []Interval{{0, 1440}}, nil},
		{"sleep and lunch", []Interval{{0, 420}, {720, 780}}, []Interval{{420, 720}, {780, 1440}}},
		{"trailing busy", []Interval{{1380, 1440}}, []Interval{{0, 1380}}},
		{"overlapping busy", []Interval{{100, 200}, {150, 300}}, []Interval{{0, 100}, {300, 1440}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Invert(Day, tt.busy)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Invert() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	free := []Interval{{420, 720}, {780, 1440}}

	tests := []struct {
		name string
		cut  Interval
		want []Interval
	}{
		{"split middle", Interval{500, 600}, []Interval{{420, 500}, {600, 720}, {780, 1440}}},
		{"trim left", Interval{420, 530}, []Interval{{530, 720}, {780, 1440}}},
		{"remove whole", Interval{420, 720}, []Interval{{780, 1440}}},
		{"spans gap", Interval{700, 800}, []Interval{{420, 700}, {800, 1440}}},
		{"no overlap", Interval{720, 780}, []Interval{{420, 720}, {780, 1440}}},
		{"empty cut", Interval{500, 500}, []Interval{{420, 720}, {780, 1440}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtract(free, tt.cut)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subtract() = %v, want %v", got, tt.want)
			}
		})
	}

	if !reflect.DeepEqual(free, []Interval{{420, 720}, {780, 1440}}) {
		t.Errorf("Subtract mutated its input: %v", free)
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{
		0:    "00:00",
		65:   "01:05",
		720:  "12:00",
		1439: "23:59",
		1440: "24:00",
	}
	for in, want := range tests {
		if got := FormatClock(in); got != want {
			t.Errorf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func randomIntervals(r *rand.Rand) []Interval {
	n := r.Intn(8)
	out := make([]Interval, 0, n)
	for i := 0; i < n; i++ {
		start := r.Intn(1440)
		end := start + r.Intn(1440-start+1)
		out = append(out, Interval{Start: start, End: end})
	}
	return out
}

func coverage(intervals []Interval) [1440]bool {
	var covered [1440]bool
	for _, i := range intervals {
		for m := i.Start; m < i.End; m++ {
			covered[m] = true
		}
	}
	return covered
}

func TestMergeProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 500; n++ {
		in := randomIntervals(r)
		merged := Merge(in)

		for i := 1; i < len(merged); i++ {
			if merged[i].Start <= merged[i-1].End {
				t.Fatalf("Merge(%v) = %v is not sorted and disjoint", in, merged)
			}
		}
		for _, m := range merged {
			if m.Empty() {
				t.Fatalf("Merge(%v) contains empty interval %v", in, m)
			}
		}
		if coverage(in) != coverage(merged) {
			t.Fatalf("Merge(%v) = %v changed the covered minutes", in, merged)
		}
	}
}

func TestInvertProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for n := 0; n < 500; n++ {
		busy := Merge(randomIntervals(r))
		free := Invert(Day, busy)

		freeCov := coverage(free)
		busyCov := coverage(busy)
		for m := 0; m < 1440; m++ {
			if freeCov[m] == busyCov[m] {
				t.Fatalf("minute %d: free=%v busy=%v (busy %v, free %v)", m, freeCov[m], busyCov[m], busy, free)
			}
		}
		if Total(free)+Total(busy) != 1440 {
			t.Fatalf("free %v and busy %v do not add up to a day", free, busy)
		}
	}
}
