package poker

import (
	"testing"
)

func TestAllClasses(t *testing.T) {
	t.Parallel()
	classes := AllClasses()
	if len(classes) != NumClasses {
		t.Fatalf("expected %d classes, got %d", NumClasses, len(classes))
	}

	seen := make(map[string]bool)
	pairs, suited, offsuit, combos := 0, 0, 0, 0
	for _, c := range classes {
		if seen[c.String()] {
			t.Errorf("duplicate class %s", c)
		}
		seen[c.String()] = true
		combos += c.Combos()
		switch {
		case c.Pair():
			pairs++
		case c.Suited:
			suited++
		default:
			offsuit++
		}
	}
	if pairs != 13 || suited != 78 || offsuit != 78 {
		t.Errorf("got %d pairs, %d suited, %d offsuit", pairs, suited, offsuit)
	}
	if combos != 1326 {
		t.Errorf("expected 1326 combos, got %d", combos)
	}
	if classes[0].String() != "AA" || classes[len(classes)-1].String() != "22" {
		t.Errorf("unexpected ordering: first %s last %s", classes[0], classes[len(classes)-1])
	}
}

func TestParseClass(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "AKs", want: "AKs"},
		{input: "KAo", want: "AKo"},
		{input: "77", want: "77"},
		{input: "t9s", want: "T9s"},
		{input: "77s", wantErr: true},
		{input: "AK", wantErr: true},
		{input: "AKx", wantErr: true},
		{input: "A", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			c, err := ParseClass(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseClass(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err == nil && c.String() != tc.want {
				t.Errorf("ParseClass(%q) = %s, want %s", tc.input, c, tc.want)
			}
		})
	}
}

func TestCellRoundTrip(t *testing.T) {
	t.Parallel()
	for _, c := range AllClasses() {
		row, col := c.Cell()
		if got := ClassAt(row, col); got != c {
			t.Errorf("ClassAt(Cell(%s)) = %s", c, got)
		}
		if got := c.Representative().Class(); got != c {
			t.Errorf("Representative(%s).Class() = %s", c, got)
		}
	}

	// Upper triangle suited, lower offsuit, diagonal pairs.
	if got := ClassAt(0, 1).String(); got != "AKs" {
		t.Errorf("cell (0,1) = %s, want AKs", got)
	}
	if got := ClassAt(1, 0).String(); got != "AKo" {
		t.Errorf("cell (1,0) = %s, want AKo", got)
	}
	if got := ClassAt(12, 12).String(); got != "22" {
		t.Errorf("cell (12,12) = %s, want 22", got)
	}
}
