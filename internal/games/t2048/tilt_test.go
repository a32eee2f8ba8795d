package t2048

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestTiltLine(t *testing.T) {
	// Each case is a single column tilted North, listed bottom (row 0) to top.
	tests := []struct {
		name     string
		input    []int
		expected []int
		gained   int
		merges   int
		tilted   bool
	}{
		{
			name:     "simple merge",
			input:    []int{0, 0, 2, 2},
			expected: []int{0, 0, 0, 4},
			gained:   4,
			merges:   1,
			tilted:   true,
		},
		{
			name:     "trailing tile stays unmerged",
			input:    []int{2, 2, 2, 0},
			expected: []int{0, 0, 2, 4},
			gained:   4,
			merges:   1,
			tilted:   true,
		},
		{
			name:     "double merge",
			input:    []int{2, 2, 2, 2},
			expected: []int{0, 0, 4, 4},
			gained:   8,
			merges:   2,
			tilted:   true,
		},
		{
			name:     "merged tile does not merge again",
			input:    []int{4, 4, 8, 0},
			expected: []int{0, 0, 8, 8},
			gained:   8,
			merges:   1,
			tilted:   true,
		},
		{
			name:     "no merge possible",
			input:    []int{16, 8, 4, 2},
			expected: []int{16, 8, 4, 2},
			tilted:   false,
		},
		{
			name:     "slide with gap",
			input:    []int{2, 2, 0, 0},
			expected: []int{0, 0, 0, 4},
			gained:   4,
			merges:   1,
			tilted:   true,
		},
		{
			name:     "merge across gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{0, 0, 0, 4},
			gained:   4,
			merges:   1,
			tilted:   true,
		},
		{
			name:     "no change needed",
			input:    []int{0, 0, 2, 4},
			expected: []int{0, 0, 2, 4},
			tilted:   false,
		},
		{
			name:     "empty column",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
			tilted:   false,
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{0, 0, 0, 4},
			tilted:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([][]int, 4)
			for row := range raw {
				raw[row] = []int{tt.input[row], 0, 0, 0}
			}
			b := mustBoard(t, raw)

			res := tilt(b, North)

			got := make([]int, 4)
			for row, line := range b.Values() {
				got[row] = line[0]
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tilt(%v) = %v, want %v", tt.input, got, tt.expected)
			}
			if res.Gained != tt.gained {
				t.Errorf("tilt(%v) gained = %d, want %d", tt.input, res.Gained, tt.gained)
			}
			if res.Merges != tt.merges {
				t.Errorf("tilt(%v) merges = %d, want %d", tt.input, res.Merges, tt.merges)
			}
			if res.Tilted != tt.tilted {
				t.Errorf("tilt(%v) tilted = %v, want %v", tt.input, res.Tilted, tt.tilted)
			}
		})
	}
}

func TestTiltThreeEqualOnSmallBoard(t *testing.T) {
	// Three 2s at rows 0..2 of a 3x3 board: the leading pair merges.
	b := mustBoard(t, [][]int{
		{2, 0, 0},
		{2, 0, 0},
		{2, 0, 0},
	})

	res := tilt(b, North)

	want := [][]int{
		{0, 0, 0},
		{2, 0, 0},
		{4, 0, 0},
	}
	if got := b.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("tilt North = %v, want %v", got, want)
	}
	if res.Gained != 4 {
		t.Errorf("gained = %d, want 4", res.Gained)
	}
}

func TestTiltDirections(t *testing.T) {
	tests := []struct {
		name     string
		side     Side
		board    [][]int
		expected [][]int
		gained   int
	}{
		{
			name: "west",
			side: West,
			board: fromTop(
				[]int{2, 2, 0, 0},
				[]int{4, 0, 4, 0},
				[]int{2, 2, 2, 2},
				[]int{0, 0, 0, 2},
			),
			expected: fromTop(
				[]int{4, 0, 0, 0},
				[]int{8, 0, 0, 0},
				[]int{4, 4, 0, 0},
				[]int{2, 0, 0, 0},
			),
			gained: 4 + 8 + 4 + 4,
		},
		{
			name: "east",
			side: East,
			board: fromTop(
				[]int{2, 2, 0, 0},
				[]int{4, 0, 4, 0},
				[]int{2, 2, 2, 2},
				[]int{0, 0, 0, 2},
			),
			expected: fromTop(
				[]int{0, 0, 0, 4},
				[]int{0, 0, 0, 8},
				[]int{0, 0, 4, 4},
				[]int{0, 0, 0, 2},
			),
			gained: 4 + 8 + 4 + 4,
		},
		{
			name: "north",
			side: North,
			board: fromTop(
				[]int{2, 4, 2, 0},
				[]int{2, 0, 2, 0},
				[]int{0, 4, 2, 0},
				[]int{0, 0, 2, 2},
			),
			expected: fromTop(
				[]int{4, 8, 4, 2},
				[]int{0, 0, 4, 0},
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
			),
			gained: 4 + 8 + 4 + 4,
		},
		{
			name: "south",
			side: South,
			board: fromTop(
				[]int{2, 4, 2, 2},
				[]int{2, 0, 2, 0},
				[]int{0, 4, 2, 0},
				[]int{0, 0, 2, 0},
			),
			expected: fromTop(
				[]int{0, 0, 0, 0},
				[]int{0, 0, 0, 0},
				[]int{0, 0, 4, 0},
				[]int{4, 8, 4, 2},
			),
			gained: 4 + 8 + 4 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.board)

			res := tilt(b, tt.side)

			if got := b.Values(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("tilt %v: got\n%v\nwant\n%v", tt.side, got, tt.expected)
			}
			if !res.Tilted {
				t.Errorf("tilt %v should report a change", tt.side)
			}
			if res.Gained != tt.gained {
				t.Errorf("tilt %v gained = %d, want %d", tt.side, res.Gained, tt.gained)
			}
			if b.Perspective() != North {
				t.Errorf("perspective after tilt = %v, want north", b.Perspective())
			}
		})
	}
}

func TestTiltBottomPairTowardBottom(t *testing.T) {
	// Column 0 holds 2, 2 at rows 0 and 1; tilting toward row 0 leaves a 4.
	b := mustBoard(t, [][]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := tilt(b, South)

	if got := b.Values()[0]; !reflect.DeepEqual(got, []int{4, 0, 0, 0}) {
		t.Errorf("row 0 = %v, want [4 0 0 0]", got)
	}
	if res.Gained != 4 || !res.Tilted {
		t.Errorf("result = %+v, want 4 gained and tilted", res)
	}

	// The same pair laid along row 0 merges when tilted West.
	b = mustBoard(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res = tilt(b, West)

	if got := b.Values()[0]; !reflect.DeepEqual(got, []int{4, 0, 0, 0}) {
		t.Errorf("row 0 = %v, want [4 0 0 0]", got)
	}
	if res.Gained != 4 || !res.Tilted {
		t.Errorf("result = %+v, want 4 gained and tilted", res)
	}
}

func TestTiltNoChange(t *testing.T) {
	b := mustBoard(t, fromTop(
		[]int{4, 2, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
	))
	before := b.Values()

	res := tilt(b, West)

	if res.Tilted {
		t.Error("tilt West should not change already left-aligned tiles")
	}
	if res.Gained != 0 || res.Merges != 0 {
		t.Errorf("no-op tilt result = %+v, want zero score and merges", res)
	}
	if !reflect.DeepEqual(b.Values(), before) {
		t.Errorf("board changed on no-op tilt: %v", b.Values())
	}
}

func TestTiltKeepsTileCoordinatesConsistent(t *testing.T) {
	b := mustBoard(t, fromTop(
		[]int{2, 0, 2, 4},
		[]int{0, 4, 4, 0},
		[]int{8, 0, 0, 8},
		[]int{2, 2, 2, 2},
	))

	for _, side := range []Side{East, South, West, North} {
		tilt(b, side)
		for col := range b.Size() {
			for row := range b.Size() {
				tile := b.Tile(col, row)
				if tile != nil && (tile.Col() != col || tile.Row() != row) {
					t.Fatalf("after tilt %v: tile %v stored at (%d, %d)", side, tile, col, row)
				}
			}
		}
	}
}

func TestTiltConservesTilesModuloMerges(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))
	values := []int{0, 0, 2, 2, 4, 8}

	for i := range 200 {
		size := 3 + i%3
		raw := make([][]int, size)
		for row := range raw {
			raw[row] = make([]int, size)
			for col := range raw[row] {
				raw[row][col] = values[rng.Intn(len(values))]
			}
		}

		for _, side := range Sides {
			b := mustBoard(t, raw)
			before := b.Count()
			sumBefore := sum(b.Values())

			res := tilt(b, side)

			if got := b.Count(); got != before-res.Merges {
				t.Fatalf("board %v tilt %v: count %d, want %d - %d", raw, side, got, before, res.Merges)
			}
			if sum(b.Values()) != sumBefore {
				t.Fatalf("board %v tilt %v: tile sum changed", raw, side)
			}
			if !res.Tilted && !reflect.DeepEqual(b.Values(), raw) {
				t.Fatalf("board %v tilt %v: changed without reporting it", raw, side)
			}
			if res.Tilted && reflect.DeepEqual(b.Values(), raw) {
				t.Fatalf("board %v tilt %v: reported a change that did not happen", raw, side)
			}
		}
	}
}

func TestTiltDeterministic(t *testing.T) {
	raw := fromTop(
		[]int{2, 4, 2, 4},
		[]int{2, 0, 2, 0},
		[]int{4, 4, 8, 8},
		[]int{0, 2, 0, 2},
	)

	a := mustBoard(t, raw)
	b := mustBoard(t, raw)
	resA := tilt(a, East)
	resB := tilt(b, East)

	if resA != resB || !reflect.DeepEqual(a.Values(), b.Values()) {
		t.Errorf("same input produced different output: %+v %v vs %+v %v", resA, a.Values(), resB, b.Values())
	}
}

func sum(raw [][]int) int {
	total := 0
	for _, line := range raw {
		for _, v := range line {
			total += v
		}
	}
	return total
}
