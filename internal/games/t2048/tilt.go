package t2048

// TiltResult describes what a single tilt did to the board.
type TiltResult struct {
	Tilted   bool // any tile moved or merged
	Gained   int  // score gained from merges
	Merges   int  // number of merges
	GameOver bool // set by Model.Tilt; tilt itself leaves it false
}

// tilt slides and merges every tile on b toward side and restores the
// identity perspective before returning.
//
// Each column is scanned from the far edge inward. A tile slides to the
// cell just behind the last settled tile, or merges into that tile when
// the values match and the settled tile has not merged during this tilt.
func tilt(b *Board, side Side) TiltResult {
	b.SetViewingPerspective(side)
	defer b.ResetPerspective()

	var res TiltResult
	merged := make(map[*Tile]struct{})
	size := b.Size()

	for col := range size {
		settled := size // row of the last settled tile; size means none yet
		for row := size - 1; row >= 0; row-- {
			t := b.Tile(col, row)
			if t == nil {
				continue
			}

			if settled < size {
				ahead := b.Tile(col, settled)
				if _, done := merged[ahead]; !done && ahead.Value() == t.Value() {
					result, _ := b.Move(col, settled, t)
					merged[result] = struct{}{}
					res.Gained += result.Value()
					res.Merges++
					res.Tilted = true
					continue
				}
			}

			dest := settled - 1
			if dest != row {
				b.Move(col, dest, t)
				res.Tilted = true
			}
			settled = dest
		}
	}

	return res
}
