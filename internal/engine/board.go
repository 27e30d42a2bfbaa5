package engine

import "math/rand"

// CellRef addresses a cell as (category column, row) within one round's grid.
type CellRef struct {
	Col int
	Row int
}

type Cell struct {
	Value         int
	DailyDouble   bool
	TripleStumper bool
	Used          bool
}

// Board is one round's clue grid. Cells are indexed [col][row]; every column
// shares the same row point values.
type Board struct {
	Categories []string
	Cells      [][]Cell
	Completed  int
}

// CellInfo is what OpenCell hands back: the flags the presentation layer
// needs to route the clue. The clue/response text itself lives with the
// persistence layer, keyed by the same (col,row).
type CellInfo struct {
	Ref         CellRef
	Value       int
	DailyDouble bool
}

// NewBoard builds a fresh, fully unused grid. maxDoubles is the round's
// daily-double cap (1 in round one, 2 in round two).
func NewBoard(categories []string, pointValues []int, dailyDoubles []CellRef, maxDoubles int) (*Board, error) {
	if len(categories) == 0 || len(pointValues) == 0 {
		return nil, ErrInvalidBoard
	}
	if len(dailyDoubles) > maxDoubles {
		return nil, ErrInvalidBoard
	}
	b := &Board{Categories: categories}
	b.Cells = make([][]Cell, len(categories))
	for col := range b.Cells {
		b.Cells[col] = make([]Cell, len(pointValues))
		for row := range b.Cells[col] {
			b.Cells[col][row] = Cell{Value: pointValues[row]}
		}
	}
	seen := map[CellRef]bool{}
	for _, ref := range dailyDoubles {
		if !b.inBounds(ref.Col, ref.Row) || seen[ref] {
			return nil, ErrInvalidBoard
		}
		seen[ref] = true
		b.Cells[ref.Col][ref.Row].DailyDouble = true
	}
	return b, nil
}

func (b *Board) OpenCell(col, row int) (CellInfo, error) {
	c, err := b.cell(col, row)
	if err != nil {
		return CellInfo{}, err
	}
	if c.Used {
		return CellInfo{}, ErrAlreadyUsed
	}
	c.Used = true
	b.Completed++
	return CellInfo{Ref: CellRef{Col: col, Row: row}, Value: c.Value, DailyDouble: c.DailyDouble}, nil
}

// ReopenCell is the admin "bring clue back" override. Board-only: score
// deltas already applied for the cell are not reversed here.
func (b *Board) ReopenCell(col, row int) error {
	c, err := b.cell(col, row)
	if err != nil {
		return err
	}
	if !c.Used {
		return ErrNotUsed
	}
	c.Used = false
	b.Completed--
	return nil
}

func (b *Board) MarkTripleStumper(col, row int, value bool) error {
	c, err := b.cell(col, row)
	if err != nil {
		return err
	}
	if !c.Used {
		return ErrNotOpen
	}
	c.TripleStumper = value
	return nil
}

func (b *Board) IsComplete() bool {
	return b.Completed == b.TotalCells()
}

func (b *Board) TotalCells() int {
	if len(b.Cells) == 0 {
		return 0
	}
	return len(b.Cells) * len(b.Cells[0])
}

// MaxValue is the highest point value on the board, used as the wager floor
// for daily doubles.
func (b *Board) MaxValue() int {
	max := 0
	for _, col := range b.Cells {
		for _, c := range col {
			if c.Value > max {
				max = c.Value
			}
		}
	}
	return max
}

func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < len(b.Cells) && row >= 0 && row < len(b.Cells[col])
}

func (b *Board) cell(col, row int) (*Cell, error) {
	if !b.inBounds(col, row) {
		return nil, ErrInvalidIndex
	}
	return &b.Cells[col][row], nil
}

// pickDailyDoubles chooses k distinct cells uniformly at random, skipping
// row 0 so a daily double never lands on the lowest point value. Var so
// tests (or a driver wanting fixed placement) can stub it.
var pickDailyDoubles = func(numCols, numRows, k int, rng *rand.Rand) []CellRef {
	if numRows < 2 || k <= 0 {
		return nil
	}
	pool := make([]CellRef, 0, numCols*(numRows-1))
	for col := 0; col < numCols; col++ {
		for row := 1; row < numRows; row++ {
			pool = append(pool, CellRef{Col: col, Row: row})
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if k > len(pool) {
		k = len(pool)
	}
	return pool[:k]
}
