package block

import "github.com/helmgren/tessel/mat"

// Partition splits m into a copying Grid of ceil(rows/bs)×ceil(cols/bs)
// owned blocks; trailing blocks carry the remainder when bs does not divide
// a dimension. Use this form when blocks are reused across operations.
//
// Complexity: O(rows·cols) time and memory.
func Partition(m *mat.Matrix, blockSize int) (*Grid, error) {
	rowSpans, colSpans, err := axisSpans(m, blockSize)
	if err != nil {
		return nil, err
	}

	blocks := make([][]*mat.Matrix, len(rowSpans))
	for bi, rs := range rowSpans {
		blocks[bi] = make([]*mat.Matrix, len(colSpans))
		for bj, cs := range colSpans {
			b, err := m.Slice(rs.Start, cs.Start, rs.Len, cs.Len)
			if err != nil {
				return nil, err
			}
			blocks[bi][bj] = b
		}
	}

	return NewGrid(blocks)
}

// PartitionView splits m into the same grid shape as Partition but returns
// zero-copy read-only views. Used when blocks live only for one operation.
//
// Complexity: O(grid size) time, O(1) per view.
func PartitionView(m *mat.Matrix, blockSize int) ([][]View, error) {
	rowSpans, colSpans, err := axisSpans(m, blockSize)
	if err != nil {
		return nil, err
	}

	views := make([][]View, len(rowSpans))
	for bi, rs := range rowSpans {
		views[bi] = make([]View, len(colSpans))
		for bj, cs := range colSpans {
			views[bi][bj] = View{
				src:    m,
				rowOff: rs.Start,
				colOff: cs.Start,
				rows:   rs.Len,
				cols:   cs.Len,
			}
		}
	}

	return views, nil
}

// axisSpans computes the row and column spans of m under blockSize.
func axisSpans(m *mat.Matrix, blockSize int) (rowSpans, colSpans []Span, err error) {
	if blockSize <= 0 {
		return nil, nil, ErrBlockSize
	}
	if rowSpans, err = Spans(m.Rows(), blockSize); err != nil {
		return nil, nil, err
	}
	if colSpans, err = Spans(m.Cols(), blockSize); err != nil {
		return nil, nil, err
	}

	return rowSpans, colSpans, nil
}
