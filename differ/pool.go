package differ

import "sync"

// Pool capacities sized for a typical paragraph edit
const (
	pieceSliceCap = 16
	cutSliceCap   = 8
)

var pieceSlicePool = sync.Pool{
	New: func() any {
		s := make([]piece, 0, pieceSliceCap)
		return &s
	},
}

func getPieceSlice() *[]piece {
	s := pieceSlicePool.Get().(*[]piece)
	*s = (*s)[:0]
	return s
}

func putPieceSlice(s *[]piece) {
	if s == nil || cap(*s) > 256 {
		return
	}
	clear(*s)
	pieceSlicePool.Put(s)
}

var cutSlicePool = sync.Pool{
	New: func() any {
		s := make([]int, 0, cutSliceCap)
		return &s
	},
}

func getCutSlice() *[]int {
	s := cutSlicePool.Get().(*[]int)
	*s = (*s)[:0]
	return s
}

func putCutSlice(s *[]int) {
	if s == nil || cap(*s) > 256 {
		return
	}
	cutSlicePool.Put(s)
}
