package render

import "lifegrid/pkg/core"

// ASCII draws the view as text, one newline-terminated line per row.
func ASCII(view core.GridReader, alive, dead rune) string {
	stride := view.Columns() + 1
	out := make([]rune, view.Rows()*stride)
	for i := range out {
		out[i] = dead
		if i%stride == stride-1 {
			out[i] = '\n'
		}
	}
	view.ForEachAlive(func(row, column int) {
		out[row*stride+column] = alive
	})
	return string(out)
}
