// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/gomoku/pkg/board"
)

var (
	blackStone = color.New(color.FgCyan, color.Bold)
	whiteStone = color.New(color.FgRed, color.Bold)
	emptyCell  = color.New(color.Faint)
	marked     = color.New(color.BgYellow, color.FgBlack, color.Bold)
	axis       = color.New(color.FgYellow)
)

// render draws b with the rows as x and the columns as y. The marked
// points are highlighted.
func render(w io.Writer, b *board.Board, marks ...board.Point) {
	highlight := make(map[board.Point]bool, len(marks))
	for _, p := range marks {
		highlight[p] = true
	}

	var header strings.Builder
	header.WriteString("   ")
	for y := 0; y < b.Size(); y++ {
		fmt.Fprintf(&header, "%2d ", y)
	}
	axis.Fprintln(w, header.String())

	for x := 0; x < b.Size(); x++ {
		axis.Fprintf(w, "%2d ", x)

		for y := 0; y < b.Size(); y++ {
			cell := " " + string(b.At(x, y).Symbol()) + " "

			switch {
			case highlight[board.Point{X: x, Y: y}]:
				marked.Fprint(w, cell)
			case b.At(x, y) == board.Black:
				blackStone.Fprint(w, cell)
			case b.At(x, y) == board.White:
				whiteStone.Fprint(w, cell)
			default:
				emptyCell.Fprint(w, cell)
			}
		}

		fmt.Fprintln(w)
	}
}
