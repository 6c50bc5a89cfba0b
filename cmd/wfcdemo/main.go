// Command wfcdemo collapses a small checkerboard-tiled grid end to end
// and then asks LocalCollapse to flip cell (0,0) of the result, printing
// the collapsed grid and then either the repaired grid or the
// contradiction LocalCollapse reports. On this checkerboard table the
// flip always contradicts: LocalCollapse keeps every other cell to the
// modules its prior neighbours allow, which leaves the cells beside
// (0,0) with none. It exists to exercise Collapse and LocalCollapse
// against a real module.Table outside of the test suite.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/katalvlaran/wfc/heuristic"
	"github.com/katalvlaran/wfc/module"
	"github.com/katalvlaran/wfc/wfc"
)

const (
	width  = 6
	height = 4
)

func main() {
	table := checkerboardTable()
	slotH := heuristic.NewDefaultSlotHeuristic(nil)
	bitH := heuristic.NewDefaultBitHeuristic(nil)

	traceSink := make(chan wfc.TraceEvent, width*height*4)
	ctx, err := wfc.NewContext(table, width, height, slotH, bitH, wfc.WithTraceSink(traceSink))
	if err != nil {
		log.Fatalf("wfcdemo: building context: %v", err)
	}

	finalSink := make(chan wfc.Result, 1)
	ctx.Collapse(context.Background(), 10, finalSink)
	result := <-finalSink
	if !result.Ok() {
		log.Fatalf("wfcdemo: collapse failed: %v", result.Err)
	}

	fmt.Println("collapsed grid:")
	printGrid(result.Solution)
	fmt.Printf("narrowing events observed: %d\n\n", len(traceSink))

	repairCtx, err := wfc.FromExistingCollapse(table, width, height, slotH, bitH, result.Solution)
	if err != nil {
		log.Fatalf("wfcdemo: building repair context: %v", err)
	}

	forced := module.ModuleID(1 - result.Solution[0])
	repairSink := make(chan wfc.Result, 1)
	repairCtx.LocalCollapse(context.Background(), 0, 0, forced, 10, repairSink)
	repaired := <-repairSink
	if !repaired.Ok() {
		fmt.Printf("local repair of (0,0) to module %d contradicted: %v\n", forced, repaired.Err)
		return
	}

	fmt.Println("grid after forcing (0,0):")
	printGrid(repaired.Solution)
}

func printGrid(solution []module.ModuleID) {
	var b strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			fmt.Fprintf(&b, "%d ", solution[row*width+col])
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

// checkerboardTable is the two-module adjacency table where each module
// only tolerates the other as a neighbour in every direction.
func checkerboardTable() *module.Table {
	table := module.NewTable(2, 2)
	for _, d := range module.AllDirections {
		table.Modules[0].AddNeighbour(d, 1)
		table.Modules[1].AddNeighbour(d, 0)
	}
	return table
}
