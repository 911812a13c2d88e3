package fuzzing

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/zeu5/tree-diff-fuzz/tree"
)

// TreeShape encodes a tree's structure as the pre-order sequence of child
// counts. Two trees with equal shapes are structurally identical regardless
// of tags or props.
func TreeShape(root *tree.Node) string {
	var b strings.Builder
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		b.WriteString(strconv.Itoa(len(n.Children())))
		if len(n.Children()) > 0 {
			b.WriteByte('(')
			for _, child := range n.Children() {
				walk(child)
			}
			b.WriteByte(')')
		}
	}
	walk(root)
	return b.String()
}

// Fingerprint digests a tree's pre-order identities and property payloads.
// Two traversals of an untouched tree always produce the same fingerprint.
func Fingerprint(root *tree.Node) string {
	h := sha256.New()
	fmt.Fprintf(h, "%d:%s\n", root.Tag(), root.Props())
	tree.Traverse(root, func(e tree.Edge) bool {
		fmt.Fprintf(h, "%d:%s\n", e.Node.Tag(), e.Node.Props())
		return false
	})
	return fmt.Sprintf("%x", h.Sum(nil))
}

// treeDepth returns the number of levels under root, counting root itself.
func treeDepth(root *tree.Node) int {
	max := 0
	for _, child := range root.Children() {
		if d := treeDepth(child); d > max {
			max = d
		}
	}
	return max + 1
}

type DataSet interface{}

// Analyzer computes a data set over the records of a finished run.
type Analyzer func(records []*IterationRecord) DataSet

// ShapeCoverage counts, per iteration, the cumulative number of distinct
// tree shapes generated so far.
func ShapeCoverage() Analyzer {
	return func(records []*IterationRecord) DataSet {
		seen := make(map[string]bool)
		coverage := make([]int, 0, len(records))
		for _, r := range records {
			seen[r.Shape] = true
			coverage = append(coverage, len(seen))
		}
		return coverage
	}
}

// ShapeCoveragePlot writes a shape-coverage-over-iterations line plot into
// plotPath.
func ShapeCoveragePlot(plotPath string) func(records []*IterationRecord) error {
	return func(records []*IterationRecord) error {
		if _, err := os.Stat(plotPath); err != nil {
			os.MkdirAll(plotPath, os.ModePerm)
		}
		coverage := ShapeCoverage()(records).([]int)
		points := make(plotter.XYs, len(coverage))
		for i, v := range coverage {
			points[i] = plotter.XY{
				X: float64(i),
				Y: float64(v),
			}
		}
		p := plot.New()
		p.Title.Text = "Shape coverage"
		p.X.Label.Text = "Iteration"
		p.Y.Label.Text = "Distinct shapes"
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(0)
		p.Add(line)
		return p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, "shape_coverage.png"))
	}
}

// Summary renders aggregate statistics for a finished run.
func Summary(records []*IterationRecord) string {
	if len(records) == 0 {
		return "no iterations"
	}
	counts := make([]float64, len(records))
	depths := make([]float64, len(records))
	shapes := make(map[string]bool)
	violations := 0
	for i, r := range records {
		counts[i] = float64(r.NodeCount)
		depths[i] = float64(r.Depth)
		shapes[r.Shape] = true
		violations += len(r.Violations)
	}
	countMean, countStd := stat.MeanStdDev(counts, nil)
	depthMean, depthStd := stat.MeanStdDev(depths, nil)
	return fmt.Sprintf(
		"iterations: %d, distinct shapes: %d, nodes %.1f±%.1f, depth %.1f±%.1f, violations: %d",
		len(records), len(shapes), countMean, countStd, depthMean, depthStd, violations)
}
