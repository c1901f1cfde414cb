package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kdgroup/algebra"
	"github.com/katalvlaran/kdgroup/group"
)

// Output formats and table kinds accepted on the command line.
const (
	formatText = "text"
	formatYAML = "yaml"

	kindGroup  = "group"
	kindBasis  = "basis"
	kindSigned = "signed"
)

// brewerSet1 colours generator edges, cycling when there are more than eight.
var brewerSet1 = []string{
	"#e41a1c", "#377eb8", "#4daf4a", "#984ea3",
	"#ff7f00", "#ffff33", "#a65628", "#f781bf",
}

// square holds the corners a loop is laid out on, scaled by 1/√2.
var square = [group.LoopSize][2]float64{{-1, -1}, {-1, 1}, {1, 1}, {1, -1}}

// memberDoc is one serialized group member.
type memberDoc struct {
	Index  int       `yaml:"index"`
	Label  string    `yaml:"label"`
	Coords []float64 `yaml:"coords,flow"`
}

// resultDoc is the serialized form of a derivation.
type resultDoc struct {
	Order      int         `yaml:"order"`
	Size       int         `yaml:"size"`
	Members    []memberDoc `yaml:"members"`
	Table      [][]int     `yaml:"table"`
	Generators []int       `yaml:"generators,flow"`
	Loops      [][]int     `yaml:"loops,omitempty"`
}

// newResultDoc flattens res into its serialized form.
func newResultDoc(res *group.Result) resultDoc {
	doc := resultDoc{
		Order:      res.Order,
		Size:       len(res.Members),
		Members:    make([]memberDoc, len(res.Members)),
		Table:      res.Table,
		Generators: res.GeneratorColumns(),
		Loops:      res.Loops,
	}
	for k, x := range res.Members {
		coords := x.Flatten()
		for p, v := range coords {
			if v == 0 {
				coords[p] = 0
			}
		}
		doc.Members[k] = memberDoc{Index: k, Label: res.Label(k), Coords: coords}
	}

	return doc
}

// writeYAML encodes res as YAML.
func writeYAML(w io.Writer, res *group.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newResultDoc(res)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// writeSummary prints members, generators and loops in plain text.
func writeSummary(w io.Writer, res *group.Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "order %d: %d members\n", res.Order, len(res.Members))
	for k, x := range res.Members {
		fmt.Fprintf(&sb, "  %2d %-4s %v\n", k, res.Label(k), x)
	}
	fmt.Fprintf(&sb, "%d generators found for the group\n", len(res.Generators))
	for _, g := range res.Generators {
		fmt.Fprintf(&sb, "  %s (column %d)\n", res.Label(g.Column), g.Column)
	}
	if res.Loops != nil {
		fmt.Fprintf(&sb, "%d loops\n", len(res.Loops))
		for _, loop := range res.Loops {
			labels := make([]string, len(loop))
			for p, idx := range loop {
				labels[p] = res.Label(idx)
			}
			fmt.Fprintf(&sb, "  %v [%s]\n", loop, strings.Join(labels, " "))
		}
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// writeIntTable prints a labelled integer matrix aligned in columns.
func writeIntTable(w io.Writer, labels []string, cells [][]int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "\t")
	for _, l := range labels {
		fmt.Fprintf(tw, "%s\t", l)
	}
	fmt.Fprintln(tw)
	for i, row := range cells {
		fmt.Fprintf(tw, "%s\t", labels[i])
		for _, v := range row {
			fmt.Fprintf(tw, "%d\t", v)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// writeElementTable prints the basis product table as coefficient tuples.
func writeElementTable(w io.Writer, basis []algebra.Element, cells [][]algebra.Element) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "\t")
	for _, x := range basis {
		fmt.Fprintf(tw, "%v\t", x)
	}
	fmt.Fprintln(tw)
	for i, row := range cells {
		fmt.Fprintf(tw, "%v\t", basis[i])
		for _, z := range row {
			fmt.Fprintf(tw, "%v\t", z)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// writeDOT emits the Cayley graph in Graphviz DOT: one vertex per member,
// one coloured edge set per generator, and fixed positions on concentric
// squares (loop k on the square of radius k+1) when loops are available.
func writeDOT(w io.Writer, res *group.Result, rotate int) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph \"g%d\" {\n", res.Order)
	sb.WriteString("  node [shape=circle];\n")

	pos := make(map[int][2]float64, len(res.Members))
	for k, loop := range group.RotateLoops(res.Loops, rotate) {
		for p, idx := range loop {
			r := float64(k+1) / math.Sqrt2
			pos[idx] = [2]float64{square[p][0] * r, square[p][1] * r}
		}
	}
	for idx := range res.Members {
		fmt.Fprintf(&sb, "  %d [label=%q", idx, res.Label(idx))
		if xy, ok := pos[idx]; ok {
			fmt.Fprintf(&sb, ", pos=\"%s,%s!\"", formatFloat(xy[0]), formatFloat(xy[1]))
		}
		sb.WriteString("];\n")
	}
	for k, g := range res.Generators {
		color := brewerSet1[k%len(brewerSet1)]
		for _, e := range g.Edges.Edges() {
			fmt.Fprintf(&sb, "  %d -> %d [color=%q];\n", e.From, e.To, color)
		}
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())

	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
