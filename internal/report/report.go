package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	huffman "github.com/chronos-tachyon/huffreport"
	"github.com/fatih/color"
	"github.com/taigrr/colorhash"
)

// Format selects how a report is rendered.
type Format int

const (
	// FormatText renders one line per symbol, like:
	//
	//     --- Huffman Codes ---
	//     Char: a, Code: 110
	//
	FormatText Format = iota

	// FormatJSON renders a single JSON document.
	FormatJSON
)

var formatNames = []string{"text", "json"}

// ParseFormat converts a format name into a Format.
func ParseFormat(str string) (Format, error) {
	for index, name := range formatNames {
		if strings.EqualFold(str, name) {
			return Format(index), nil
		}
	}
	return FormatText, fmt.Errorf("unknown report format %q, expected one of %s", str, strings.Join(formatNames, ", "))
}

// String returns the name of the Format.
func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Options controls what a report contains and how it looks.
type Options struct {
	Format Format

	// Codes includes the code table and its cost.
	Codes bool

	// Tree includes the depth-annotated leaf listing.
	Tree bool

	// Color enables ANSI colours in text reports.
	Color bool
}

// Write renders the report for tree to w.
func Write(w io.Writer, tree *huffman.Tree, opts Options) error {
	switch opts.Format {
	case FormatText:
		return writeText(w, tree, opts)
	case FormatJSON:
		return writeJSON(w, tree, opts)
	default:
		return fmt.Errorf("unknown report format %v", opts.Format)
	}
}

// symbolPalette holds the colours a symbol can be drawn in.  A symbol always
// gets the same colour, picked by hashing it.
var symbolPalette = []color.Attribute{
	color.FgRed,
	color.FgGreen,
	color.FgYellow,
	color.FgBlue,
	color.FgMagenta,
	color.FgCyan,
}

type palette struct {
	enabled bool
	heading *color.Color
	zero    *color.Color
	one     *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		enabled: enabled,
		heading: color.New(color.Bold),
		zero:    color.New(color.FgHiBlack),
		one:     color.New(color.FgHiWhite, color.Bold),
	}
	for _, c := range []*color.Color{p.heading, p.zero, p.one} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) symbol(symbol huffman.Symbol) string {
	str := symbol.String()
	if !p.enabled {
		return str
	}
	index := uint(colorhash.HashString(str)) % uint(len(symbolPalette))
	c := color.New(symbolPalette[index])
	c.EnableColor()
	return c.Sprint(str)
}

func (p *palette) code(hc huffman.Code) string {
	if !p.enabled {
		return hc.Bits()
	}
	var sb strings.Builder
	for i := 0; i < hc.Size(); i++ {
		if hc.Bit(i) == 0 {
			sb.WriteString(p.zero.Sprint("0"))
		} else {
			sb.WriteString(p.one.Sprint("1"))
		}
	}
	return sb.String()
}

func writeText(w io.Writer, tree *huffman.Tree, opts Options) error {
	p := newPalette(opts.Color)

	var sb strings.Builder
	if opts.Tree {
		sb.WriteString(p.heading.Sprint("--- Huffman Tree ---"))
		sb.WriteByte('\n')
		tree.Walk(func(leaf huffman.LeafVisit) {
			fmt.Fprintf(&sb, "Leaf: %s (depth %d)\n", p.symbol(leaf.Symbol), leaf.Depth)
		})
	}
	if opts.Codes {
		ct := tree.Codes()
		sb.WriteString(p.heading.Sprint("--- Huffman Codes ---"))
		sb.WriteByte('\n')
		for _, sc := range ct.Entries() {
			fmt.Fprintf(&sb, "Char: %s, Code: %s\n", p.symbol(sc.Symbol), p.code(sc.Code))
		}
		fmt.Fprintf(&sb, "Cost: %s\n", formatFloat(ct.Cost()))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// formatFloat trims the noise that floating-point sums accumulate, so that
// 0.1+0.2+... prints as the value a reader expects.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 12, 64)
}

type jsonCode struct {
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
	Code   string  `json:"code"`
}

type jsonLeaf struct {
	Symbol string `json:"symbol"`
	Depth  int    `json:"depth"`
}

type jsonReport struct {
	Codes  []jsonCode `json:"codes,omitempty"`
	Leaves []jsonLeaf `json:"leaves,omitempty"`
	Cost   *float64   `json:"cost,omitempty"`
}

func writeJSON(w io.Writer, tree *huffman.Tree, opts Options) error {
	var doc jsonReport
	if opts.Tree {
		doc.Leaves = make([]jsonLeaf, 0, tree.NumLeaves())
		tree.Walk(func(leaf huffman.LeafVisit) {
			doc.Leaves = append(doc.Leaves, jsonLeaf{Symbol: leaf.Symbol.String(), Depth: leaf.Depth})
		})
	}
	if opts.Codes {
		ct := tree.Codes()
		doc.Codes = make([]jsonCode, 0, ct.Len())
		for _, sc := range ct.Entries() {
			doc.Codes = append(doc.Codes, jsonCode{
				Symbol: sc.Symbol.String(),
				Weight: sc.Weight,
				Code:   sc.Code.Bits(),
			})
		}
		cost, _ := strconv.ParseFloat(formatFloat(ct.Cost()), 64)
		doc.Cost = &cost
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
