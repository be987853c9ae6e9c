package report

import (
	"encoding/json"
	"strings"
	"testing"

	huffman "github.com/chronos-tachyon/huffreport"
)

func makeTestTree(t *testing.T) *huffman.Tree {
	t.Helper()
	tree, err := huffman.BuildFromWeights([]huffman.Weighted{
		{Symbol: 'a', Weight: 0.1},
		{Symbol: 'b', Weight: 0.2},
		{Symbol: 'c', Weight: 0.3},
		{Symbol: 'd', Weight: 0.4},
	})
	if err != nil {
		t.Fatalf("BuildFromWeights failed: %v", err)
	}
	return tree
}

func TestWrite_Text(t *testing.T) {
	tree := makeTestTree(t)

	expect := strings.Join([]string{
		"--- Huffman Tree ---\n",
		"Leaf: d (depth 1)\n",
		"Leaf: c (depth 2)\n",
		"Leaf: a (depth 3)\n",
		"Leaf: b (depth 3)\n",
		"--- Huffman Codes ---\n",
		"Char: d, Code: 0\n",
		"Char: c, Code: 10\n",
		"Char: a, Code: 110\n",
		"Char: b, Code: 111\n",
		"Cost: 1.9\n",
	}, "")

	var buf strings.Builder
	err := Write(&buf, tree, Options{Format: FormatText, Codes: true, Tree: true})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if actual := buf.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestWrite_TextColor(t *testing.T) {
	tree := makeTestTree(t)

	var buf strings.Builder
	err := Write(&buf, tree, Options{Format: FormatText, Codes: true, Color: true})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	actual := buf.String()
	if !strings.Contains(actual, "\x1b[") {
		t.Errorf("expected ANSI escapes in colored output:\n\t%q", actual)
	}
	if strings.Contains(actual, "Leaf:") {
		t.Errorf("unexpected tree section:\n\t%q", actual)
	}
}

func TestWrite_JSON(t *testing.T) {
	tree := makeTestTree(t)

	var buf strings.Builder
	err := Write(&buf, tree, Options{Format: FormatJSON, Codes: true, Tree: true})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var doc jsonReport
	if err := json.Unmarshal([]byte(buf.String()), &doc); err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}
	if len(doc.Codes) != 4 || doc.Codes[0] != (jsonCode{Symbol: "d", Weight: 0.4, Code: "0"}) {
		t.Errorf("wrong codes: %+v", doc.Codes)
	}
	if len(doc.Leaves) != 4 || doc.Leaves[3] != (jsonLeaf{Symbol: "b", Depth: 3}) {
		t.Errorf("wrong leaves: %+v", doc.Leaves)
	}
	if doc.Cost == nil || *doc.Cost != 1.9 {
		t.Errorf("wrong cost: %v", doc.Cost)
	}
}

func TestWrite_JSONTreeOnly(t *testing.T) {
	tree := makeTestTree(t)

	var buf strings.Builder
	err := Write(&buf, tree, Options{Format: FormatJSON, Tree: true})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if actual := buf.String(); strings.Contains(actual, "codes") || strings.Contains(actual, "cost") {
		t.Errorf("unexpected code section:\n\t%s", actual)
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "JSON"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", name, err)
			continue
		}
		if !strings.EqualFold(f.String(), name) {
			t.Errorf("wrong round trip: %q -> %v", name, f)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}
