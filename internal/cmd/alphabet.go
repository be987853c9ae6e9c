package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	huffman "github.com/chronos-tachyon/huffreport"
	"github.com/spf13/cobra"
)

// defaultAlphabet is used when neither --symbol nor --file is given.
var defaultAlphabet = []huffman.Weighted{
	{Symbol: 'a', Weight: 0.1},
	{Symbol: 'b', Weight: 0.2},
	{Symbol: 'c', Weight: 0.3},
	{Symbol: 'd', Weight: 0.4},
}

type alphabetFlags struct {
	symbols []string
	file    string
}

func (af *alphabetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&af.symbols, "symbol", "s", nil, "Symbol and weight as SYMBOL=WEIGHT, repeatable (e.g. -s a=0.1 -s b=0.9)")
	cmd.Flags().StringVarP(&af.file, "file", "f", "", "Read \"SYMBOL WEIGHT\" lines from a file ('-' for stdin)")
	cmd.MarkFlagsMutuallyExclusive("symbol", "file")
}

// load returns the alphabet selected by the flags, in input order.
func (af *alphabetFlags) load(stdin io.Reader) ([]huffman.Weighted, error) {
	switch {
	case len(af.symbols) != 0:
		out := make([]huffman.Weighted, 0, len(af.symbols))
		for _, arg := range af.symbols {
			index := strings.LastIndexByte(arg, '=')
			if index < 0 {
				return nil, fmt.Errorf("invalid --symbol %q, expected SYMBOL=WEIGHT", arg)
			}
			w, err := parseWeighted(arg[:index], arg[index+1:])
			if err != nil {
				return nil, fmt.Errorf("invalid --symbol %q: %w", arg, err)
			}
			out = append(out, w)
		}
		return out, nil

	case af.file == "-":
		return readAlphabet(stdin)

	case af.file != "":
		f, err := os.Open(af.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readAlphabet(f)

	default:
		out := make([]huffman.Weighted, len(defaultAlphabet))
		copy(out, defaultAlphabet)
		return out, nil
	}
}

// readAlphabet parses one "SYMBOL WEIGHT" pair per line.  Blank lines and
// lines starting with '#' are ignored.
func readAlphabet(r io.Reader) ([]huffman.Weighted, error) {
	var out []huffman.Weighted
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		index := strings.LastIndexAny(line, " \t")
		if index < 0 {
			return nil, fmt.Errorf("line %d: expected \"SYMBOL WEIGHT\", got %q", lineNum, line)
		}
		w, err := parseWeighted(strings.TrimSpace(line[:index]), line[index+1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		out = append(out, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseWeighted(symbolStr, weightStr string) (huffman.Weighted, error) {
	symbol, err := parseSymbol(symbolStr)
	if err != nil {
		return huffman.Weighted{}, err
	}
	weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
	if err != nil {
		return huffman.Weighted{}, fmt.Errorf("invalid weight %q: %w", weightStr, err)
	}
	return huffman.Weighted{Symbol: symbol, Weight: weight}, nil
}

// parseSymbol accepts a single byte, or a Go character literal such as
// ' ' or '\n' for symbols that are awkward to type.
func parseSymbol(str string) (huffman.Symbol, error) {
	if len(str) == 1 {
		return huffman.Symbol(str[0]), nil
	}
	if len(str) >= 3 && str[0] == '\'' && str[len(str)-1] == '\'' {
		value, _, tail, err := strconv.UnquoteChar(str[1:len(str)-1], '\'')
		if err == nil && tail == "" && value <= rune(huffman.MaxSymbol) {
			return huffman.Symbol(value), nil
		}
	}
	return huffman.InvalidSymbol, fmt.Errorf("invalid symbol %q, expected one character", str)
}
