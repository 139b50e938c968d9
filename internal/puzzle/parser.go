// Package puzzle parses the text puzzle format into a *lib.Grid with
// variants attached. It is the external collaborator spec.md §6.1
// describes: the core never sees the errors this package reports.
package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eftil/variant-sudoku/lib"
	"github.com/eftil/variant-sudoku/lib/variants"
)

// ParseError reports a problem with the puzzle text itself, as
// distinct from a *lib.Contradiction raised by the solved core.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Parse reads the §6.1 text format from r and returns a populated
// grid, or a *ParseError describing the first problem found.
func Parse(r io.Reader) (*lib.Grid, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading puzzle: %w", err)
	}
	if len(lines) < 9 {
		return nil, &ParseError{Line: len(lines) + 1, Reason: "expected 9 grid lines, input ended early"}
	}

	g := lib.NewGrid()
	for i := 0; i < 9; i++ {
		if err := parseGridLine(g, i, lines[i]); err != nil {
			return nil, err
		}
	}

	for lineNo := 9; lineNo < len(lines); lineNo++ {
		text := strings.TrimSpace(lines[lineNo])
		if text == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(text), "solution:") {
			break
		}
		v, err := parseVariantLine(lineNo+1, text)
		if err != nil {
			return nil, err
		}
		g.AddVariant(v)
	}

	return g, nil
}

func parseGridLine(g *lib.Grid, row int, line string) error {
	if len(line) != 9 {
		return &ParseError{Line: row + 1, Reason: fmt.Sprintf("expected exactly 9 characters, got %d", len(line))}
	}
	for col, ch := range line {
		if ch == '.' {
			continue
		}
		if ch < '1' || ch > '9' {
			return &ParseError{Line: row + 1, Reason: fmt.Sprintf("invalid character %q at column %d", ch, col+1)}
		}
		if err := g.Set(row, col, int(ch-'0')); err != nil {
			return &ParseError{Line: row + 1, Reason: fmt.Sprintf("given at (%d,%d) conflicts with classic rules: %v", row+1, col+1, err)}
		}
	}
	return nil
}

// parseVariantLine parses one "Type : payload" line into a lib.Variant.
func parseVariantLine(lineNo int, text string) (lib.Variant, error) {
	parts := strings.SplitN(text, ":", 2)
	kind := strings.ToLower(strings.TrimSpace(parts[0]))
	payload := ""
	if len(parts) == 2 {
		payload = strings.TrimSpace(parts[1])
	}

	switch kind {
	case "killer":
		cells, err := parseCoords(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		target, err := parseTrailingInt(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewKillerCage(cells, target)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "diagonal":
		switch strings.ToLower(payload) {
		case "positive":
			return variants.NewAntiDiagonal(), nil
		case "negative":
			return variants.NewMainDiagonal(), nil
		default:
			return nil, lineErr(lineNo, fmt.Errorf("diagonal needs a %q suffix, got %q", "positive|negative", payload))
		}

	case "thermometer":
		cells, err := parseCoords(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewThermometer(cells)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "renban":
		cells, err := parseCoords(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewRenban(cells)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "entropic":
		cells, err := parseCoords(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewEntropic(cells)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "arrow":
		cells, err := parseCoords(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewArrow(cells)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "region sum":
		cells, err := parseCoords(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewRegionSum(cells)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "nabner":
		cells, err := parseCoords(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewNabner(cells)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "german whisper":
		circular := false
		p := payload
		if idx := strings.LastIndex(strings.ToLower(p), "circular"); idx != -1 {
			circular = true
			p = strings.TrimRight(p[:idx], " :")
		}
		cells, err := parseCoords(p)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewGermanWhisper(cells, circular)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "kropki":
		cells, suffix, err := splitPayloadSuffix(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		if len(cells) != 2 {
			return nil, lineErr(lineNo, fmt.Errorf("kropki needs exactly 2 positions, got %d", len(cells)))
		}
		var black bool
		switch strings.ToLower(suffix) {
		case "white":
			black = false
		case "black":
			black = true
		default:
			return nil, lineErr(lineNo, fmt.Errorf("kropki needs a %q suffix, got %q", "white|black", suffix))
		}
		v, err := variants.NewKropki(cells[0], cells[1], black)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "xv":
		cells, suffix, err := splitPayloadSuffix(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		if len(cells) != 2 {
			return nil, lineErr(lineNo, fmt.Errorf("xv needs exactly 2 positions, got %d", len(cells)))
		}
		var target int
		switch strings.ToLower(suffix) {
		case "x":
			target = 10
		case "v":
			target = 5
		default:
			return nil, lineErr(lineNo, fmt.Errorf("xv needs an %q suffix, got %q", "x|v", suffix))
		}
		v, err := variants.NewXV(cells[0], cells[1], target)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "quadruple":
		cells, suffix, err := splitPayloadSuffix(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		digits, err := parseDigitList(suffix)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewQuadruple(cells, digits, false)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "anti quadruple":
		cells, suffix, err := splitPayloadSuffix(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		digits, err := parseDigitList(suffix)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		v, err := variants.NewQuadruple(cells, digits, true)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		return v, nil

	case "shaded":
		cells, suffix, err := splitPayloadSuffix(payload)
		if err != nil {
			return nil, lineErr(lineNo, err)
		}
		if len(cells) != 1 {
			return nil, lineErr(lineNo, fmt.Errorf("shaded needs exactly 1 position, got %d", len(cells)))
		}
		var odd bool
		switch strings.ToLower(suffix) {
		case "circle":
			odd = true
		case "square":
			odd = false
		default:
			return nil, lineErr(lineNo, fmt.Errorf("shaded needs a %q suffix, got %q", "circle|square", suffix))
		}
		return variants.NewShaded(cells[0], odd), nil

	case "knight":
		return variants.NewKnight(), nil

	case "king":
		return variants.NewKing(), nil

	default:
		return nil, &ParseError{Line: lineNo, Reason: fmt.Sprintf("unknown variant type %q", kind)}
	}
}

func lineErr(lineNo int, err error) *ParseError {
	return &ParseError{Line: lineNo, Reason: err.Error()}
}

// splitPayloadSuffix splits "(r,c)(r,c) : suffix" into its coordinate
// list and trailing suffix, where payload already had its own leading
// "Type :" stripped.
func splitPayloadSuffix(payload string) ([]lib.Coord, string, error) {
	idx := strings.LastIndex(payload, ")")
	if idx == -1 {
		return nil, "", fmt.Errorf("no position list found in %q", payload)
	}
	coordPart := payload[:idx+1]
	rest := strings.TrimSpace(payload[idx+1:])
	rest = strings.TrimPrefix(rest, ":")
	rest = strings.TrimSpace(rest)
	cells, err := parseCoords(coordPart)
	if err != nil {
		return nil, "", err
	}
	return cells, rest, nil
}

// parseCoords extracts every "(row,col)" pair from s, 1-based in the
// text format and converted to 0-based lib.Coord values.
func parseCoords(s string) ([]lib.Coord, error) {
	var cells []lib.Coord
	for {
		open := strings.Index(s, "(")
		if open == -1 {
			break
		}
		closeIdx := strings.Index(s[open:], ")")
		if closeIdx == -1 {
			return nil, fmt.Errorf("unmatched '(' in position list %q", s)
		}
		closeIdx += open
		inner := s[open+1 : closeIdx]
		coord, err := parseOnePair(inner)
		if err != nil {
			return nil, err
		}
		cells = append(cells, coord)
		s = s[closeIdx+1:]
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("no positions found")
	}
	return cells, nil
}

func parseOnePair(inner string) (lib.Coord, error) {
	fields := strings.Split(inner, ",")
	if len(fields) != 2 {
		return lib.Coord{}, fmt.Errorf("malformed position %q", inner)
	}
	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return lib.Coord{}, fmt.Errorf("malformed row in position %q: %w", inner, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return lib.Coord{}, fmt.Errorf("malformed column in position %q: %w", inner, err)
	}
	if row < 1 || row > 9 || col < 1 || col > 9 {
		return lib.Coord{}, fmt.Errorf("position (%d,%d) out of range", row, col)
	}
	return lib.Coord{Row: row - 1, Col: col - 1}, nil
}

// parseTrailingInt reads the number following the last ':' in a
// "(cells) : N" payload, where payload has already had its own
// "killer :" prefix stripped by the caller.
func parseTrailingInt(payload string) (int, error) {
	idx := strings.LastIndex(payload, ")")
	if idx == -1 {
		return 0, fmt.Errorf("no position list found in %q", payload)
	}
	rest := strings.TrimSpace(payload[idx+1:])
	rest = strings.TrimPrefix(rest, ":")
	rest = strings.TrimSpace(rest)
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("malformed target sum %q: %w", rest, err)
	}
	return n, nil
}

func parseDigitList(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	digits := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("malformed digit %q: %w", f, err)
		}
		digits = append(digits, d)
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("no digits found in %q", s)
	}
	return digits, nil
}
