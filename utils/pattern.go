package utils

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidPattern is returned when a pattern cannot be parsed
var ErrInvalidPattern = errors.New("invalid pattern")

const commentPrefix = "!"

// builtinPatterns are padded with dead cells so they evolve inside their own domain
var builtinPatterns = map[string]string{
	"block": `
....
.OO.
.OO.
....`,
	"blinker": `
.....
..O..
..O..
..O..
.....`,
	"toad": `
......
......
..OOO.
.OOO..
......
......`,
	"beacon": `
......
.OO...
.OO...
...OO.
...OO.
......`,
	"glider": `
.O..........
..O.........
OOO.........
............
............
............
............
............
............
............
............
............`,
}

/*
ParsePattern reads a plain text pattern, one row per line.

'O', '#', '*' and 'A' are alive; '.', '-', 'D' and ' ' are dead. Lines starting
with '!' are comments and leading or trailing blank lines are ignored. Short
rows are padded with dead cells up to the widest row.
*/
func ParsePattern(r io.Reader) ([][]model.Status, error) {
	var (
		rows    [][]model.Status
		lastRow int // rows up to the last line with a non-space rune
		lineNum int
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		blank := strings.TrimSpace(line) == ""
		if len(rows) == 0 && blank {
			continue
		}

		row := make([]model.Status, 0, len(line))
		col := 0
		for _, ch := range line {
			col++
			switch ch {
			case 'O', '#', '*', 'A':
				row = append(row, model.Alive)
			case '.', '-', 'D', ' ':
				row = append(row, model.Dead)
			default:
				return nil, errors.Wrapf(ErrInvalidPattern, "[ParsePattern] unexpected %q at line %d, column %d", ch, lineNum, col)
			}
		}
		rows = append(rows, row)
		if !blank {
			lastRow = len(rows)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] failed to read pattern")
	}

	rows = rows[:lastRow]
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if len(rows) == 0 || width == 0 {
		return nil, errors.Wrap(ErrInvalidPattern, "[ParsePattern] pattern has no cells")
	}

	for i, row := range rows {
		for len(row) < width {
			row = append(row, model.Dead)
		}
		rows[i] = row
	}
	return rows, nil
}

// LoadPattern reads a pattern from a file
func LoadPattern(filename string) ([][]model.Status, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to open file: %+v", filename)
	}
	defer f.Close()

	rows, err := ParsePattern(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to parse file: %+v", filename)
	}
	return rows, nil
}

// BuiltinPattern returns one of the named patterns shipped with the simulator
func BuiltinPattern(name string) ([][]model.Status, error) {
	text, ok := builtinPatterns[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidPattern, "[BuiltinPattern] unknown pattern %q, expected one of %v", name, BuiltinPatternNames())
	}
	return ParsePattern(strings.NewReader(text))
}

// BuiltinPatternNames returns the names accepted by BuiltinPattern in sorted order
func BuiltinPatternNames() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
