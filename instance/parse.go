package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Declaration keys, matched as case-sensitive line prefixes.
const (
	KeyName   = "instance_name"
	KeyDepots = "d ="
	KeyStores = "r ="
	KeySupply = "SCj ="
	KeyDemand = "Dk ="
	KeyCost   = "Cjk ="
)

var requiredKeys = []string{KeyName, KeyDepots, KeyStores, KeySupply, KeyDemand, KeyCost}

// maxLineSize bounds a single physical line; whole cost tables are often
// written on one line.
const maxLineSize = 64 << 20

// Parse builds an Instance from the lines of one instance file. It returns a
// *FormatError when a required declaration is missing, a value does not
// parse, or the declared dimensions disagree with the data.
func Parse(lines []string) (*Instance, error) {
	p := newParser()
	for i, line := range lines {
		if err := p.feed(i+1, line); err != nil {
			return nil, err
		}
	}
	return p.finish()
}

// Read parses an instance from r, one line at a time.
func Read(r io.Reader) (*Instance, error) {
	p := newParser()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		if err := p.feed(n, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "instance: reading line %d", n+1)
	}
	return p.finish()
}

type parser struct {
	inst Instance
	seen map[string]bool

	// accumulating is set between a "Cjk =" line and the first line
	// ending in "];".
	accumulating bool
	costLine     int
	costs        []int
}

func newParser() *parser {
	return &parser{seen: make(map[string]bool, len(requiredKeys))}
}

func (p *parser) feed(n int, raw string) error {
	if !utf8.ValidString(raw) {
		return formatErrorf(n, "text", "invalid UTF-8")
	}
	line := strings.TrimSpace(raw)

	if p.accumulating {
		return p.collectCosts(n, line)
	}

	var (
		key string
		err error
	)
	switch {
	case strings.HasPrefix(line, KeyName):
		key = KeyName
		var v string
		if v, err = value(n, key, line); err == nil {
			p.inst.Name = strings.Trim(v, `";`)
		}
	case strings.HasPrefix(line, KeyDepots):
		key = KeyDepots
		p.inst.Depots, err = integer(n, key, line)
	case strings.HasPrefix(line, KeyStores):
		key = KeyStores
		p.inst.Stores, err = integer(n, key, line)
	case strings.HasPrefix(line, KeySupply):
		key = KeySupply
		p.inst.Supply, err = list(n, key, line)
	case strings.HasPrefix(line, KeyDemand):
		key = KeyDemand
		p.inst.Demand, err = list(n, key, line)
	case strings.HasPrefix(line, KeyCost):
		p.seen[KeyCost] = true
		p.accumulating = true
		p.costLine = n
		p.costs = p.costs[:0]
		return p.collectCosts(n, line)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	p.seen[key] = true
	return nil
}

// collectCosts keeps only tokens made entirely of digits. A leading minus
// sign makes a token non-numeric here, so negative costs are dropped rather
// than rejected.
func (p *parser) collectCosts(n int, line string) error {
	cleaned := strings.NewReplacer("[", "", "]", "", ";", "").Replace(line)
	for _, tok := range strings.Fields(cleaned) {
		if !isDigits(tok) {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return formatErrorf(n, KeyCost, "invalid cost %q", tok)
		}
		p.costs = append(p.costs, v)
	}
	if strings.HasSuffix(line, "];") {
		p.accumulating = false
	}
	return nil
}

func (p *parser) finish() (*Instance, error) {
	if p.accumulating {
		return nil, formatErrorf(p.costLine, KeyCost, `cost table is not terminated by "];"`)
	}
	for _, k := range requiredKeys {
		if !p.seen[k] {
			return nil, formatErrorf(0, k, "missing declaration")
		}
	}

	in := p.inst
	if in.Depots <= 0 {
		return nil, formatErrorf(0, KeyDepots, "depot count must be positive, got %d", in.Depots)
	}
	if in.Stores <= 0 {
		return nil, formatErrorf(0, KeyStores, "store count must be positive, got %d", in.Stores)
	}
	if len(in.Supply) != in.Depots {
		return nil, formatErrorf(0, KeySupply, "got %d capacities, want d = %d", len(in.Supply), in.Depots)
	}
	if len(in.Demand) != in.Stores {
		return nil, formatErrorf(0, KeyDemand, "got %d demands, want r = %d", len(in.Demand), in.Stores)
	}

	cost := regroup(p.costs, in.Stores)
	if err := checkShape(cost, len(p.costs), in.Depots, in.Stores); err != nil {
		return nil, err
	}
	in.Cost = cost
	return &in, nil
}

// regroup splits flat into rows of width stride; the last row may be short.
func regroup(flat []int, stride int) [][]int {
	rows := make([][]int, 0, (len(flat)+stride-1)/stride)
	for i := 0; i < len(flat); i += stride {
		end := i + stride
		if end > len(flat) {
			end = len(flat)
		}
		row := make([]int, end-i)
		copy(row, flat[i:end])
		rows = append(rows, row)
	}
	return rows
}

func checkShape(cost [][]int, values, d, r int) error {
	width := 0
	if len(cost) > 0 {
		width = len(cost[0])
	}
	bad := len(cost) != d
	for _, row := range cost {
		if len(row) != r {
			width = len(row)
			bad = true
			break
		}
	}
	if bad {
		return formatErrorf(0, KeyCost, "cost table is %dx%d (%d values), want %dx%d",
			len(cost), width, values, d, r)
	}
	return nil
}

func value(n int, key, line string) (string, error) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", formatErrorf(n, key, "missing '='")
	}
	return strings.TrimSpace(line[i+1:]), nil
}

func integer(n int, key, line string) (int, error) {
	v, err := value(n, key, line)
	if err != nil {
		return 0, err
	}
	s := strings.TrimSpace(strings.Trim(v, ";"))
	x, err := strconv.Atoi(s)
	if err != nil {
		return 0, formatErrorf(n, key, "invalid integer %q", s)
	}
	return x, nil
}

func list(n int, key, line string) ([]int, error) {
	v, err := value(n, key, line)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(strings.Trim(v, "[];"))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.Atoi(f)
		if err != nil {
			return nil, formatErrorf(n, key, "invalid integer %q", f)
		}
		out = append(out, x)
	}
	return out, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
