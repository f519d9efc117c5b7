package fixtures

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/fixsolve/fixsolve/formula"
)

// ParityNode is one row of a `parity N; id priority player
// succ,succ,...;` file.
type ParityNode struct {
	ID         int
	Priority   int
	Player     formula.Player
	Successors []int
}

// ParseParityGame reads the PGSolver-style text format into its nodes.
func ParseParityGame(source string) ([]ParityNode, error) {
	lines := nonEmptyLines(source)
	if len(lines) == 0 {
		return nil, errors.New("fixtures: empty parity game source")
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "parity") {
		return nil, errors.New("fixtures: expected 'parity N;' header")
	}

	var nodes []ParityNode
	var result *multierror.Error
	for i, line := range lines[1:] {
		node, err := parseParityRow(line)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "fixtures: parity line %d", i+2))
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes, result.ErrorOrNil()
}

func parseParityRow(line string) (ParityNode, error) {
	line = strings.TrimSpace(line)
	if semi := strings.Index(line, ";"); semi >= 0 {
		line = line[:semi]
	}

	idStr, rest, ok := cutField(line)
	if !ok {
		return ParityNode{}, errors.New("expected 'id priority player [succ,...]'")
	}
	priorityStr, rest, ok := cutField(rest)
	if !ok {
		return ParityNode{}, errors.New("expected priority")
	}
	playerStr, rest, _ := cutField(rest)
	if playerStr == "" {
		return ParityNode{}, errors.New("expected player")
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return ParityNode{}, errors.Wrap(err, "id is not a number")
	}
	priority, err := strconv.Atoi(priorityStr)
	if err != nil {
		return ParityNode{}, errors.Wrap(err, "priority is not a number")
	}

	var player formula.Player
	switch playerStr {
	case "0":
		player = formula.P0
	case "1":
		player = formula.P1
	default:
		return ParityNode{}, errors.Errorf("player must be 0 or 1, got %q", playerStr)
	}

	var successors []int
	for _, s := range strings.Split(strings.TrimSpace(rest), ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return ParityNode{}, errors.Wrapf(err, "successor %q is not a number", s)
		}
		successors = append(successors, n)
	}

	return ParityNode{ID: id, Priority: priority, Player: player, Successors: successors}, nil
}

// cutField splits off the first whitespace-delimited field of s,
// returning the trimmed remainder.
func cutField(s string) (field, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", false
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", true
	}
	return s[:i], strings.TrimLeft(s[i+1:], " \t"), true
}

// ParityGameToFix maps a parity game's nodes one-to-one onto variables of
// an equation system: nodes are sorted by ascending priority so that the
// most significant (highest-priority) node ends up with the highest
// variable index, matching the system's outer-fixpoints-are-higher-index
// convention. Even priority becomes Max, player 0 becomes Or.
func ParityGameToFix(nodes []ParityNode) (formula.EquationSystem, map[int]formula.VarID) {
	sorted := append([]ParityNode(nil), nodes...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	nodeIDToVar := make(map[int]formula.VarID, len(sorted))
	for varID, n := range sorted {
		nodeIDToVar[n.ID] = formula.VarID(varID)
	}

	eqs := make(formula.EquationSystem, len(sorted))
	for varID, n := range sorted {
		fixType := formula.Max
		if n.Priority%2 != 0 {
			fixType = formula.Min
		}

		children := make([]formula.Expr, len(n.Successors))
		for i, succ := range n.Successors {
			children[i] = formula.ExprVar(nodeIDToVar[succ])
		}

		var expr formula.Expr
		if n.Player == formula.P0 {
			expr = formula.ExprOr(children...)
		} else {
			expr = formula.ExprAnd(children...)
		}

		eqs[varID] = formula.FixEq{FixType: fixType, Expr: expr}
	}

	return eqs, nodeIDToVar
}

// ParitySolRow is one row of a `paritysol N; id winner;` file.
type ParitySolRow struct {
	ID     int
	Winner formula.Player
}

// ParseParitySol reads the .sol companion of a parity game file.
func ParseParitySol(source string) ([]ParitySolRow, error) {
	lines := nonEmptyLines(source)
	if len(lines) == 0 {
		return nil, errors.New("fixtures: empty parity sol source")
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "paritysol") {
		return nil, errors.New("fixtures: expected 'paritysol N;' header")
	}

	var rows []ParitySolRow
	var result *multierror.Error
	for i, line := range lines[1:] {
		row, err := parseParitySolRow(line)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "fixtures: parity sol line %d", i+2))
			continue
		}
		rows = append(rows, row)
	}
	return rows, result.ErrorOrNil()
}

func parseParitySolRow(line string) (ParitySolRow, error) {
	line = strings.TrimSpace(line)
	if semi := strings.Index(line, ";"); semi >= 0 {
		line = line[:semi]
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return ParitySolRow{}, errors.New("expected 'id winner'")
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return ParitySolRow{}, errors.Wrap(err, "id is not a number")
	}

	var winner formula.Player
	switch fields[1] {
	case "0":
		winner = formula.P0
	case "1":
		winner = formula.P1
	default:
		return ParitySolRow{}, errors.Errorf("winner must be 0 or 1, got %q", fields[1])
	}

	return ParitySolRow{ID: id, Winner: winner}, nil
}

func nonEmptyLines(source string) []string {
	var lines []string
	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
