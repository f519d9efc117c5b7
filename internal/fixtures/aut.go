// Package fixtures supplies the small, hand-rolled file readers the
// end-to-end tests of the solver packages need (an AUT-format LTS
// reader, a parity-game text-format reader and its .sol companion, and
// two hard-coded mu-calculus-shaped equation systems), without pulling
// in a real parser for any of them. None of this is part of the core's
// public contract.
package fixtures

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/fixsolve/fixsolve/randgame"
)

// ParseAut reads the `des (first,trans,states); (src,"label",dst); ...`
// format into a randgame.Lts, the same transition-system shape the
// bisimilarity demo generates.
func ParseAut(source string) (lts *randgame.Lts, first int, err error) {
	lines := strings.Split(source, "\n")
	var body []string
	var header string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if header == "" {
			header = line
			continue
		}
		body = append(body, line)
	}
	if header == "" {
		return nil, 0, errors.New("fixtures: empty AUT source")
	}

	first, transCount, stateCount, err := parseAutHeader(header)
	if err != nil {
		return nil, 0, errors.Wrap(err, "fixtures: AUT header")
	}
	if first >= stateCount {
		return nil, 0, errors.Errorf("fixtures: first state %d doesn't exist", first)
	}

	lts = &randgame.Lts{Transitions: make([][]randgame.Transition, stateCount)}
	labels := map[string]int{}

	var result *multierror.Error
	seen := 0
	for i, line := range body {
		src, label, dst, err := parseAutTransition(line)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "fixtures: AUT line %d", i+2))
			continue
		}
		if src >= stateCount || dst >= stateCount {
			result = multierror.Append(result, errors.Errorf("fixtures: AUT line %d: state out of range", i+2))
			continue
		}
		labelID, ok := labels[label]
		if !ok {
			labelID = len(labels)
			labels[label] = labelID
		}
		lts.Transitions[src] = append(lts.Transitions[src], randgame.Transition{Label: labelID, Target: dst})
		seen++
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, 0, err
	}
	if seen != transCount {
		return nil, 0, errors.Errorf("fixtures: AUT declared %d transitions, found %d", transCount, seen)
	}

	return lts, first, nil
}

func parseAutHeader(header string) (first, trans, states int, err error) {
	header = strings.TrimSpace(header)
	header = strings.TrimPrefix(header, "des")
	header = strings.TrimSpace(header)
	if !strings.HasPrefix(header, "(") {
		return 0, 0, 0, errors.New("expected '('")
	}
	header = strings.TrimSuffix(strings.TrimPrefix(header, "("), ")")
	header = strings.TrimSuffix(header, ";")
	parts := strings.Split(header, ",")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Errorf("expected 3 comma-separated fields, got %d", len(parts))
	}
	first, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "first state")
	}
	trans, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "transition count")
	}
	states, err = strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "state count")
	}
	return first, trans, states, nil
}

func parseAutTransition(line string) (src int, label string, dst int, err error) {
	line = strings.TrimSpace(line)
	line = strings.TrimSuffix(line, ";")
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return 0, "", 0, errors.New("expected '(...)'")
	}
	line = strings.TrimSuffix(strings.TrimPrefix(line, "("), ")")

	srcStr, rest, ok := strings.Cut(line, ",")
	if !ok {
		return 0, "", 0, errors.New("expected start state")
	}
	rest = strings.TrimSpace(rest)

	var labelStr string
	if strings.HasPrefix(rest, `"`) {
		end := strings.Index(rest[1:], `"`)
		if end < 0 {
			return 0, "", 0, errors.New("unterminated label")
		}
		labelStr = rest[1 : 1+end]
		rest = rest[1+end+1:]
		rest = strings.TrimPrefix(strings.TrimSpace(rest), ",")
	} else {
		var ok2 bool
		labelStr, rest, ok2 = strings.Cut(rest, ",")
		if !ok2 {
			return 0, "", 0, errors.New("expected label")
		}
	}

	src, err = strconv.Atoi(strings.TrimSpace(srcStr))
	if err != nil {
		return 0, "", 0, errors.Wrap(err, "start state is not a number")
	}
	dst, err = strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, "", 0, errors.Wrap(err, "end state is not a number")
	}
	return src, strings.TrimSpace(labelStr), dst, nil
}
