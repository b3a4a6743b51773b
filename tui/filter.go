package tui

import (
	"strconv"
	"strings"

	"github.com/x11tap/x11tap/broker"
)

type filterKind int

const (
	filterText      filterKind = iota // plain text substring match against the formatted line
	filterRecordKey                   // kind:, name:, conn:, dir:
	filterError                       // "error" keyword matches Kind == ERROR
)

type filterCondition struct {
	kind filterKind

	text string // filterText

	key   string // filterRecordKey: "kind", "name", "conn", "dir"
	value string
}

func parseFilter(input string) []filterCondition {
	tokens := strings.Fields(input)
	conds := make([]filterCondition, 0, len(tokens))

	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if lower == "error" {
			conds = append(conds, filterCondition{kind: filterError})
			continue
		}
		if c, ok := parseRecordKey(lower); ok {
			conds = append(conds, c)
			continue
		}
		conds = append(conds, filterCondition{kind: filterText, text: lower})
	}
	return conds
}

func parseRecordKey(tok string) (filterCondition, bool) {
	for _, key := range []string{"kind:", "name:", "conn:", "dir:"} {
		if strings.HasPrefix(tok, key) {
			value := tok[len(key):]
			if value == "" {
				return filterCondition{}, false
			}
			return filterCondition{kind: filterRecordKey, key: key[:len(key)-1], value: value}, true
		}
	}
	return filterCondition{}, false
}

func (c filterCondition) matches(rec broker.Record) bool {
	switch c.kind {
	case filterText:
		return strings.Contains(strings.ToLower(rec.Line), c.text)
	case filterError:
		return rec.Kind == "ERROR"
	case filterRecordKey:
		switch c.key {
		case "kind":
			return strings.Contains(strings.ToLower(rec.Kind), c.value)
		case "name":
			return strings.Contains(strings.ToLower(rec.Name), c.value)
		case "conn":
			return strings.Contains(strconv.FormatUint(uint64(rec.ConnID), 10), c.value)
		case "dir":
			return strings.EqualFold(rec.Direction, c.value)
		}
	}
	return false
}

func matchAllConditions(rec broker.Record, conds []filterCondition) bool {
	for _, c := range conds {
		if !c.matches(rec) {
			return false
		}
	}
	return true
}

func describeFilter(input string) string {
	conds := parseFilter(input)
	if len(conds) == 0 {
		return input
	}
	var parts []string
	for _, c := range conds {
		switch c.kind {
		case filterText:
			parts = append(parts, "text:"+c.text)
		case filterError:
			parts = append(parts, "error")
		case filterRecordKey:
			parts = append(parts, c.key+":"+c.value)
		}
	}
	return strings.Join(parts, " ")
}
