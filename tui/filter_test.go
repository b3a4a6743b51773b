package tui

import (
	"testing"

	"github.com/x11tap/x11tap/broker"
)

func TestParseFilterText(t *testing.T) {
	t.Parallel()

	conds := parseFilter("atom")
	if len(conds) != 1 || conds[0].kind != filterText || conds[0].text != "atom" {
		t.Fatalf("parseFilter(%q) = %+v, want one filterText condition", "atom", conds)
	}
}

func TestParseFilterRecordKeys(t *testing.T) {
	t.Parallel()

	conds := parseFilter("kind:request name:InternAtom conn:3 dir:c->s")
	if len(conds) != 4 {
		t.Fatalf("len(conds) = %d, want 4", len(conds))
	}
	for i, want := range []struct{ key, value string }{
		{"kind", "request"}, {"name", "internatom"}, {"conn", "3"}, {"dir", "c->s"},
	} {
		c := conds[i]
		if c.kind != filterRecordKey || c.key != want.key || c.value != want.value {
			t.Fatalf("conds[%d] = %+v, want key=%s value=%s", i, c, want.key, want.value)
		}
	}
}

func TestParseFilterErrorKeyword(t *testing.T) {
	t.Parallel()

	conds := parseFilter("error")
	if len(conds) != 1 || conds[0].kind != filterError {
		t.Fatalf("parseFilter(%q) = %+v, want one filterError condition", "error", conds)
	}
}

// A bare "kind:" with no value after the colon isn't a key filter, it
// falls back to a plain text match.
func TestParseRecordKeyEmptyValue(t *testing.T) {
	t.Parallel()

	c, ok := parseRecordKey("kind:")
	if ok {
		t.Fatalf("parseRecordKey(%q) = %+v, true; want false", "kind:", c)
	}
}

func TestFilterConditionMatches(t *testing.T) {
	t.Parallel()

	rec := broker.Record{
		ConnID: 3, Direction: "C->S", Kind: "REQUEST", Name: "InternAtom",
		Line: "C003:0024B:C->S:S00001: REQUEST InternAtom(16): {name=WM_NAME}",
	}

	cases := []struct {
		name string
		cond filterCondition
		want bool
	}{
		{"text match", filterCondition{kind: filterText, text: "wm_name"}, true},
		{"text mismatch", filterCondition{kind: filterText, text: "nosuchtoken"}, false},
		{"error on non-error", filterCondition{kind: filterError}, false},
		{"kind match", filterCondition{kind: filterRecordKey, key: "kind", value: "req"}, true},
		{"name match", filterCondition{kind: filterRecordKey, key: "name", value: "internatom"}, true},
		{"conn match", filterCondition{kind: filterRecordKey, key: "conn", value: "3"}, true},
		{"conn mismatch", filterCondition{kind: filterRecordKey, key: "conn", value: "9"}, false},
		{"dir match", filterCondition{kind: filterRecordKey, key: "dir", value: "c->s"}, true},
		{"dir mismatch", filterCondition{kind: filterRecordKey, key: "dir", value: "s->c"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.cond.matches(rec); got != tc.want {
				t.Errorf("matches() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatchAllConditionsRequiresEvery(t *testing.T) {
	t.Parallel()

	rec := broker.Record{Kind: "ERROR", Name: "Atom", Line: "boom"}
	conds := []filterCondition{
		{kind: filterError},
		{kind: filterRecordKey, key: "name", value: "atom"},
	}
	if !matchAllConditions(rec, conds) {
		t.Fatalf("matchAllConditions() = false, want true")
	}

	conds = append(conds, filterCondition{kind: filterRecordKey, key: "name", value: "window"})
	if matchAllConditions(rec, conds) {
		t.Fatalf("matchAllConditions() = true with an unmatched condition appended, want false")
	}
}

func TestDescribeFilter(t *testing.T) {
	t.Parallel()

	got := describeFilter("error kind:request atom")
	want := "error kind:request text:atom"
	if got != want {
		t.Fatalf("describeFilter() = %q, want %q", got, want)
	}
}

func TestDescribeFilterEmptyInput(t *testing.T) {
	t.Parallel()

	if got := describeFilter(""); got != "" {
		t.Fatalf("describeFilter(%q) = %q, want empty", "", got)
	}
}
