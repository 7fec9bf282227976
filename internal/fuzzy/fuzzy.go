// Package fuzzy ranks catalog names against a search query using fzf's
// scoring algorithm.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes match fzf's own defaults for interactive use.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

var initScheme sync.Once

// Result is a single ranked candidate.
type Result struct {
	Name  string
	Score int
	// Index is the candidate's position in the input slice.
	Index int
}

// Matcher scores candidates against a query. The slab is scratch memory
// reused between calls, so a Matcher must not be used from more than one
// goroutine at a time.
type Matcher struct {
	slab *util.Slab
}

func New() *Matcher {
	initScheme.Do(func() { algo.Init("default") })
	return &Matcher{slab: util.MakeSlab(slab16Size, slab32Size)}
}

// Match returns the names that match query, best first.
func (m *Matcher) Match(query string, names []string) []string {
	ranked := m.Rank(query, names)
	if len(ranked) == 0 {
		return nil
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Name
	}
	return out
}

// Rank scores every name against query and returns the matching ones
// ordered by descending score, then by ascending name length. Remaining
// ties keep their input order. A blank query matches nothing.
func (m *Matcher) Rank(query string, names []string) []Result {
	pattern := compile(query)
	if len(pattern) == 0 {
		return nil
	}

	var results []Result
	for i, name := range names {
		chars := util.ToChars([]byte(name))
		res, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, m.slab)
		if res.Start < 0 {
			continue
		}
		results = append(results, Result{Name: name, Score: res.Score, Index: i})
	}

	// Same as fzf's --tiebreak=length: the score itself has no length term.
	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(utf8.RuneCountInString(a.Name), utf8.RuneCountInString(b.Name))
	})
	return results
}

// compile lowercases and normalizes the query the way fzf expects a
// case-insensitive, normalized pattern to look.
func compile(query string) []rune {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	return algo.NormalizeRunes([]rune(strings.ToLower(query)))
}
