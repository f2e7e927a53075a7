// Package search provides fuzzy and attribute search over the entities of
// a graph. Matching is a linear scan over entity names; no index is built
// or maintained.
package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// WRatio scores the similarity of two strings in [0, 100]. It is the
// weighted combination of the plain ratio with token-sort and token-set
// ratios, switching to substring (partial) alignment when the inputs
// differ a lot in length. Comparison is case-insensitive and ignores
// punctuation.
func WRatio(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}

	const unbaseScale = 0.95

	base := ratio(a, b)
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longer, shorter := la, lb
	if lb > la {
		longer, shorter = lb, la
	}
	lenRatio := float64(longer) / float64(shorter)

	if lenRatio < 1.5 {
		tsort := tokenSortRatio(a, b, false) * unbaseScale
		tset := tokenSetRatio(a, b, false) * unbaseScale
		return maxOf(base, tsort, tset)
	}

	// One string is much shorter: align it against substrings of the
	// longer one, discounted harder as the gap grows.
	partialScale := 0.9
	if lenRatio > 8 {
		partialScale = 0.6
	}
	partial := partialRatio(a, b) * partialScale
	ptsort := tokenSortRatio(a, b, true) * unbaseScale * partialScale
	ptset := tokenSetRatio(a, b, true) * unbaseScale * partialScale
	return maxOf(base, partial, ptsort, ptset)
}

// normalize lowercases s and replaces every non-alphanumeric rune with a
// space, collapsing the result to single-spaced trimmed tokens.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ratio is the normalized edit-distance similarity scaled to [0, 100].
func ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longer := la
	if lb > la {
		longer = lb
	}
	if longer == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longer))
}

// partialRatio slides the shorter string across the longer one and
// returns the best window ratio. An exact substring scores 100.
func partialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	shorter, longer := ra, rb
	if len(ra) > len(rb) {
		shorter, longer = rb, ra
	}
	if len(shorter) == 0 {
		return 0
	}
	if len(shorter) == len(longer) {
		return ratio(string(shorter), string(longer))
	}
	s := string(shorter)
	best := 0.0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		r := ratio(s, string(longer[i:i+len(shorter)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

func tokenSortRatio(a, b string, partial bool) float64 {
	sa := strings.Join(sortedTokens(a), " ")
	sb := strings.Join(sortedTokens(b), " ")
	if partial {
		return partialRatio(sa, sb)
	}
	return ratio(sa, sb)
}

// tokenSetRatio compares the shared token core against each side's core
// plus remainder, taking the best of the three pairings. Shared words
// dominate, so reordered or repeated tokens barely cost anything.
func tokenSetRatio(a, b string, partial bool) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)

	var inter, diffA, diffB []string
	for tok := range ta {
		if tb[tok] {
			inter = append(inter, tok)
		} else {
			diffA = append(diffA, tok)
		}
	}
	for tok := range tb {
		if !ta[tok] {
			diffB = append(diffB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(diffA)
	sort.Strings(diffB)

	core := strings.Join(inter, " ")
	combinedA := strings.TrimSpace(core + " " + strings.Join(diffA, " "))
	combinedB := strings.TrimSpace(core + " " + strings.Join(diffB, " "))

	cmp := ratio
	if partial {
		cmp = partialRatio
	}
	return maxOf(cmp(core, combinedA), cmp(core, combinedB), cmp(combinedA, combinedB))
}

func sortedTokens(s string) []string {
	toks := strings.Fields(s)
	sort.Strings(toks)
	return toks
}

func tokenSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}

func maxOf(vals ...float64) float64 {
	best := vals[0]
	for _, v := range vals[1:] {
		if v > best {
			best = v
		}
	}
	return best
}
