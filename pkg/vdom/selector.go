package vdom

import "strings"

// ParseSelector splits a selector such as "div#main.card.wide" into its
// tag ("div"), id ("main"), and space-separated classes ("card wide").
//
// The id runs from the first '#' to the first '.' after it; classes run
// from that '.' to the end of the selector.
func ParseSelector(sel string) (tag, id, class string) {
	hashIdx := strings.IndexByte(sel, '#')
	dotIdx := strings.IndexByte(sel[max(hashIdx, 0):], '.')
	if dotIdx >= 0 {
		dotIdx += max(hashIdx, 0)
	}

	hash, dot := len(sel), len(sel)
	if hashIdx > 0 {
		hash = hashIdx
	}
	if dotIdx > 0 {
		dot = dotIdx
	}

	tag = sel
	if hashIdx != -1 || dotIdx != -1 {
		tag = sel[:min(hash, dot)]
	}
	if hash < dot {
		id = sel[hash+1 : dot]
	}
	if dotIdx > 0 {
		class = strings.ReplaceAll(sel[dot+1:], ".", " ")
	}
	return tag, id, class
}

// isSVGSelector reports whether the selector's tag segment is exactly "svg".
func isSVGSelector(sel string) bool {
	return strings.HasPrefix(sel, "svg") &&
		(len(sel) == 3 || sel[3] == '.' || sel[3] == '#')
}
