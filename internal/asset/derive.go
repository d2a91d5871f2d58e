package asset

import (
	"strings"
	"unicode"
)

// tagRule appends tags when any of its substrings occurs in the lowercased
// filename stem. Rules are evaluated in table order; a stemTag rule appends
// the stem itself.
type tagRule struct {
	substrings []string
	tags       []string
	stemTag    bool
}

// tagRules is the fixed ordered inference table. It is data, not branching
// logic, so individual rules stay testable and new ones slot in without
// touching the evaluator.
var tagRules = []tagRule{
	{substrings: []string{"path"}, tags: []string{"path", "road"}},
	{substrings: []string{"wall"}, tags: []string{"wall", "barrier"}},
	{substrings: []string{"block"}, tags: []string{"block", "cube"}},
	{substrings: []string{"pillar", "post"}, tags: []string{"pillar", "column"}},
	{substrings: []string{"floor"}, tags: []string{"floor", "platform"}},
	{substrings: []string{"hill", "mound"}, tags: []string{"hill", "terrain"}},
	{substrings: []string{"steps", "stairs"}, tags: []string{"steps", "terrain"}},
	{substrings: []string{"spike"}, tags: []string{"spike"}},
	{substrings: []string{"sphere", "ball"}, tags: []string{"sphere", "round"}},
	{substrings: []string{"bush"}, tags: []string{"bush", "nature"}},
	{substrings: []string{"hedge"}, tags: []string{"hedge", "decoration"}},
	{substrings: []string{"pile"}, tags: []string{"pile"}},
	{substrings: []string{"dune"}, tags: []string{"dune", "desert"}},
	{substrings: []string{"castle"}, tags: []string{"castle"}},
	{substrings: []string{"man"}, stemTag: true},
	{substrings: []string{"fall"}, tags: []string{"waterfall", "cascade"}},
	{substrings: []string{"stream"}, tags: []string{"stream", "river"}},
	{substrings: []string{"pool", "pond"}, tags: []string{"pool", "pond"}},
	{substrings: []string{"small", "tiny"}, tags: []string{"small"}},
	{substrings: []string{"large", "big"}, tags: []string{"large"}},
}

// ID derives the stable asset id from a filename stem: lowercase, with every
// rune outside [a-z0-9_] dropped. Dropped, not replaced: "Mossy Wall-01"
// becomes "mossywall01".
func ID(stem string) string {
	lower := strings.ToLower(stem)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DisplayName derives the human-readable name from a filename stem: tokens
// split on underscores and hyphens, each with its first rune uppercased,
// joined by single spaces.
func DisplayName(stem string) string {
	tokens := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '-'
	})
	for i, tok := range tokens {
		runes := []rune(tok)
		runes[0] = unicode.ToUpper(runes[0])
		tokens[i] = string(runes)
	}
	return strings.Join(tokens, " ")
}

// Tags infers the tag set for an asset: the category name first, then every
// rule in the inference table that matches the lowercased stem, deduplicated
// preserving first occurrence.
func Tags(category Category, stem string) []string {
	lower := strings.ToLower(stem)

	tags := []string{string(category)}
	seen := map[string]bool{string(category): true}
	appendTag := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, rule := range tagRules {
		matched := false
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if rule.stemTag {
			appendTag(lower)
			continue
		}
		for _, tag := range rule.tags {
			appendTag(tag)
		}
	}
	return tags
}
