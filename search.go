package anagram

import (
	"sort"
	"unicode"
)

// frame is one pending step of the anagram search: the letters matched so far,
// the query letters still to place and the trie node reached by path.
type frame struct {
	path []rune
	rest []rune
	node *node
}

// FindAnagrams returns every dictionary word that uses exactly the letters of query,
// ignoring case. Matches keep the case they have in the dictionary. The result is
// sorted and holds no duplicates; it is empty, never nil, when nothing matches or
// query is empty.
//
// The search walks the trie depth first with an explicit stack, consuming one query
// letter per level in either case and dropping a branch as soon as the trie has no
// edge for it, so query length is not bounded by the goroutine stack.
func (t *Trie) FindAnagrams(query string) []string {
	if len(query) == 0 {
		return []string{}
	}
	collection := make(map[string]struct{})
	stack := []frame{{rest: []rune(query), node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// repeated letters lead to the same subtree, try each once per level
		tried := make([][2]rune, 0, len(f.rest))
		for i := len(f.rest) - 1; i >= 0; i-- {
			variants := caseVariants(f.rest[i])
			if seen(tried, variants) {
				continue
			}
			tried = append(tried, variants)

			var rest []rune
			for j, character := range variants {
				if j == 1 && character == variants[0] {
					continue
				}
				child, ok := f.node.children[character]
				if !ok {
					continue
				}
				if len(f.rest) == 1 {
					if child.terminal {
						collection[string(f.path)+string(character)] = struct{}{}
					}
					continue
				}
				if rest == nil {
					rest = without(f.rest, i)
				}
				stack = append(stack, frame{
					path: extend(f.path, character),
					rest: rest,
					node: child,
				})
			}
		}
	}

	hits := make([]string, 0, len(collection))
	for word := range collection {
		hits = append(hits, word)
	}
	sort.Strings(hits)
	return hits
}

// caseVariants returns the lower and upper case forms of r. Runes without case
// come back twice unchanged.
func caseVariants(r rune) [2]rune {
	return [2]rune{unicode.ToLower(r), unicode.ToUpper(r)}
}

func seen(tried [][2]rune, variants [2]rune) bool {
	for _, v := range tried {
		if v == variants {
			return true
		}
	}
	return false
}

// without returns a copy of letters with position i removed, order preserved.
func without(letters []rune, i int) []rune {
	out := make([]rune, 0, len(letters)-1)
	out = append(out, letters[:i]...)
	return append(out, letters[i+1:]...)
}

// extend returns a copy of path with r appended. Frames never share a backing array.
func extend(path []rune, r rune) []rune {
	out := make([]rune, len(path)+1)
	copy(out, path)
	out[len(path)] = r
	return out
}
