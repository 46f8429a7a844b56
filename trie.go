package anagram

// Trie is an index of dictionary words keyed rune by rune in their original case.
// 'a' and 'A' are distinct edges. A Trie is never modified after Build returns, so
// it can be shared by any number of goroutines calling FindAnagrams.
type Trie struct {
	root  *node
	words int
	nodes int
}

// node is a node in a Trie which contains a map of runes to more node pointers.
// terminal indicates that some dictionary word ends exactly at this node; a
// terminal node may still have children.
type node struct {
	children map[rune]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Build creates a trie holding every word in words. Empty strings are skipped,
// so the root never marks a word.
func Build(words []string) *Trie {
	t := New()
	for _, word := range words {
		t.insert(word)
	}
	return t
}

func (t *Trie) insert(word string) {
	if len(word) == 0 {
		return
	}
	currentNode := t.root
	for _, character := range word {
		child, ok := currentNode.children[character]
		if !ok {
			child = newNode()
			currentNode.children[character] = child
			t.nodes++
		}
		currentNode = child
	}
	// never reset a terminal flag set by an earlier word
	if !currentNode.terminal {
		currentNode.terminal = true
		t.words++
	}
}

// Contains reports whether word was in the dictionary, matching case exactly.
func (t *Trie) Contains(word string) bool {
	if len(word) == 0 {
		return false
	}
	current := t.root
	for _, r := range word {
		next, ok := current.children[r]
		if !ok {
			return false
		}
		current = next
	}
	return current.terminal
}

// Len returns the number of distinct words in the trie.
func (t *Trie) Len() int {
	return t.words
}

// Nodes returns the number of nodes below the root.
func (t *Trie) Nodes() int {
	return t.nodes
}
