// Package trie implements a prefix index over cleaned place names.
package trie

import (
	"strings"
	"unicode"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one named item stored in the trie.
type Entry struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

type _Node struct {
	children *orderedmap.OrderedMap[rune, *_Node]
	entries  []Entry
}

func _NewNode() *_Node {
	return &_Node{
		children: orderedmap.New[rune, *_Node](),
	}
}

// Trie maps cleaned strings to the entries inserted under them.
// Children are visited in the order they were first created.
type Trie struct {
	root  *_Node
	count int
}

func New() *Trie {
	return &Trie{
		root: _NewNode(),
	}
}

// Clean keeps ASCII letters and spaces and lower-cases the result.
func Clean(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || (r < unicode.MaxASCII && unicode.IsLetter(r)) {
			return r
		}
		return -1
	}, s)
	return strings.ToLower(cleaned)
}

//*******************************************
// trie methods
//*******************************************

// Insert stores (name, id) under the cleaned name.
// A name that cleans to the empty string is stored on the root.
func (self *Trie) Insert(name string, id int64) {
	curr := self.root
	for _, c := range Clean(name) {
		next, ok := curr.children.Get(c)
		if !ok {
			next = _NewNode()
			curr.children.Set(c, next)
		}
		curr = next
	}
	curr.entries = append(curr.entries, Entry{Name: name, ID: id})
	self.count += 1
}

// KeysWithPrefix returns the original names of all entries whose cleaned
// name starts with the cleaned prefix.
func (self *Trie) KeysWithPrefix(prefix string) []string {
	names := make([]string, 0)
	node := self._Find(Clean(prefix))
	if node == nil {
		return names
	}
	_Collect(node, func(e Entry) {
		names = append(names, e.Name)
	})
	return names
}

// Lookup returns the entries stored under exactly the cleaned name.
func (self *Trie) Lookup(name string) []Entry {
	node := self._Find(Clean(name))
	if node == nil {
		return []Entry{}
	}
	entries := make([]Entry, len(node.entries))
	copy(entries, node.entries)
	return entries
}

// Len returns the number of inserted entries.
func (self *Trie) Len() int {
	return self.count
}

func (self *Trie) _Find(key string) *_Node {
	curr := self.root
	for _, c := range key {
		next, ok := curr.children.Get(c)
		if !ok {
			return nil
		}
		curr = next
	}
	return curr
}

// depth first, own entries before children
func _Collect(node *_Node, visit func(Entry)) {
	for _, e := range node.entries {
		visit(e)
	}
	for pair := node.children.Oldest(); pair != nil; pair = pair.Next() {
		_Collect(pair.Value, visit)
	}
}
