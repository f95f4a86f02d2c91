package trie

// StringTrie wraps a rune Trie with string-typed methods, sparing callers
// the []rune conversions. Keys are compared rune-wise, so output order is
// by code point, not by collation.
type StringTrie struct {
	inner *Trie[rune]
}

// NewStrings returns an empty StringTrie with any seed words inserted.
func NewStrings(seeds ...string) *StringTrie {
	t := &StringTrie{inner: New[rune]()}
	for _, w := range seeds {
		t.Insert(w)
	}

	return t
}

// Runes exposes the underlying rune Trie for callers that need the full
// sequence API.
func (t *StringTrie) Runes() *Trie[rune] { return t.inner }

// Len reports the number of stored words.
func (t *StringTrie) Len() int { return t.inner.Len() }

// Empty reports whether the trie holds no words.
func (t *StringTrie) Empty() bool { return t.inner.Empty() }

// Clear removes every word.
func (t *StringTrie) Clear() { t.inner.Clear() }

// Insert adds word; inserting a present word is a no-op.
func (t *StringTrie) Insert(word string) { t.inner.Insert([]rune(word)) }

// Remove deletes word, pruning branches no other word needs; removing an
// absent word is a no-op.
func (t *StringTrie) Remove(word string) { t.inner.Remove([]rune(word)) }

// Contains reports whether word was inserted as a whole word.
func (t *StringTrie) Contains(word string) bool { return t.inner.Contains([]rune(word)) }

// StartsWith reports whether any stored word begins with prefix.
func (t *StringTrie) StartsWith(prefix string) bool { return t.inner.StartsWith([]rune(prefix)) }

// CountPrefix reports how many stored words begin with prefix.
func (t *StringTrie) CountPrefix(prefix string) int { return t.inner.CountPrefix([]rune(prefix)) }

// WithPrefix returns every stored word beginning with prefix, sorted by
// code point.
func (t *StringTrie) WithPrefix(prefix string) []string {
	return runesToStrings(t.inner.WithPrefix([]rune(prefix)))
}

// All returns every stored word, sorted by code point.
func (t *StringTrie) All() []string {
	return runesToStrings(t.inner.All())
}

// LongestCommonPrefix returns the longest prefix shared by every stored
// word; empty when the trie is empty.
func (t *StringTrie) LongestCommonPrefix() string {
	return string(t.inner.LongestCommonPrefix())
}

func runesToStrings(seqs [][]rune) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = string(s)
	}

	return out
}
