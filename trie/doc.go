// Package trie provides a generic prefix tree over sequences of ordered
// symbols.
//
// A Trie[S] stores sequences []S; each node fans out by one symbol, so
// membership and prefix queries cost O(m) in the sequence length m,
// independent of how many sequences are stored. Children are iterated in
// symbol order, so All and WithPrefix return sequences in lexicographic
// order. For string keys, StringTrie wraps a Trie[rune] with string-typed
// methods.
//
// Operations:
//
//	Insert / Remove / Contains        O(m)
//	StartsWith / CountPrefix          O(m) (+ subtree size for the count)
//	WithPrefix / All                  O(output)
//	LongestCommonPrefix               O(answer)
//	Len / Empty                       O(1)
//	NodeCount / Height                O(nodes)
//
// Remove prunes nodes that no longer lead to any stored sequence, so
// NodeCount shrinks back after deletions. The empty sequence is a valid
// key. A Trie is not safe for concurrent use.
package trie
