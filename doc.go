/*
Package anagram finds the dictionary words that are anagrams of a query word.

A dictionary is indexed once with Build into a Trie whose edges keep each word's
original case. FindAnagrams then treats the query as a case-insensitive bag of
letters and walks the trie, trying both cases of every remaining letter and
abandoning a branch as soon as no edge matches. Results keep dictionary case and
are returned sorted and deduplicated.

A built Trie is read-only and may be searched from many goroutines at once.
*/
package anagram
