// Package ldbstore implements a selection tally store that keeps data
// on disk in a LevelDB database, rather than in memory.
//
// It is substantially slower than the in-memory freq.Counts but uses a
// constant amount of memory even when the index set is very large.
package ldbstore
