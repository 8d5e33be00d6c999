package ldbstore

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// LDBTally implements freq.Store by keeping selection tallies in a
// LevelDB database on disk. Keys and values are uvarint-encoded.
//
// It is not safe for concurrent use.
type LDBTally struct {
	path  string
	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// NewLDBTally creates a new LDBTally backed by a LevelDB database at
// the given path.
func NewLDBTally(path string, opts *opt.Options) (*LDBTally, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, err
	}

	return &LDBTally{path: path, db: db}, nil
}

// Close implements io.Closer. It removes the underlying database.
func (l *LDBTally) Close() error {
	if err := l.db.Close(); err != nil {
		return err
	}

	return os.RemoveAll(l.path)
}

// Add implements freq.Store.
func (l *LDBTally) Add(index int, n uint64) {
	key := tallyKey(index)

	var buf [binary.MaxVarintLen64]byte
	m := binary.PutUvarint(buf[:], l.get(key)+n)
	if err := l.db.Put(key, buf[:m], l.wOpts); err != nil {
		panic(err)
	}
}

// Get implements freq.Store.
func (l *LDBTally) Get(index int) uint64 {
	return l.get(tallyKey(index))
}

func (l *LDBTally) get(key []byte) uint64 {
	buf, err := l.db.Get(key, l.rOpts)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return 0
		}

		panic(err)
	}

	v, ok := binary.Uvarint(buf)
	if ok <= 0 {
		panic(fmt.Errorf("error decoding buffer: %v", ok))
	}

	return v
}

func tallyKey(index int) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(index))
	return buf[:n]
}
