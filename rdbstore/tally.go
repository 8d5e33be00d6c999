package rdbstore

import (
	"encoding/binary"
	"fmt"

	rocksdb "github.com/tecbot/gorocksdb"
)

// RDBTally implements freq.Store by keeping selection tallies in a
// RocksDB database on disk. Keys and values are uvarint-encoded.
//
// It is functionally equivalent to ldbstore.LDBTally and freq.Counts,
// and is not safe for concurrent use.
type RDBTally struct {
	path  string
	db    *rocksdb.DB
	opts  *rocksdb.Options
	rOpts *rocksdb.ReadOptions
	wOpts *rocksdb.WriteOptions
}

// NewRDBTally creates a new RDBTally backed by a RocksDB database at
// the given path. If opts is nil, default options with CreateIfMissing
// are used.
func NewRDBTally(path string, opts *rocksdb.Options) (*RDBTally, error) {
	if opts == nil {
		opts = rocksdb.NewDefaultOptions()
		opts.SetCreateIfMissing(true)
	}

	db, err := rocksdb.OpenDb(opts, path)
	if err != nil {
		return nil, err
	}

	return &RDBTally{
		path:  path,
		db:    db,
		opts:  opts,
		rOpts: rocksdb.NewDefaultReadOptions(),
		wOpts: rocksdb.NewDefaultWriteOptions(),
	}, nil
}

// Close implements io.Closer. It destroys the underlying database.
func (r *RDBTally) Close() error {
	r.db.Close()
	r.rOpts.Destroy()
	r.wOpts.Destroy()
	return rocksdb.DestroyDb(r.path, r.opts)
}

// Add implements freq.Store.
func (r *RDBTally) Add(index int, n uint64) {
	key := tallyKey(index)

	var buf [binary.MaxVarintLen64]byte
	m := binary.PutUvarint(buf[:], r.get(key)+n)
	if err := r.db.Put(r.wOpts, key, buf[:m]); err != nil {
		panic(err)
	}
}

// Get implements freq.Store.
func (r *RDBTally) Get(index int) uint64 {
	return r.get(tallyKey(index))
}

func (r *RDBTally) get(key []byte) uint64 {
	result, err := r.db.Get(r.rOpts, key)
	if err != nil {
		panic(err)
	}
	defer result.Free()

	if len(result.Data()) == 0 {
		return 0
	}

	v, ok := binary.Uvarint(result.Data())
	if ok <= 0 {
		panic(fmt.Errorf("error decoding buffer (%d): %v", ok, result.Data()))
	}

	return v
}

func tallyKey(index int) []byte {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], uint64(index))
	return buf[:n]
}
