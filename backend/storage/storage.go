// Copyright 2024 The Flashcore Authors
// This file is part of Flashcore.
//
// Flashcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Flashcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Flashcore. If not, see <http://www.gnu.org/licenses/>.

// Package storage defines the SharedObject persistence capability, and
// ships two implementations: an in-memory map for tests and a
// goleveldb-backed one for a real player build. Both key blobs by a
// sha3 content-address of the SharedObject's path rather than the raw
// path string, and both deduplicate concurrent reads of the same path
// with singleflight.
package storage

import (
	"encoding/hex"
	"sync"

	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/singleflight"

	"github.com/syndtr/goleveldb/leveldb"
)

// Backend is the SharedObject persistence capability.
type Backend interface {
	// Get returns the blob stored at path, or ok=false if absent.
	Get(path string) (data []byte, ok bool)
	// Put stores data at path, replacing any existing blob.
	Put(path string, data []byte) error
	// Delete removes any blob stored at path.
	Delete(path string) error
}

func contentKey(path string) string {
	sum := sha3.Sum256([]byte(path))
	return hex.EncodeToString(sum[:])
}

// Memory is an in-process Backend, the default for the test harness.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	group singleflight.Group
}

// NewMemory allocates an empty in-memory Backend.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(path string) ([]byte, bool) {
	key := contentKey(path)
	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		m.mu.RLock()
		defer m.mu.RUnlock()
		data, ok := m.blobs[key]
		if !ok {
			return nil, nil
		}
		cp := append([]byte(nil), data...)
		return cp, nil
	})
	if err != nil || v == nil {
		return nil, false
	}
	return v.([]byte), true
}

func (m *Memory) Put(path string, data []byte) error {
	key := contentKey(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) Delete(path string) error {
	key := contentKey(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

var _ Backend = (*Memory)(nil)

// Level is a goleveldb-backed Backend for a persistent player build.
type Level struct {
	db    *leveldb.DB
	group singleflight.Group
}

// OpenLevel opens (creating if absent) a goleveldb database at dir.
func OpenLevel(dir string) (*Level, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	return &Level{db: db}, nil
}

// Close releases the underlying database handle.
func (l *Level) Close() error { return l.db.Close() }

func (l *Level) Get(path string) ([]byte, bool) {
	key := contentKey(path)
	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		return l.db.Get([]byte(key), nil)
	})
	if err != nil {
		return nil, false
	}
	return v.([]byte), true
}

func (l *Level) Put(path string, data []byte) error {
	return l.db.Put([]byte(contentKey(path)), data, nil)
}

func (l *Level) Delete(path string) error {
	return l.db.Delete([]byte(contentKey(path)), nil)
}

var _ Backend = (*Level)(nil)
