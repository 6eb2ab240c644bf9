// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"

	"github.com/cybrota/phonebook/index"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/willf/bloom"
)

const (
	defaultBloomSize   = 20000
	defaultBloomHashes = 5
)

var (
	// ErrEmptyName is returned when a contact is added without a name.
	ErrEmptyName = errors.New("contact name is empty")
	// ErrLineBreak is returned when a contact name or phone number contains
	// a carriage return or line feed, which the contacts file cannot hold.
	ErrLineBreak = errors.New("contact contains a line break")
)

func checkContactFields(name, phoneNumber string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, "\r\n") || strings.ContainsAny(phoneNumber, "\r\n") {
		return errors.Wrapf(ErrLineBreak, "contact %q", name)
	}
	return nil
}

// Phonebook is a contact book backed by the balanced index. Successful
// lookups are memoised in a cache and a bloom filter answers most misses
// without touching the tree.
//
// A name that was removed stays in the bloom filter; the filter only ever
// produces false positives, which fall through to the index.
type Phonebook struct {
	contacts *index.Index
	lookups  *cache.Cache
	names    *bloom.BloomFilter
}

// NewPhonebook creates an empty phonebook with lookups tuned by cfg.
func NewPhonebook(cfg LookupConfig) *Phonebook {
	size, hashes := cfg.BloomSize, cfg.BloomHashes
	if size == 0 {
		size = defaultBloomSize
	}
	if hashes == 0 {
		hashes = defaultBloomHashes
	}

	return &Phonebook{
		contacts: index.New(),
		lookups:  NewLookupCache(cfg.CacheExpiration, cfg.CacheCleanup),
		names:    bloom.New(size, hashes),
	}
}

// AddContact stores a new contact. An existing contact with the same name is
// kept as is and index.ErrAlreadyExists is returned.
func (pb *Phonebook) AddContact(name, phoneNumber string) error {
	if err := checkContactFields(name, phoneNumber); err != nil {
		return err
	}
	if !pb.contacts.Insert(name, phoneNumber) {
		return errors.Wrapf(index.ErrAlreadyExists, "contact %q", name)
	}
	pb.names.AddString(name)
	return nil
}

// RemoveContact deletes a contact, returning index.ErrNotFound when there is
// nothing to delete.
func (pb *Phonebook) RemoveContact(name string) error {
	EvictContact(pb.lookups, name)
	if !pb.contacts.Remove(name) {
		return errors.Wrapf(index.ErrNotFound, "contact %q", name)
	}
	return nil
}

// SearchContact finds a contact by exact name.
func (pb *Phonebook) SearchContact(name string) (index.Record, error) {
	if !pb.names.TestString(name) {
		return index.Record{}, errors.Wrapf(index.ErrNotFound, "contact %q", name)
	}
	if rec, ok := GetCachedContact(pb.lookups, name); ok {
		return rec, nil
	}

	rec, ok := pb.contacts.Search(name)
	if !ok {
		return index.Record{}, errors.Wrapf(index.ErrNotFound, "contact %q", name)
	}
	CacheContact(pb.lookups, rec)
	return rec, nil
}

// Len reports how many contacts are stored.
func (pb *Phonebook) Len() int {
	return pb.contacts.Len()
}

// Height reports the height of the underlying tree.
func (pb *Phonebook) Height() int {
	return pb.contacts.Height()
}
