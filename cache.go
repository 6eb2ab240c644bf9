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
	"time"

	"github.com/cybrota/phonebook/index"
	"github.com/patrickmn/go-cache"
)

const (
	// Keep looked-up contacts for 30 minutes
	lookupCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	lookupCacheCleanup = 5 * time.Minute
)

// NewLookupCache creates a cache for contacts that were found recently.
// Zero durations fall back to the package defaults.
func NewLookupCache(expiration, cleanup time.Duration) *cache.Cache {
	if expiration <= 0 {
		expiration = lookupCacheExpiration
	}
	if cleanup <= 0 {
		cleanup = lookupCacheCleanup
	}
	return cache.New(expiration, cleanup)
}

func CacheContact(c *cache.Cache, rec index.Record) {
	c.Set(rec.Key, rec, cache.DefaultExpiration)
}

func GetCachedContact(c *cache.Cache, name string) (index.Record, bool) {
	val, ok := c.Get(name)
	if !ok {
		return index.Record{}, false
	}
	rec, ok := val.(index.Record)
	return rec, ok
}

func EvictContact(c *cache.Cache, name string) {
	c.Delete(name)
}
