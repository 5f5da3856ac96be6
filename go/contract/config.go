// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package contract

import (
	"fmt"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/storage"
)

// Config controls the instantiation of a contract. The zero value places
// the layout at the zero key, derives map entry keys without caching, and
// does not guard view messages against writes.
type Config struct {
	// BaseKey is the first key handed out by the layout's allocator.
	BaseKey arca.Key
	// KeyCacheSize is the number of map entry keys retained between
	// entries. Zero disables the cache.
	KeyCacheSize int
	// EnforceViews makes view messages operate on a read-only storage,
	// turning any attempted modification into a fatal error.
	EnforceViews bool
}

func DefaultConfig() Config {
	return Config{
		KeyCacheSize: storage.DefaultKeyCacheSize,
		EnforceViews: true,
	}
}

func (c Config) newKeyCache() (*storage.KeyCache, error) {
	if c.KeyCacheSize < 0 {
		return nil, fmt.Errorf("invalid key cache size: %d", c.KeyCacheSize)
	}
	if c.KeyCacheSize == 0 {
		return nil, nil
	}
	return storage.NewKeyCache(c.KeyCacheSize)
}
