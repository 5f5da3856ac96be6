// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package storage

import (
	"fmt"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultKeyCacheSize is the number of derived keys retained by a key cache
// unless configured otherwise.
const DefaultKeyCacheSize = 1 << 12

// DeriveKey computes the storage key of a map entry as the Keccak-256 hash
// of the map's base key followed by the encoded entry key.
func DeriveKey(base arca.Key, encodedKey []byte) arca.Key {
	return arca.Key(crypto.Keccak256Hash(base[:], encodedKey))
}

// KeyCache memoises map entry key derivations. The cache is safe for
// concurrent use and may be shared by multiple spaces. A nil cache is
// valid and derives every key anew.
type KeyCache struct {
	cache *lru.Cache[derivation, arca.Key]
}

type derivation struct {
	base arca.Key
	key  string
}

func NewKeyCache(size int) (*KeyCache, error) {
	cache, err := lru.New[derivation, arca.Key](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create key cache: %w", err)
	}
	return &KeyCache{cache: cache}, nil
}

// Derive returns DeriveKey(base, encodedKey), consulting the cache first.
func (c *KeyCache) Derive(base arca.Key, encodedKey []byte) arca.Key {
	if c == nil {
		return DeriveKey(base, encodedKey)
	}
	id := derivation{base: base, key: string(encodedKey)}
	if key, found := c.cache.Get(id); found {
		return key
	}
	key := DeriveKey(base, encodedKey)
	c.cache.Add(id, key)
	return key
}

// Len returns the number of cached derivations.
func (c *KeyCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}
