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
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// This file provides a registry for contracts.
//
// Packages providing contracts register them as part of their init code.
// Thus, by including such a package, its contracts become available to
// client applications like the command line driver.

// Factory is the type of a function instantiating a contract.
type Factory func() (Dispatcher, error)

// New performs a lookup for the given name (case-insensitive) in the
// registry and instantiates the contract. An error is returned if no
// factory was registered under the given name.
func New(name string) (Dispatcher, error) {
	factory := Get(name)
	if factory == nil {
		return nil, fmt.Errorf("contract not found: %s", name)
	}
	return factory()
}

// Get performs a lookup for the given name (case-insensitive) in the
// registry. The result is nil if no factory was registered under the given
// name.
func Get(name string) Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return registry[strings.ToLower(name)]
}

// All obtains all registered factories.
func All() map[string]Factory {
	registryLock.Lock()
	defer registryLock.Unlock()
	return maps.Clone(registry)
}

// Names lists the names of all registered contracts in lexical order.
func Names() []string {
	names := maps.Keys(All())
	slices.Sort(names)
	return names
}

// Register binds a contract factory to the given name. The name is not
// case-sensitive. Registering a nil factory or reusing a name fails. This
// function is mainly intended to be used by package initialization code.
func Register(name string, factory Factory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	registryLock.Lock()
	defer registryLock.Unlock()
	if _, found := registry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	registry[key] = factory
	return nil
}

// MustRegister is like Register but panics on errors.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// registry is a global registry for contract factories.
var registry = map[string]Factory{}

// registryLock protects access to the registry.
var registryLock sync.Mutex
