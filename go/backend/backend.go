// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package backend

import "github.com/Fantom-foundation/Arca/go/arca"

// Backend is a Storage kept by a host across contract invocations. Besides
// the storage primitives, backends provide a Flush operation making all
// modifications performed so far durable as a single unit.
type Backend interface {
	arca.Storage
	Flush() error
}

var (
	_ Backend = MemoryStorage{}
	_ Backend = (*PebbleStorage)(nil)
)
