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
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/Fantom-foundation/Arca/go/arca"
	"github.com/Fantom-foundation/Arca/go/storage"
)

const (
	ErrSelectorCollision = arca.ConstError("selector collision")
	ErrDuplicateName     = arca.ConstError("duplicate message name")
	ErrDuplicateDeploy   = arca.ConstError("duplicate initializer")
	ErrInvalidHandler    = arca.ConstError("invalid handler")
)

// Decl collects the declaration of a contract: its storage layout, its
// optional initializer, and its messages. Declaration errors are collected
// and reported by Instantiate.
type Decl[S any] struct {
	name     string
	layout   func(*storage.Space) S
	deploy   *Handler[S]
	handlers []Handler[S]
	config   Config
	errs     []error
}

// Declare starts the declaration of a contract with the given name. The
// layout function declares the contract's cells, in a fixed order, within
// the given space and returns the resulting state. The layout is evaluated
// once by Instantiate without any storage attached, so it must only declare
// cells and never read or write them.
func Declare[S any](name string, layout func(*storage.Space) S) *Decl[S] {
	return &Decl[S]{
		name:   name,
		layout: layout,
		config: DefaultConfig(),
	}
}

// OnDeploy sets the initializer of the contract.
func (d *Decl[S]) OnDeploy(h Handler[S]) *Decl[S] {
	switch {
	case !h.deploy:
		d.errs = append(d.errs, fmt.Errorf("%w: %s is not an initializer", ErrInvalidHandler, h.info.Name))
	case d.deploy != nil:
		d.errs = append(d.errs, fmt.Errorf("%w in %s", ErrDuplicateDeploy, d.name))
	default:
		d.deploy = &h
	}
	return d
}

// On adds a message handler to the contract.
func (d *Decl[S]) On(h Handler[S]) *Decl[S] {
	if h.deploy || h.invoke == nil {
		d.errs = append(d.errs, fmt.Errorf("%w: %q is not a message handler", ErrInvalidHandler, h.info.Name))
		return d
	}
	d.handlers = append(d.handlers, h)
	return d
}

func (d *Decl[S]) WithConfig(config Config) *Decl[S] {
	d.config = config
	return d
}

// Instantiate validates the declaration and produces the contract. It
// fails if any two messages share a selector or a name, or if the layout
// does not fit into the key space above the configured base key.
func (d *Decl[S]) Instantiate() (*Contract[S], error) {
	errs := slices.Clone(d.errs)
	if d.layout == nil {
		errs = append(errs, fmt.Errorf("no layout declared for %s", d.name))
	}

	handlers := make(map[arca.Selector]*Handler[S], len(d.handlers))
	names := make(map[string]arca.Selector, len(d.handlers))
	messages := make([]MessageInfo, 0, len(d.handlers))
	for i := range d.handlers {
		h := &d.handlers[i]
		if other, found := handlers[h.info.Selector]; found {
			errs = append(errs, fmt.Errorf("%w: %s and %s both use %v", ErrSelectorCollision, other.info.Name, h.info.Name, h.info.Selector))
			continue
		}
		if _, found := names[h.info.Name]; found {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateName, h.info.Name))
			continue
		}
		handlers[h.info.Selector] = h
		names[h.info.Name] = h.info.Selector
		messages = append(messages, h.info)
	}

	keys, err := d.config.newKeyCache()
	if err != nil {
		errs = append(errs, err)
	}
	var fields []storage.Field
	if d.layout != nil {
		fields, err = d.recordFields()
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid layout: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid declaration of %s: %w", d.name, err)
	}

	slices.SortFunc(messages, func(a, b MessageInfo) int {
		return cmp.Compare(a.Selector, b.Selector)
	})

	res := &Contract[S]{
		name:     d.name,
		layout:   d.layout,
		deploy:   d.deploy,
		handlers: handlers,
		messages: messages,
		config:   d.config,
		keys:     keys,
	}
	res.fields = fields
	return res, nil
}

// recordFields evaluates the layout without storage to obtain the cells it
// declares. Cells must not be accessed by the layout function itself.
func (d *Decl[S]) recordFields() (fields []storage.Field, err error) {
	defer recoverFatal(&err)
	space := storage.NewSpace(storage.NewBumpAlloc(d.config.BaseKey), nil, nil)
	d.layout(space)
	return space.Fields(), nil
}

// MustInstantiate is like Instantiate but panics on declaration errors. It
// is intended for package initialization code.
func (d *Decl[S]) MustInstantiate() *Contract[S] {
	res, err := d.Instantiate()
	if err != nil {
		panic(err)
	}
	return res
}
