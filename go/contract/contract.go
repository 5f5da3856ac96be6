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
	"github.com/ethereum/go-ethereum/log"
)

// Dispatcher is the type-independent interface of an instantiated
// contract, routing deploy and call entries to the contract's handlers.
type Dispatcher interface {
	Name() string

	// Deploy runs the contract's initializer, if any, with arguments
	// decoded from the given input.
	Deploy(ctx CallContext, storage arca.Storage, input []byte) (Result, error)

	// Call dispatches the given input, starting with a 4-byte selector, to
	// the addressed message handler.
	Call(ctx CallContext, storage arca.Storage, input []byte) (Result, error)

	// DeployInfo describes the initializer, or reports false if there is
	// none.
	DeployInfo() (MessageInfo, bool)

	// Messages lists all messages, ordered by selector.
	Messages() []MessageInfo

	// Lookup finds a message by its name.
	Lookup(name string) (MessageInfo, bool)

	// Layout lists the cells of the contract's state.
	Layout() []storage.Field
}

// Result is the outcome of a successful entry.
type Result struct {
	Output []byte
	Events []Event
}

// UnknownSelectorError is returned for calls addressing no message.
type UnknownSelectorError struct {
	Selector arca.Selector
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("%v: %v", arca.ErrUnknownSelector, e.Selector)
}

func (e *UnknownSelectorError) Is(target error) bool {
	return target == arca.ErrUnknownSelector
}

// Contract is an instantiated contract declaration with state type S.
// Contracts hold no per-entry state and may serve concurrent entries on
// distinct storages.
type Contract[S any] struct {
	name     string
	layout   func(*storage.Space) S
	deploy   *Handler[S]
	handlers map[arca.Selector]*Handler[S]
	messages []MessageInfo
	fields   []storage.Field
	config   Config
	keys     *storage.KeyCache
}

var _ Dispatcher = (*Contract[struct{}])(nil)

func (c *Contract[S]) Name() string {
	return c.name
}

func (c *Contract[S]) Deploy(ctx CallContext, s arca.Storage, input []byte) (res Result, err error) {
	defer recoverFatal(&err)
	env := c.newEnv(ctx, s)
	if c.deploy != nil {
		if _, err := c.deploy.invoke(env, input); err != nil {
			return Result{}, err
		}
	}
	log.Trace("Deployed contract", "contract", c.name, "caller", ctx.Caller)
	return Result{Events: env.events}, nil
}

func (c *Contract[S]) Call(ctx CallContext, s arca.Storage, input []byte) (res Result, err error) {
	defer recoverFatal(&err)
	if len(input) < arca.SelectorSize {
		return Result{}, &arca.DecodeError{
			What: "selector",
			Err:  fmt.Errorf("input of %d bytes is too short", len(input)),
		}
	}
	selector := arca.SelectorFromBytes(input[:arca.SelectorSize])
	handler, found := c.handlers[selector]
	if !found {
		return Result{}, &UnknownSelectorError{Selector: selector}
	}

	if !handler.info.Mutates && c.config.EnforceViews {
		s = arca.ReadOnly(s)
	}
	env := c.newEnv(ctx, s)
	output, err := handler.invoke(env, input[arca.SelectorSize:])
	if err != nil {
		return Result{}, err
	}
	log.Trace("Dispatched message", "contract", c.name, "message", handler.info.Name, "caller", ctx.Caller)
	return Result{Output: output, Events: env.events}, nil
}

func (c *Contract[S]) newEnv(ctx CallContext, s arca.Storage) *Env[S] {
	space := storage.NewSpace(storage.NewBumpAlloc(c.config.BaseKey), s, c.keys)
	return &Env[S]{
		State:   c.layout(space),
		context: ctx,
		storage: s,
	}
}

func (c *Contract[S]) DeployInfo() (MessageInfo, bool) {
	if c.deploy == nil {
		return MessageInfo{}, false
	}
	return c.deploy.info, true
}

func (c *Contract[S]) Messages() []MessageInfo {
	return append([]MessageInfo(nil), c.messages...)
}

func (c *Contract[S]) Lookup(name string) (MessageInfo, bool) {
	for _, m := range c.messages {
		if m.Name == name {
			return m, true
		}
	}
	return MessageInfo{}, false
}

func (c *Contract[S]) Layout() []storage.Field {
	return append([]storage.Field(nil), c.fields...)
}

// recoverFatal converts a panic raised by a fatal condition into an error.
// Any other panic is propagated.
func recoverFatal(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(error); ok && arca.IsFatal(e) {
		*err = e
		return
	}
	panic(r)
}
