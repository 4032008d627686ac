// Copyright 2025 go-highway Authors
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

// Package registry is the capability dispatch table for kernels.
//
// Implementations are registered per (operation, element type, target)
// with a priority. A lookup for a target considers the entries registered
// for that exact target plus the catch-all entries registered under
// hwy.DispatchScalar, and picks the highest priority. The generic fallback
// kernels register under the catch-all target at PriorityGeneric, so they
// are chosen only when nothing more specialized exists:
//
//	registry.Default.MustRegister(registry.Entry{
//	    Op:       registry.OpFMA,
//	    Elem:     registry.Float64,
//	    Target:   hwy.DispatchAVX2,
//	    Priority: registry.PriorityNative,
//	    Name:     "native",
//	    Kernel:   registry.Ternary[float64](hwy.FMA[float64]),
//	})
//
//	fma, err := registry.Resolve[registry.Ternary[float64]](
//	    registry.Default, registry.OpFMA, registry.Float64, hwy.CurrentLevel())
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/ajroetker/hwy-fallback/hwy"
)

// Priorities used by the packages in this module. Higher wins.
const (
	PriorityGeneric = 0
	PriorityNative  = 10
)

var (
	// ErrNotFound is returned when no entry serves a lookup.
	ErrNotFound = errors.New("no kernel registered")

	// ErrUnknownOp is returned for an Op without a known signature.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrNilKernel is returned when an entry has no kernel.
	ErrNilKernel = errors.New("nil kernel")

	// ErrKernelType is returned when a kernel's Go type does not match the
	// signature its operation and element type require.
	ErrKernelType = errors.New("kernel type mismatch")

	// ErrDuplicate is returned when the same named implementation is
	// registered twice for one (op, elem, target).
	ErrDuplicate = errors.New("duplicate kernel")
)

// Entry is one implementation of an operation.
type Entry struct {
	Op       Op
	Elem     ElemType
	Target   hwy.DispatchLevel
	Priority int

	// Name identifies the implementation family, e.g. "generic" or "native".
	Name string

	// Kernel is a Unary, Binary, Ternary or Predicate function (or an
	// unnamed func with the same signature) for Elem.
	Kernel any
}

// CatchAll reports whether the entry serves every target.
func (e Entry) CatchAll() bool {
	return e.Target == hwy.DispatchScalar
}

func (e Entry) String() string {
	return fmt.Sprintf("%s/%s@%s:%s(p=%d)", e.Op, e.Elem, e.Target, e.Name, e.Priority)
}

// Registry is a concurrency-safe strategy table.
// The zero value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Default is the registry the hwy/kernels facade resolves through.
var Default = New()

// Register validates and adds an entry.
func (r *Registry) Register(e Entry) error {
	if err := validate(e); err != nil {
		return fmt.Errorf("registry: register %s: %w", e, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dup := lo.ContainsBy(r.entries, func(x Entry) bool {
		return x.Op == e.Op && x.Elem == e.Elem && x.Target == e.Target && x.Name == e.Name
	})
	if dup {
		return fmt.Errorf("registry: register %s: %w", e, ErrDuplicate)
	}
	r.entries = append(r.entries, e)

	hwy.Logger().Debug("registry: kernel registered",
		"op", string(e.Op), "elem", e.Elem.String(), "target", e.Target.String(),
		"name", e.Name, "priority", e.Priority)
	return nil
}

// MustRegister is like Register but panics on error.
// It is meant for init-time registration of kernels known to be valid.
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

func validate(e Entry) error {
	arity, ok := e.Op.Arity()
	if !ok {
		return ErrUnknownOp
	}
	if e.Kernel == nil {
		return ErrNilKernel
	}
	kt := reflect.TypeOf(e.Kernel)
	if kt.Kind() == reflect.Func && reflect.ValueOf(e.Kernel).IsNil() {
		return ErrNilKernel
	}
	want, ok := signature(arity, e.Elem)
	if !ok || !kt.ConvertibleTo(want) {
		return ErrKernelType
	}
	return nil
}

// Lookup returns the entry serving (op, elem) on target: the highest
// priority among entries for exactly that target and catch-all entries.
// On equal priority the exact target wins, then the earlier registration.
func (r *Registry) Lookup(op Op, elem ElemType, target hwy.DispatchLevel) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := -1
	for i, e := range r.entries {
		if e.Op != op || e.Elem != elem {
			continue
		}
		if e.Target != target && !e.CatchAll() {
			continue
		}
		if best < 0 || better(e, r.entries[best], target) {
			best = i
		}
	}
	if best < 0 {
		return Entry{}, fmt.Errorf("registry: %s/%s on %s: %w", op, elem, target, ErrNotFound)
	}

	chosen := r.entries[best]
	if chosen.CatchAll() && target != hwy.DispatchScalar {
		hwy.Logger().Debug("registry: no specialized kernel, using fallback",
			"op", string(op), "elem", elem.String(), "target", target.String(), "name", chosen.Name)
	}
	return chosen, nil
}

func better(candidate, current Entry, target hwy.DispatchLevel) bool {
	if candidate.Priority != current.Priority {
		return candidate.Priority > current.Priority
	}
	return candidate.Target == target && current.Target != target
}

// Resolve looks up (op, elem) on target and returns its kernel as K, which
// is one of Unary[T], Binary[T], Ternary[T] or Predicate[T].
func Resolve[K any](r *Registry, op Op, elem ElemType, target hwy.DispatchLevel) (K, error) {
	var zero K
	e, err := r.Lookup(op, elem, target)
	if err != nil {
		return zero, err
	}
	if k, ok := e.Kernel.(K); ok {
		return k, nil
	}
	want := reflect.TypeFor[K]()
	v := reflect.ValueOf(e.Kernel)
	if !v.Type().ConvertibleTo(want) {
		return zero, fmt.Errorf("registry: resolve %s as %s: %w", e, want, ErrKernelType)
	}
	return v.Convert(want).Interface().(K), nil
}

// Entries returns a snapshot of all entries ordered by op, element type,
// target and descending priority.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	out := slices.Clone(r.entries)
	r.mu.RUnlock()

	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Op, b.Op),
			cmp.Compare(a.Elem, b.Elem),
			cmp.Compare(a.Target, b.Target),
			cmp.Compare(b.Priority, a.Priority),
		)
	})
	return out
}

// EntriesFor returns the entries registered for op, in Entries order.
func (r *Registry) EntriesFor(op Op) []Entry {
	return lo.Filter(r.Entries(), func(e Entry, _ int) bool {
		return e.Op == op
	})
}

// Ops returns the sorted set of registered operations.
func (r *Registry) Ops() []Op {
	ops := lo.Uniq(lo.Map(r.Entries(), func(e Entry, _ int) Op {
		return e.Op
	}))
	slices.Sort(ops)
	return ops
}

// Targets returns the sorted set of targets with at least one entry.
func (r *Registry) Targets() []hwy.DispatchLevel {
	targets := lo.Uniq(lo.Map(r.Entries(), func(e Entry, _ int) hwy.DispatchLevel {
		return e.Target
	}))
	slices.Sort(targets)
	return targets
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
