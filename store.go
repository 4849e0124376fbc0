package satchel

import (
	"reflect"
	"sync"

	"github.com/jinzhu/copier"
	"github.com/tidwall/btree"

	"github.com/mkruglov/satchel/options"
)

const storeCastPanic = "how could the key index hold an item that is not a *storeItem"

type storeItem[T any] struct {
	key   uint64
	value T
}

// Store is a counter keyed store. Keys are assigned by an
// auto-incrementing counter starting at 1 and are never reused;
// there is no removal. Safe for concurrent use.
type Store[T any] struct {
	mu      sync.RWMutex
	counter uint64
	index   *btree.BTree
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: btree.NewNonConcurrent(func(a, b interface{}) bool {
			i1, ok1 := a.(*storeItem[T])
			i2, ok2 := b.(*storeItem[T])
			if !ok1 || !ok2 {
				panic(storeCastPanic)
			}

			return i1.key < i2.key
		}),
	}
}

// Put stores item under the next counter key and returns that key.
func (s *Store[T]) Put(item T) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	s.index.Set(&storeItem[T]{key: s.counter, value: cloneValue(item)})

	return s.counter
}

// Get returns the item stored under key. Absence is not an error.
// The caller receives a copy and cannot mutate stored state.
func (s *Store[T]) Get(key uint64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := s.index.Get(&storeItem[T]{key: key})
	if found == nil {
		var zero T
		return zero, false
	}

	item, ok := found.(*storeItem[T])
	if !ok {
		panic(storeCastPanic)
	}

	return cloneValue(item.value), true
}

// All returns every stored item in ascending key order.
func (s *Store[T]) All() []T {
	return s.List(nil)
}

// List returns stored items honoring order and key range options.
// A nil opt behaves like options.List().
func (s *Store[T]) List(opt *options.ListOptions) []T {
	if opt == nil {
		opt = options.List()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, s.index.Len())
	collect := func(found interface{}) *storeItem[T] {
		item, ok := found.(*storeItem[T])
		if !ok {
			panic(storeCastPanic)
		}
		return item
	}

	if opt.O == options.Descend {
		var pivot interface{}
		if opt.KR != nil {
			pivot = &storeItem[T]{key: opt.KR.Upper}
		}

		s.index.Descend(pivot, func(found interface{}) bool {
			item := collect(found)
			if opt.KR != nil && item.key < opt.KR.Lower {
				return false
			}

			out = append(out, cloneValue(item.value))
			return true
		})

		return out
	}

	var pivot interface{}
	if opt.KR != nil {
		pivot = &storeItem[T]{key: opt.KR.Lower}
	}

	s.index.Ascend(pivot, func(found interface{}) bool {
		item := collect(found)
		if opt.KR != nil && item.key > opt.KR.Upper {
			return false
		}

		out = append(out, cloneValue(item.value))
		return true
	})

	return out
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.index.Len()
}

func cloneValue[T any](v T) T {
	var cp T

	// copier wants an addressable destination one pointer level deep,
	// so pointer values get their target allocated up front
	dst := reflect.ValueOf(&cp).Elem()
	if dst.Kind() == reflect.Ptr {
		src := reflect.ValueOf(v)
		if src.IsNil() {
			return cp
		}

		dst.Set(reflect.New(dst.Type().Elem()))
		if err := copier.CopyWithOption(dst.Interface(), v, copier.Option{DeepCopy: true}); err != nil {
			panic("could not copy stored value: " + err.Error())
		}

		return cp
	}

	if err := copier.CopyWithOption(&cp, &v, copier.Option{DeepCopy: true}); err != nil {
		panic("could not copy stored value: " + err.Error())
	}

	return cp
}
