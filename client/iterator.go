package client

import (
	"context"
	"io"
	"iter"

	"github.com/wippyai/g2-bridge/abi"
	"github.com/wippyai/g2-bridge/errors"
	"github.com/wippyai/g2-bridge/handle"
)

// Iterator walks an open engine handle: fetch until exhausted, then close.
// It is not safe for concurrent use.
type Iterator struct {
	base     *Base
	fetchSym abi.Symbol
	closeSym abi.Symbol
	h        handle.Token
	done     bool
	closed   bool
}

// Iterator wraps an open handle.
func (b *Base) Iterator(h handle.Token, fetchSym, closeSym abi.Symbol) *Iterator {
	return &Iterator{base: b, h: h, fetchSym: fetchSym, closeSym: closeSym}
}

// Handle returns the engine handle.
func (it *Iterator) Handle() handle.Token {
	return it.h
}

// Next returns the next item, or io.EOF once the handle is exhausted.
func (it *Iterator) Next(ctx context.Context) (string, error) {
	if it.closed {
		return "", errors.Closed(string(it.fetchSym))
	}
	if it.done {
		return "", io.EOF
	}
	s, err := it.base.Fetch(ctx, it.fetchSym, it.h)
	if err != nil {
		return "", err
	}
	if s == "" {
		it.done = true
		return "", io.EOF
	}
	return s, nil
}

// All yields every remaining item. Iteration stops at the first error, which
// is yielded with an empty item.
func (it *Iterator) All(ctx context.Context) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			s, err := it.Next(ctx)
			if err == io.EOF {
				return
			}
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the handle. Later calls return nil without reaching the
// engine.
func (it *Iterator) Close(ctx context.Context) error {
	if it.closed {
		return nil
	}
	it.closed = true
	return it.base.Close(ctx, it.closeSym, it.h)
}
