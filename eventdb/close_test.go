// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eventdb

import (
	"errors"
	"testing"
)

type closer struct {
	err    error
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

func TestCloseAll(t *testing.T) {
	first, second := errors.New("first"), errors.New("second")
	cs := []*closer{{err: first}, {err: second}, {}}
	if err := closeAll(cs[0], cs[1], cs[2]); err != first {
		t.Errorf("closeAll = %v, want %v", err, first)
	}
	for i, c := range cs {
		if !c.closed {
			t.Errorf("closer %d not closed", i)
		}
	}
}
