// Copyright 2024 The Flashcore Authors
// This file is part of Flashcore.
//
// Flashcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Flashcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Flashcore. If not, see <http://www.gnu.org/licenses/>.

package avm1

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDeadline struct{ expired bool }

func (f fakeDeadline) Expired() bool { return f.expired }

func TestPollBudgetReturnsBudgetExceededWhenExpired(t *testing.T) {
	act := newTestActivation(6)
	err := act.PollBudget(fakeDeadline{expired: true})
	require.True(t, errors.Is(err, ErrBudgetExceeded))
}

func TestPollBudgetOKWhenNotExpired(t *testing.T) {
	act := newTestActivation(6)
	require.NoError(t, act.PollBudget(fakeDeadline{expired: false}))
}

func TestRunRecoversPanicIntoInternalFault(t *testing.T) {
	act := newTestActivation(6)
	var logged string
	_, err := act.Run(func(s string) { logged = s }, func() (Value, error) {
		panic("boom")
	})
	require.True(t, errors.Is(err, ErrInternalFault))
	require.Contains(t, logged, "boom")
}

func TestFromFunctionGuardsCallDepth(t *testing.T) {
	act := newTestActivation(6)
	cur := act
	var err error
	for i := 0; i < maxCallDepth+2; i++ {
		cur, err = cur.FromFunction("f", cur.This(), nil)
		if err != nil {
			break
		}
	}
	require.True(t, errors.Is(err, ErrCallStackExhausted))
}
