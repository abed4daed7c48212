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

// ActionTypeKind tags the variant of a queued action.
type ActionTypeKind uint8

const (
	ActionNormal ActionTypeKind = iota
	ActionInitialize
	ActionConstruct
	ActionMethod
	ActionNotifyListeners
	ActionCallable2
)

// ActionType is the payload of a QueuedAction: the specific thing the
// queue entry asks to run once popped.
type ActionType struct {
	Kind ActionTypeKind

	// ActionNormal / ActionInitialize
	Bytecode ActionBody

	// ActionConstruct
	Constructor Object
	CtorEvents  []ActionBody

	// ActionMethod / ActionNotifyListeners / ActionCallable2
	Object   Object
	Name     string
	Listener Object
	Callable Object
	Args     []Value
}

// Priority reports the bucket an ActionType is queued into:
// Initialize actions run before Construct, which run before everything
// else, matching context.rs's ActionType::priority().
func (t ActionType) Priority() int {
	switch t.Kind {
	case ActionInitialize:
		return 2
	case ActionConstruct:
		return 1
	default:
		return 0
	}
}

const numPriorities = 3
const defaultQueueCapacity = 32

// QueuedAction pairs an ActionType with the clip that queued it and
// whether it was queued as part of that clip unloading.
type QueuedAction struct {
	Clip     DisplayObject
	Action   ActionType
	IsUnload bool
}

// ActionQueue is the per-tick FIFO-per-priority-bucket queue described by
// spec.md's concurrency model: QueueActions appends to the bucket named
// by the action's priority; PopAction drains the highest-priority
// non-empty bucket first, FIFO within a bucket.
type ActionQueue struct {
	buckets [numPriorities][]QueuedAction
}

// NewActionQueue allocates an ActionQueue with buckets pre-sized for a
// typical single-tick workload.
func NewActionQueue() *ActionQueue {
	q := &ActionQueue{}
	for i := range q.buckets {
		q.buckets[i] = make([]QueuedAction, 0, defaultQueueCapacity)
	}
	return q
}

// QueueActions appends a QueuedAction to the bucket its ActionType's
// priority selects.
func (q *ActionQueue) QueueActions(clip DisplayObject, action ActionType, isUnload bool) {
	p := action.Priority()
	q.buckets[p] = append(q.buckets[p], QueuedAction{Clip: clip, Action: action, IsUnload: isUnload})
}

// PopAction removes and returns the next action to run: the oldest entry
// in the highest-priority non-empty bucket. Reports false when every
// bucket is empty.
func (q *ActionQueue) PopAction() (QueuedAction, bool) {
	for p := numPriorities - 1; p >= 0; p-- {
		if len(q.buckets[p]) == 0 {
			continue
		}
		next := q.buckets[p][0]
		q.buckets[p] = q.buckets[p][1:]
		return next, true
	}
	return QueuedAction{}, false
}

// Len reports the total number of actions pending across every bucket.
func (q *ActionQueue) Len() int {
	n := 0
	for _, b := range q.buckets {
		n += len(b)
	}
	return n
}
