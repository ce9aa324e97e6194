// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import "container/heap"

// frontierItem is one queued node with its ordering key.
type frontierItem[S any] struct {
	node     *Node[S]
	priority float64
	seq      uint64
}

// priorityFrontier is a min-heap of nodes ordered by priority.
//
// Equal priorities are broken by insertion order: the node pushed first is
// popped first.
//
// Thread Safety: Not safe for concurrent use.
type priorityFrontier[S any] struct {
	items []frontierItem[S]
	next  uint64
}

func newPriorityFrontier[S any]() *priorityFrontier[S] {
	return &priorityFrontier[S]{}
}

// Len implements heap.Interface.
func (f *priorityFrontier[S]) Len() int { return len(f.items) }

// Less implements heap.Interface.
func (f *priorityFrontier[S]) Less(i, j int) bool {
	if f.items[i].priority != f.items[j].priority {
		return f.items[i].priority < f.items[j].priority
	}
	return f.items[i].seq < f.items[j].seq
}

// Swap implements heap.Interface.
func (f *priorityFrontier[S]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push implements heap.Interface. Use PushNode instead.
func (f *priorityFrontier[S]) Push(x any) { f.items = append(f.items, x.(frontierItem[S])) }

// Pop implements heap.Interface. Use PopNode instead.
func (f *priorityFrontier[S]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = frontierItem[S]{}
	f.items = old[:n-1]
	return item
}

// PushNode queues node with the given priority.
func (f *priorityFrontier[S]) PushNode(node *Node[S], priority float64) {
	heap.Push(f, frontierItem[S]{node: node, priority: priority, seq: f.next})
	f.next++
}

// PopNode removes and returns the node with the lowest priority.
// Returns nil when the frontier is empty.
func (f *priorityFrontier[S]) PopNode() *Node[S] {
	if len(f.items) == 0 {
		return nil
	}
	return heap.Pop(f).(frontierItem[S]).node
}
