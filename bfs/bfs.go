// Package bfs provides breadth-first search over an Adjacency,
// returning hop depths, parent links, source trees, and visit order.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Adjacency
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from every node in sources at once,
// applying any number of functional Options. A node joins the tree of the
// first source whose search discovers it; repeated sources are ignored.
// Returns ErrGraphNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or any user-supplied hook error.
func BFS(g Adjacency, sources []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Len()
	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, fmt.Errorf("BFS(source=%d, nodes=%d): %w", s, n, ErrSourceNotFound)
		}
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			Source: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
		w.res.Source[i] = -1
	}
	for si, s := range sources {
		if w.res.Depth[s] < 0 {
			w.enqueue(s, 0, -1, si)
		}
	}

	return w.res, w.loop()
}

// enqueue marks node discovered at depth d under parent and source tree si.
func (w *walker) enqueue(node, d, parent, si int) {
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.res.Source[node] = si
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.node, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue removes the head, or the entry chosen by Pick (swap-remove).
func (w *walker) dequeue() queueItem {
	if w.opts.Pick == nil {
		item := w.queue[0]
		w.queue = w.queue[1:]
		return item
	}
	i := w.opts.Pick(len(w.queue))
	item := w.queue[i]
	last := len(w.queue) - 1
	w.queue[i] = w.queue[last]
	w.queue = w.queue[:last]

	return item
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each
// undiscovered neighbor into the tree of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	si := w.res.Source[item.node]
	for _, nbr := range w.graph.Neighbors(item.node) {
		if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.node, si)
	}
}
