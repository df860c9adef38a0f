package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/redist/bfs"
)

// adj is an undirected adjacency list for tests.
type adj [][]int

func (a adj) Len() int              { return len(a) }
func (a adj) Neighbors(i int) []int { return a[i] }

// path builds 0–1–…–(n-1).
func path(n int) adj {
	a := make(adj, n)
	for i := 0; i+1 < n; i++ {
		a[i] = append(a[i], i+1)
		a[i+1] = append(a[i+1], i)
	}
	return a
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, []int{0}); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.BFS(path(2), []int{2}); !errors.Is(err, bfs.ErrSourceNotFound) {
		t.Errorf("bad source: want ErrSourceNotFound, got %v", err)
	}
	if _, err := bfs.BFS(path(2), []int{0}, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_PathDepths checks FIFO depths, parents and PathTo on a path graph.
func TestBFS_PathDepths(t *testing.T) {
	res, err := bfs.BFS(path(4), []int{0})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	p, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(p, want) {
		t.Errorf("PathTo(3) = %v; want %v", p, want)
	}
	if len(res.Unreached()) != 0 {
		t.Errorf("Unreached = %v; want none", res.Unreached())
	}
}

// TestBFS_MultiSource: two sources split a path in the middle.
func TestBFS_MultiSource(t *testing.T) {
	res, err := bfs.BFS(path(6), []int{0, 5, 0})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 0, 0, 1, 1, 1}; !reflect.DeepEqual(res.Source, want) {
		t.Errorf("Source = %v; want %v", res.Source, want)
	}
	if res.Depth[2] != 2 || res.Depth[3] != 2 {
		t.Errorf("middle depths = %d,%d; want 2,2", res.Depth[2], res.Depth[3])
	}
}

// TestBFS_Unreached: islands stay at depth -1.
func TestBFS_Unreached(t *testing.T) {
	g := adj{{1}, {0}, {}, {}}
	res, err := bfs.BFS(g, []int{0})
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 3}; !reflect.DeepEqual(res.Unreached(), want) {
		t.Errorf("Unreached = %v; want %v", res.Unreached(), want)
	}
	if res.Reached(2) {
		t.Error("Reached(2) = true")
	}
	if _, err := res.PathTo(2); err == nil {
		t.Error("PathTo(2): want error")
	}
}

// TestBFS_FilterAndDepth covers WithFilterNeighbor and WithMaxDepth.
func TestBFS_FilterAndDepth(t *testing.T) {
	res, err := bfs.BFS(path(5), []int{0}, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(path(5), []int{0}, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 3 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{3, 4}; !reflect.DeepEqual(res.Unreached(), want) {
		t.Errorf("filtered Unreached = %v; want %v", res.Unreached(), want)
	}
}

// TestBFS_PickKeepsTreesConnected: with a random pick, every node is reached
// and its parent belongs to the same source tree.
func TestBFS_PickKeepsTreesConnected(t *testing.T) {
	const side = 6
	g := make(adj, side*side)
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			i := r*side + c
			if c+1 < side {
				g[i] = append(g[i], i+1)
				g[i+1] = append(g[i+1], i)
			}
			if r+1 < side {
				g[i] = append(g[i], i+side)
				g[i+side] = append(g[i+side], i)
			}
		}
	}
	rng := rand.New(rand.NewSource(3))
	res, err := bfs.BFS(g, []int{0, 35, 17}, bfs.WithPick(rng.Intn))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != len(g) {
		t.Fatalf("visited %d of %d", len(res.Order), len(g))
	}
	for i, p := range res.Parent {
		if p >= 0 && res.Source[p] != res.Source[i] {
			t.Errorf("node %d in tree %d has parent %d in tree %d", i, res.Source[i], p, res.Source[p])
		}
	}

	again, _ := bfs.BFS(g, []int{0, 35, 17}, bfs.WithPick(rand.New(rand.NewSource(3)).Intn))
	if !reflect.DeepEqual(res.Source, again.Source) {
		t.Error("same seed produced different trees")
	}
}

// TestBFS_HooksAndCancel covers OnVisit errors and context cancellation.
func TestBFS_HooksAndCancel(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.BFS(path(3), []int{0}, bfs.WithOnVisit(func(node, _ int) error {
		if node == 1 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("OnVisit: want boom, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(path(3), []int{0}, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}
