// Command stress hammers avl.Tree with randomized operations,
// auditing the tree's invariants after every mutation. Each tree is
// checked against a plain map holding the same keys, so a wrong
// return value is caught as well as a broken shape.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.lepak.sg/containers/tree/avl"
	"golang.org/x/sync/semaphore"
)

var (
	trees   = flag.Int("trees", 8, "number of trees to stress")
	ops     = flag.Int("ops", 10000, "operations per tree")
	span    = flag.Int("span", 512, "keys are drawn from [0, span)")
	workers = flag.Int("workers", 4, "maximum trees stressed at once")
	seed    = flag.Int64("seed", 0, "seed (default current unix time in ns)")
)

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", *seed)

	ctx := context.Background()
	sema := semaphore.NewWeighted(int64(*workers))

	start := time.Now()
	for i := 0; i < *trees; i++ {
		if err := sema.Acquire(ctx, 1); err != nil {
			log.Fatal(err)
		}

		go func(i int) {
			defer sema.Release(1)
			// each tree gets its own deterministic op stream
			stress(i, *seed+int64(i))
		}(i)
	}

	if err := sema.Acquire(ctx, int64(*workers)); err != nil {
		log.Fatal(err)
	}

	log.Printf("%d trees, %d ops each: ok in %v", *trees, *ops, time.Since(start))
}

func stress(id int, seed int64) {
	r := rand.New(rand.NewSource(seed))
	tr := &avl.Tree[int]{}
	mirror := make(map[int]struct{})

	var history []string
	fail := func(op int, msg string, args ...any) {
		log.Printf("tree %d: op %d: %s", id, op, fmt.Sprintf(msg, args...))
		log.Printf("history (most recent last): %v", history)
		log.Fatalf("tree:\n%s", tr)
	}

	for op := 0; op < *ops; op++ {
		k := r.Intn(*span)
		_, hit := mirror[k]

		switch r.Intn(3) {
		case 0:
			history = append(history, fmt.Sprintf("insert %d", k))
			if got := tr.Insert(k); got == hit {
				fail(op, "insert %d returned %v", k, got)
			}
			mirror[k] = struct{}{}
		case 1:
			history = append(history, fmt.Sprintf("remove %d", k))
			if got := tr.Remove(k); got != hit {
				fail(op, "remove %d returned %v", k, got)
			}
			delete(mirror, k)
		case 2:
			if got := tr.Contains(k); got != hit {
				fail(op, "contains %d returned %v", k, got)
			}
			continue
		}

		if err := tr.Audit(); err != nil {
			fail(op, "audit: %v", err)
		}
		if len(history) > 20 {
			history = history[1:]
		}
	}

	if tr.Len() != len(mirror) {
		fail(*ops, "len %d, want %d", tr.Len(), len(mirror))
	}
}
