// Command seqbench exercises PVector and PSequence under synthetic
// workloads and prints a results table sized to the terminal, in the manner
// of the teacher's examples/trie_bench command.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/arriqaaq/pseq/elem"
	"github.com/arriqaaq/pseq/pseq"
	"github.com/arriqaaq/pseq/pvector"
	"golang.org/x/term"
)

const usage = "seqbench: benchmark PVector and PSequence.\n" +
	"  -size N    number of elements to build (default 10000)\n" +
	"  -seed N    random seed for the mutation workload (default time-based)\n" +
	"  -ops N     number of random get/set operations to time (default 2000)\n"

func main() {
	size := flag.Int("size", 10000, "number of elements")
	ops := flag.Int("ops", 2000, "number of random operations")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	rows := []row{
		benchPVectorAppend(*size),
		benchPVectorRandomSet(*size, *ops, rng),
		benchPSequenceAppendRight(*size),
		benchPSequenceAppendLeft(*size),
		benchPSequenceRandomIndex(*size, *ops, rng),
		benchPSequenceSplitConcat(*size),
	}
	printTable(rows)
}

type row struct {
	name    string
	n       int
	elapsed time.Duration
	perOp   time.Duration
}

func newRow(name string, n int, elapsed time.Duration) row {
	perOp := time.Duration(0)
	if n > 0 {
		perOp = elapsed / time.Duration(n)
	}
	return row{name: name, n: n, elapsed: elapsed, perOp: perOp}
}

func benchPVectorAppend(n int) row {
	start := time.Now()
	v := pvector.Empty(elem.Default)
	for i := 0; i < n; i++ {
		v = v.Append(i)
	}
	_ = v
	return newRow("pvector.Append x N", n, time.Since(start))
}

func benchPVectorRandomSet(n, ops int, rng *rand.Rand) row {
	v := pvector.Empty(elem.Default)
	for i := 0; i < n; i++ {
		v = v.Append(i)
	}
	start := time.Now()
	for i := 0; i < ops; i++ {
		var err error
		v, err = v.Set(rng.Intn(n), i)
		if err != nil {
			panic(err)
		}
	}
	return newRow("pvector.Set (random)", ops, time.Since(start))
}

func benchPSequenceAppendRight(n int) row {
	start := time.Now()
	s := pseq.Empty(elem.Default)
	for i := 0; i < n; i++ {
		s = s.AppendRight(i)
	}
	_ = s
	return newRow("pseq.AppendRight x N", n, time.Since(start))
}

func benchPSequenceAppendLeft(n int) row {
	start := time.Now()
	s := pseq.Empty(elem.Default)
	for i := 0; i < n; i++ {
		s = s.AppendLeft(i)
	}
	_ = s
	return newRow("pseq.AppendLeft x N", n, time.Since(start))
}

func benchPSequenceRandomIndex(n, ops int, rng *rand.Rand) row {
	items := make([]elem.Element, n)
	for i := range items {
		items[i] = i
	}
	s := pseq.New(elem.Default, items...)
	start := time.Now()
	for i := 0; i < ops; i++ {
		if _, err := s.Index(rng.Intn(n)); err != nil {
			panic(err)
		}
	}
	return newRow("pseq.Index (random)", ops, time.Since(start))
}

func benchPSequenceSplitConcat(n int) row {
	items := make([]elem.Element, n)
	for i := range items {
		items[i] = i
	}
	s := pseq.New(elem.Default, items...)
	start := time.Now()
	left, right, err := s.SplitAt(n / 2)
	if err != nil {
		panic(err)
	}
	_ = left.Extend(right)
	return newRow("pseq.SplitAt+Extend", 1, time.Since(start))
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func printTable(rows []row) {
	width := terminalWidth()
	nameWidth := 28
	if width < 60 {
		nameWidth = width - 32
		if nameWidth < 10 {
			nameWidth = 10
		}
	}
	fmt.Printf("%-*s %10s %14s %14s\n", nameWidth, "benchmark", "n", "total", "per-op")
	for _, r := range rows {
		fmt.Printf("%-*s %10d %14s %14s\n", nameWidth, r.name, r.n, r.elapsed.Round(time.Microsecond), r.perOp.Round(time.Nanosecond))
	}
}
