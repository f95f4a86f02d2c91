package main

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"time"

	"github.com/Pallinder/go-randomdata"
	"github.com/schollz/progressbar/v3"

	"github.com/velmaran/strukt/sorting"
)

// variant is one named sorting algorithm over ints.
type variant struct {
	name string
	run  func([]int)
}

func intVariants(seed int64) []variant {
	return []variant{
		{"Bubble", sorting.Bubble[int]},
		{"Insertion", sorting.Insertion[int]},
		{"Selection", sorting.Selection[int]},
		{"Merge", sorting.Merge[int]},
		{"Heap", sorting.Heap[int]},
		{"Quick (last pivot)", func(s []int) { sorting.Quick(s) }},
		{"Quick (median-of-three)", func(s []int) {
			sorting.Quick(s, sorting.WithPivot(sorting.PivotMedianOfThree))
		}},
		{"Quick (random pivot)", func(s []int) {
			sorting.Quick(s, sorting.WithPivot(sorting.PivotRandom), sorting.WithSeed(seed))
		}},
		{"Shell (halving gaps)", func(s []int) { sorting.Shell(s) }},
		{"Shell (Sedgewick gaps)", func(s []int) {
			sorting.Shell(s, sorting.WithGaps(sorting.GapsSedgewick))
		}},
		{"Counting", func(s []int) { sorting.Counting(s) }},
		{"Radix", func(s []int) { sorting.Radix(s) }},
	}
}

func stringVariants() []variant2 {
	return []variant2{
		{"Bubble", sorting.Bubble[string]},
		{"Insertion", sorting.Insertion[string]},
		{"Selection", sorting.Selection[string]},
		{"Merge", sorting.Merge[string]},
		{"Heap", sorting.Heap[string]},
		{"Quick (last pivot)", func(s []string) { sorting.Quick(s) }},
		{"Shell (Knuth gaps)", func(s []string) {
			sorting.Shell(s, sorting.WithGaps(sorting.GapsKnuth))
		}},
	}
}

type variant2 struct {
	name string
	run  func([]string)
}

type result struct {
	name    string
	elapsed time.Duration
}

// runSortBench generates one dataset and times every variant over its
// own copy of it, so each algorithm sorts the same values.
func runSortBench(size int, seed int64, kind string) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %d", size)
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("⏱  Benchmarking sorts..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	var results []result
	var err error

	switch kind {
	case "ints":
		results, err = benchInts(size, seed, bar)
	case "words", "emails":
		results, err = benchStrings(size, seed, kind, bar)
	default:
		return fmt.Errorf("unknown dataset kind %q (want ints, words or emails)", kind)
	}
	if err != nil {
		return err
	}

	bar.Finish()
	fmt.Println()

	sort.Slice(results, func(i, j int) bool { return results[i].elapsed < results[j].elapsed })

	fmt.Printf("%d %s, seed %d\n\n", size, kind, seed)
	for rank, r := range results {
		fmt.Printf("%2d. %-26s %12s\n", rank+1, r.name, r.elapsed.Round(time.Microsecond))
	}

	return nil
}

func benchInts(size int, seed int64, bar *progressbar.ProgressBar) ([]result, error) {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, size)
	for i := range data {
		data[i] = rng.Intn(size * 10)
	}

	want := slices.Clone(data)
	slices.Sort(want)

	var results []result
	for _, v := range intVariants(seed) {
		work := slices.Clone(data)

		start := time.Now()
		v.run(work)
		elapsed := time.Since(start)

		if !slices.Equal(work, want) {
			return nil, fmt.Errorf("%s produced an unsorted result", v.name)
		}

		results = append(results, result{name: v.name, elapsed: elapsed})
		bar.Add(1)
	}

	return results, nil
}

func benchStrings(size int, seed int64, kind string, bar *progressbar.ProgressBar) ([]result, error) {
	randomdata.CustomRand(rand.New(rand.NewSource(seed)))

	data := make([]string, size)
	for i := range data {
		if kind == "emails" {
			data[i] = randomdata.Email()
		} else {
			data[i] = randomdata.SillyName()
		}
	}

	want := slices.Clone(data)
	slices.Sort(want)

	var results []result
	for _, v := range stringVariants() {
		work := slices.Clone(data)

		start := time.Now()
		v.run(work)
		elapsed := time.Since(start)

		if !slices.Equal(work, want) {
			return nil, fmt.Errorf("%s produced an unsorted result", v.name)
		}

		results = append(results, result{name: v.name, elapsed: elapsed})
		bar.Add(1)
	}

	return results, nil
}
