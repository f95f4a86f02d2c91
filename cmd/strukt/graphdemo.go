package main

import (
	"fmt"
	"strings"

	"github.com/velmaran/strukt/graph"
)

// runGraphDemo builds a small weighted road map and walks it three ways.
func runGraphDemo() error {
	g := graph.New[string](graph.WithWeighted())

	roads := []struct {
		from, to string
		km       float64
	}{
		{"Amsterdam", "Berlin", 650},
		{"Amsterdam", "Brussels", 210},
		{"Brussels", "Paris", 310},
		{"Berlin", "Prague", 350},
		{"Paris", "Zurich", 490},
		{"Prague", "Zurich", 530},
		{"Berlin", "Warsaw", 570},
		{"Prague", "Warsaw", 630},
	}
	for _, r := range roads {
		if err := g.AddEdge(r.from, r.to, r.km); err != nil {
			return fmt.Errorf("building road map: %w", err)
		}
	}

	fmt.Printf("Cities: %s\n", strings.Join(g.Vertices(), ", "))
	fmt.Printf("Roads:  %d\n\n", len(g.Edges()))

	bfsOrder, err := g.BFS("Amsterdam")
	if err != nil {
		return err
	}
	fmt.Printf("BFS from Amsterdam: %s\n", strings.Join(bfsOrder, " → "))

	dfsOrder, err := g.DFS("Amsterdam")
	if err != nil {
		return err
	}
	fmt.Printf("DFS from Amsterdam: %s\n\n", strings.Join(dfsOrder, " → "))

	res, err := g.Dijkstra("Amsterdam", graph.WithPredecessors())
	if err != nil {
		return err
	}

	fmt.Println("Shortest distances from Amsterdam:")
	for _, city := range g.Vertices() {
		if city == "Amsterdam" {
			continue
		}
		path, ok := res.Path("Amsterdam", city)
		if !ok {
			fmt.Printf("  %-10s unreachable\n", city)
			continue
		}
		fmt.Printf("  %-10s %6.0f km  via %s\n", city, res.Dist[city], strings.Join(path, " → "))
	}

	return nil
}
