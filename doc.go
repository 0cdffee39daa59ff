// Package metrograph is your in-memory toolkit for modeling, exploring,
// and analyzing metro transit networks — from the core weighted graph to
// path search, shortest routes and network-wide characteristics.
//
// 🚇 What is metrograph?
//
//	A thread-safe library for undirected, weighted transit graphs that
//	brings together:
//		• Core primitives: stations & connections, mutated safely under locks
//		• Traversals: DFS route discovery, BFS fewest-stops search
//		• Shortest paths: Dijkstra single-source, pair routes & distance rankings
//		• Datasets: JSON station/connection loading with eager validation
//		• Analysis: density, diameter, degree statistics, hub detection
//		• Reporting: formatted text summaries & path comparisons
//		• Visualization: deterministic Graphviz DOT with line colors
//
// ✨ Why choose metrograph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, sentinel errors, deterministic output
//   - Honest results – an unreachable station is a value, never an error
//
// Everything is organized under flat subpackages:
//
//	core/     — Station, Connection & the thread-safe undirected Graph
//	traverse/ — DFS and BFS path search between station pairs
//	dijkstra/ — weighted shortest paths & closest/farthest rankings
//	dataset/  — JSON dataset decoding & graph construction
//	analysis/ — network characteristics (density, diameter, hubs)
//	report/   — plain-text reporting of summaries, routes & rankings
//	viz/      — Graphviz DOT rendering with per-line colors
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    4───3
//
//	a four-station loop; BFS finds the fewest stops, Dijkstra the
//	fastest route by travel time.
//
//	go get github.com/katalvlaran/metrograph
package metrograph
