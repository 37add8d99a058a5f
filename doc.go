// Package carousel is an in-memory playground for circular structures:
// a generic circular singly-linked list and the round-robin relay
// scheduler built on top of it.
//
// 🚀 What is carousel?
//
//	A small, allocation-light toolkit that brings together:
//		• ring:  a generic circular list with O(1) rotation, split & merge
//		• relay: a round-robin turn scheduler for battery-driven robots
//		• relayring: an interactive CLI, scripted demo and scenario runner
//
// ✨ Why choose carousel?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Zero-surprise ownership: Split and Merge move nodes, never share them
//   - Honest costs: every operation documents its time complexity
//   - Pure Go: no cgo, generics-first API
//
// Under the hood, everything is organized under three packages:
//
//	ring/          - generic circular list: Append, Rotate, Split, Merge
//	relay/         - robot relay scheduler: turns, pauses, dock, event trail
//	cmd/relayring/ - interactive menu, YAML scenarios and a scripted demo
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	represents a four-element ring with head A and tail D; Rotate moves
//	the head to B in O(1), Split cuts it into A─B and C─D.
//
// Dive into examples/ for runnable walkthroughs of both packages.
//
//	go get github.com/katalvlaran/carousel
package carousel
