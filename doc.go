// Package knotfold is an in-memory toolkit for untangling nucleic-acid
// secondary structure — starting from the hard part: pseudoknot resolution.
//
// 🚀 What is knotfold?
//
//	A deterministic, side-effect-free library that takes the base pairs of
//	an RNA/DNA secondary structure and answers one question: which pairs
//	form the planar backbone, and which ones knot through it?
//		• Region detection: group base pairs into consecutively nested chains
//		• Conflict filtering: discard everything that never crosses
//		• Cluster partitioning: isolate independent knots from one another
//		• Optimal solving: interval DP over every maximum-score planar subset
//		• Order assignment: peel crossing layers until the structure is flat
//
// ✨ Why choose knotfold?
//
//   - Complete answers – every tied optimal resolution is returned, none
//     are silently dropped
//   - Rock-solid guarantees – sentinel errors only, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Parallel-friendly – independent conflict clusters are solved
//     concurrently out of the box
//
// Everything lives under one subpackage:
//
//	pseudoknot/ — region building, conflict clustering, the optimal-subset
//	              DP solver and the order-assignment driver
//
// Quick ASCII example:
//
//	    0 1 2 3
//	    ( [ ) ]        base pairs (0,2) and (1,3) cross: a pseudoknot
//
//	knotfold keeps one of them at order 0 and lifts the other to order 1 —
//	and reports both tied ways of doing it.
//
// The surrounding structure model (residues, coordinates, file formats) is
// deliberately out of scope: feed in index pairs, get back an order matrix.
// Dive into pseudoknot/doc.go for the full algorithm walkthrough.
//
//	go get github.com/velmark/knotfold/pseudoknot
package knotfold
