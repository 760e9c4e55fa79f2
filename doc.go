// Package flowlp solves maximum-flow problems on directed capacitated
// networks by formulating them as linear programs and delegating the solve
// to an off-the-shelf simplex routine.
//
// What is flowlp?
//
//	A small, focused library that brings together:
//		• network/ — directed capacitated multigraph with labeled edges
//		• lp/      — deterministic LP encoding: objective, capacity rows,
//		             flow-conservation rows, variable bounds, plus decoding
//		             of raw solution vectors back onto edge labels
//		• flow/    — one-shot driver: build → simplex → decode, with a
//		             feasibility audit for the returned assignment
//		• netio/   — line-oriented edge-list input and tabular output
//
// Why LP instead of augmenting paths?
//
//   - The encoding is a direct transcription of the problem statement:
//     one variable per edge, one ≤ row per capacity, one balance row per
//     internal node. No algorithmic machinery to maintain.
//   - Any standard-form LP solver can be plugged in behind the flow
//     package; gonum's simplex is wired in by default.
//   - The optimal flow VALUE is unique even when the per-edge assignment
//     is not (degenerate optima) — callers should treat the assignment as
//     one witness among possibly many.
//
// Quick ASCII example:
//
//	s ──3──▶ a ──2──▶ t
//	s ──2──▶ b ──3──▶ t
//
//	maximum flow from s to t is 4.
//
// See each subpackage's doc.go for the full contract and worked examples.
//
//	go get github.com/katalvlaran/flowlp
package flowlp
