// SPDX-License-Identifier: MIT

// Package louvain clusters a symmetric similarity matrix by greedy modularity
// optimisation (the Louvain method).
//
// Each pass has two phases:
//
//  1. Local moving: every vertex, in index order, moves to the neighbouring
//     community with the largest modularity gain
//
//     ΔQ(i→c) ∝ k_{i,c} − γ · Σ_tot(c) · k_i / W
//
//     as long as the gain beats staying put by more than MinGain.
//  2. Aggregation: every community collapses into one super-vertex; edge
//     weights between communities (and internal weight as a self-loop) are
//     summed.
//
// Passes repeat until a local-moving phase makes no move, the graph stops
// shrinking, or MaxPasses is reached. Vertices without any positive
// similarity stay singletons.
//
// Determinism: vertex and community iteration is index ordered and ties keep
// the current community, so the same matrix always yields the same partition.
//
// Options:
//
//	WithResolution(γ)  γ > 0, default 1. Larger γ favours smaller clusters.
//	WithMaxPasses(n)   n > 0, default 20.
//	WithMinGain(g)     g ≥ 0, default 1e-9.
//
// The reported community strength is always plain modularity (γ = 1), so
// results from different resolutions stay comparable.
package louvain
