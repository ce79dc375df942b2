// Package simcluster groups compared objects into clusters of similar ones.
//
// What is in the box?
//
//	A small stack that turns pairwise similarity observations (for example
//	plagiarism-detector comparisons) into a partition of the compared
//	objects:
//		• matrix/        dense symmetric similarity matrix, kernels, Jacobi eigen
//		• mapping/       dense object ↔ index mapping
//		• clustering/    Adapter, generic Result/Cluster model, Remap, modularity
//		• louvain/, agglomerative/, spectral/, threshold/  pluggable algorithms
//		• comparison/    Submission/Comparison domain types, metrics, modes
//		• pipeline/      sequential or parallel batch runner with metrics
//		• cmd/simcluster CLI over YAML/JSON comparison files
//
// Flow:
//
//	comparisons ──► clustering.NewAdapter ──► N×N similarity matrix
//	            ──► Algorithm.Cluster      ──► Result[int]
//	            ──► Remap(Unmap)           ──► Result[*Submission]
//
// Quick ASCII example:
//
//	    A═══B        C═══D        A–B and C–D are similar,
//	        └── 0.1 ─┘            B–C barely: two clusters.
//
//	go install github.com/katalvlaran/simcluster/cmd/simcluster@latest
package simcluster
