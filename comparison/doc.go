// SPDX-License-Identifier: MIT

// Package comparison is the domain side of similarity clustering: submissions
// and the pairwise comparisons a plagiarism detector produced for them.
//
// A Submission is identified by pointer, never by name. Two Submission values
// with the same Name are different objects and end up in different clusters
// unless compared with each other.
//
// Metric selects which comparison score feeds the similarity matrix:
//
//	"avg" AverageSimilarity: shared content relative to both submissions
//	"max" MaximumSimilarity: shared content relative to the smaller one
//
// Mode selects how a batch of clustering runs is executed (see pipeline).
package comparison
