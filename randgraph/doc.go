// SPDX-License-Identifier: MIT

// Package randgraph builds random connected graphs sized for stepwise
// visualization.
//
// Generate lays a cycle backbone through a shuffled vertex permutation,
// which guarantees every vertex is reachable from every other, then
// sprinkles extra random edges up to roughly a quarter of the possible
// pair count. Weighted graphs draw weights uniformly from [1, 9].
//
// Determinism is explicit: WithSeed locks the permutation, the extra
// edges and the weights, so a seeded Generate call reproduces the same
// graph byte for byte. Vertex IDs default to V1..Vn via an injectable
// scheme, and every vertex receives a circle-layout position so a
// renderer can draw the result without further preparation.
package randgraph
