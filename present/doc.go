// Package present pretty-prints a bipartite.Instance's weight matrix and
// matchings for debugging and CLI output. Formatting follows the same
// informal row-dump convention as matrix.Dense.String: no stability
// guarantee is made across versions.
package present
