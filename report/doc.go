// SPDX-License-Identifier: MIT

// Package report renders a rank.Result for people and for machines.
//
// Text output prints one "<vertex> = <percent>%" line per vertex with four
// decimals, optionally preceded by a header line when sorted by rank:
//
//	Results sorted in decreasing order of rank or importance
//	2 = 66.6667%
//	1 = 33.3333%
//
// YAML output carries the same ranks plus solve diagnostics.
package report
