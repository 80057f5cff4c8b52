// SPDX-License-Identifier: MIT

// Package store keeps a local history of solves in SQLite.
//
// Every entry carries a UUIDv7 identifier (time-ordered), the input matrix
// and the full Solution (steps and trace included) as JSON, so a stored
// solve can be rendered again exactly as it was first shown.
package store
