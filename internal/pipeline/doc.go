// Package pipeline runs the migration: image discovery, conversion,
// reference rewriting, optional PNG removal, and the summary report.
//
// Each stage returns its per-file [ItemResult] values; [Run] folds them into
// [RunStats]. Stages run strictly in order and one file at a time.
package pipeline
