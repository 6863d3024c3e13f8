// Package model defines the data structures shared across the dupesweep pipeline.
package model

// Path represents a file system path.
type Path string
