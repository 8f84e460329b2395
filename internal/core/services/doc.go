// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The pipeline runs in four stages, each a pure function over the
// previous stage's output: BuildGrid lays the year out as weeks,
// SequencePages turns weeks into labelled pages, Partition groups pages
// into padded signatures, and Impose reorders each signature for
// printing. BookletService chains them and records the result.
//
// Services are pure Go with no CGO.
package services
