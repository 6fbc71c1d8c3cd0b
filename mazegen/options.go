// SPDX-License-Identifier: MIT
// Package: lvmaze/mazegen
//
// options.go — functional options for the maze generator.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Backtrack itself never panics.
//   • Determinism is explicit: without WithSeed/WithRand a fixed seed is used.

package mazegen

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrTooSmall indicates rows or cols below 1.
var ErrTooSmall = errors.New("mazegen: maze must have at least one row and one column")

// defaultSeed keeps unconfigured generation reproducible.
const defaultSeed = 1

// Option customizes Backtrack.
type Option func(*config)

type config struct {
	rng   *rand.Rand
	loops float64
}

func defaultConfig() config {
	return config{rng: rand.New(rand.NewSource(defaultSeed))}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithLoops removes each remaining interior wall with probability p after the
// perfect maze is carved, creating cycles. Panics unless 0 ≤ p ≤ 1.
func WithLoops(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("mazegen: WithLoops(%v) outside [0,1]", p))
	}
	return func(c *config) {
		c.loops = p
	}
}
