/*
 * options.go, part of govrc.
 *
 * Copyright 2026 The govrc Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package rot

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/BurntSushi/toml"

	"github.com/vrctst/govrc/internal/logging"
	v3 "github.com/vrctst/govrc/v3"
)

// the second PCG word for seeded generators.
const seedStream uint64 = 0x5eed

// Options contains the settings for sampling rotations.
type Options struct {
	seed    *uint64
	samples int
}

// DefaultOptions returns Options without a seed, so each
// generator is seeded by the process, and 1000 samples.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.samples = 1000
	return ret
}

// Seed returns the seed and whether there is one. If s is given,
// the seed is first set to s[0].
func (O *Options) Seed(s ...uint64) (uint64, bool) {
	if len(s) > 0 {
		seed := s[0]
		O.seed = &seed
	}
	if O.seed == nil {
		return 0, false
	}
	return *O.seed, true
}

// Unseed removes the seed, if any.
func (O *Options) Unseed() {
	O.seed = nil
}

// Samples returns the number of rotations to sample, and sets it
// to the value given, if any. Values smaller than 1 are ignored.
func (O *Options) Samples(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.samples = n[0]
	}
	return O.samples
}

// Rand returns a new generator. Generators from Options with the same seed
// give the same numbers. Without a seed, the generator is seeded by the process.
func (O *Options) Rand() *rand.Rand {
	if O.seed == nil {
		logging.Logger().Debug("no seed given, using a process-seeded generator")
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*O.seed, seedStream))
}

// Sample returns O.Samples() uniformly distributed rotations, from a new
// generator obtained with O.Rand().
func (O *Options) Sample() []*v3.Matrix {
	return UniformRandomRotations(O.Rand(), O.samples)
}

type tomlOptions struct {
	Seed    *uint64 `toml:"seed"`
	Samples int     `toml:"samples"`
}

// ReadOptions reads Options in TOML format from r, for instance:
//
//	seed = 42
//	samples = 5000
//
// Missing keys keep their default values.
func ReadOptions(r io.Reader) (*Options, error) {
	var t tomlOptions
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return nil, fmt.Errorf("govrc/rot: can't read options: %w", err)
	}
	return fromTOML(t, md)
}

// OptionsFromFile reads Options from the TOML file name.
func OptionsFromFile(name string) (*Options, error) {
	var t tomlOptions
	md, err := toml.DecodeFile(name, &t)
	if err != nil {
		return nil, fmt.Errorf("govrc/rot: can't read options from %s: %w", name, err)
	}
	return fromTOML(t, md)
}

func fromTOML(t tomlOptions, md toml.MetaData) (*Options, error) {
	if u := md.Undecoded(); len(u) > 0 {
		return nil, fmt.Errorf("govrc/rot: unknown option %q", u[0].String())
	}
	if md.IsDefined("samples") && t.Samples <= 0 {
		return nil, fmt.Errorf("govrc/rot: samples must be positive, got %d", t.Samples)
	}
	ret := DefaultOptions()
	if t.Seed != nil {
		ret.Seed(*t.Seed)
	}
	ret.Samples(t.Samples)
	return ret, nil
}
