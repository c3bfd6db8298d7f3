/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package perft counts the leaves of the legal-move tree below a
// position to a fixed depth. It exists to verify the move generator
// against known node counts (see spec.md's TESTABLE PROPERTIES); it is
// not a product feature, only a test-time helper.
package perft

import (
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/sugyan/yasai-sub000/config"
	"github.com/sugyan/yasai-sub000/internal/util"
	myLogging "github.com/sugyan/yasai-sub000/logging"
	"github.com/sugyan/yasai-sub000/movegen"
	"github.com/sugyan/yasai-sub000/position"
)

var log *logging.Logger

func init() {
	log = myLogging.GetLog()
}

// Count returns the number of leaf positions reachable from pos in
// exactly depth plies. depth 0 always counts as a single leaf (pos
// itself). The first ply is fanned out across config.Settings.Perft.Workers
// goroutines, each driving its own Position clone; set
// config.Settings.Perft.ProfileEnabled or YASAI_PERFT_PROFILE=1 to wrap
// the run in a CPU profile.
func Count(pos *position.Position, depth int) uint64 {
	if config.Settings.Perft.ProfileEnabled || os.Getenv("YASAI_PERFT_PROFILE") != "" {
		stop := profile.Start(profile.CPUProfile, profile.Quiet)
		defer stop.Stop()
	}

	log.Debugf("perft depth=%d starting with %d workers", depth, config.Settings.Perft.Workers)
	start := time.Now()
	n := countFanOut(pos, depth)
	util.TimeTrack(start, "perft")
	log.Infof("perft depth=%d: %s nodes", depth, myLogging.Out.Sprintf("%d", n))
	return n
}

func countFanOut(pos *position.Position, depth int) uint64 {
	if depth <= 1 {
		return countSequential(pos, depth)
	}

	ml := movegen.Generate(pos)
	moves := ml.Moves()

	workers := config.Settings.Perft.Workers
	if workers < 1 {
		workers = 1
	}

	results := make([]uint64, len(moves))
	var g errgroup.Group
	sem := make(chan struct{}, workers)
	for i, m := range moves {
		i, m := i, m
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			child := pos.Clone()
			child.DoMove(m)
			results[i] = countSequential(child, depth-1)
			return nil
		})
	}
	_ = g.Wait()

	var total uint64
	for _, r := range results {
		total += r
	}
	return total
}

func countSequential(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	ml := movegen.Generate(pos)
	if depth == 1 {
		return uint64(ml.Len())
	}
	var total uint64
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		pos.DoMove(m)
		total += countSequential(pos, depth-1)
		pos.UndoMove(m)
	}
	return total
}
