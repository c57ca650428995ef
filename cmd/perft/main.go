/*
 * yasai - a legal move generator core for Shogi
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 The yasai Authors
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

// Command perft drives internal/movegen's legal-move generator over a
// range of depths from a given position, the standard correctness
// cross-check for a board-game move generator.
package main

import (
	"flag"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/na2hiro/yasai/config"
	"github.com/na2hiro/yasai/internal/logging"
	"github.com/na2hiro/yasai/internal/movegen"
	"github.com/na2hiro/yasai/internal/position"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	sfen := flag.String("sfen", position.StartSfen, "sfen board and side to move to run perft from")
	depth := flag.Int("depth", 4, "maximum perft depth")
	fromDepth := flag.Int("fromdepth", 1, "first depth to report, iterating up to -depth")
	cpuProfile := flag.Bool("cpuprofile", false, "write a pprof CPU profile of the run to the working directory")
	logLvl := flag.Int("loglvl", 4, "standard log level, 0 (critical) through 5 (debug)")
	flag.Parse()

	config.ConfFile = *configFile
	config.LogLevel = *logLvl
	config.Setup()
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *fromDepth < 1 {
		*fromDepth = 1
	}
	pf := movegen.NewPerft()
	for d := *fromDepth; d <= *depth; d++ {
		pf.StartPerft(*sfen, d)
	}
	out.Println()
}
