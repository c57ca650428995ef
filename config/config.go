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

// Package config holds globally available configuration variables, set by
// defaults or overridden from a config file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory).
	ConfFile = "./config.toml"

	// LogLevel is the general log level. The config file does not set it;
	// cmd/perft sets it from its -loglvl flag.
	LogLevel = 4

	// TestLogLevel is the log level used from _test.go files.
	TestLogLevel = 4

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

type tablesConfiguration struct {
	// LogBuildTimings logs how long building all attack and between tables
	// took, as a single total.
	LogBuildTimings bool
}

type conf struct {
	Tables tablesConfiguration
}

func init() {
	Settings.Tables.LogBuildTimings = false
}

// Setup reads the config file (if present) and applies overrides on top of
// the defaults set by this package's init(). Safe to call more than once.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	initialized = true
}
