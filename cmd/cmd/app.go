// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ostafen/sniff/internal/config"
	"github.com/ostafen/sniff/internal/logger"
	"github.com/ostafen/sniff/internal/plugin"
	"github.com/ostafen/sniff/internal/signature"
	"github.com/ostafen/sniff/pkg/magic"
)

const (
	ExitUnknown    = 1
	ExitUnreadable = 2
)

// exitError carries the process exit code of a failed command. err may be
// nil when the command already reported the failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// ExitCode returns the exit code for an error returned by Execute.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

// ErrorMessage returns the message to print for err, or "" when the command
// already reported it.
func ErrorMessage(err error) string {
	var ee *exitError
	if errors.As(err, &ee) && ee.err == nil {
		return ""
	}
	return err.Error()
}

// app holds what every command needs: configuration, logger and a matcher
// carrying the user's custom types.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	logFile   *os.File
	matcher   *magic.Matcher
	readLimit int
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	overrideConfig(cmd, cfg)

	readLimit, err := cfg.ReadLimitBytes()
	if err != nil {
		return nil, err
	}

	log, logFile, err := logger.Setup(cfg.LogFile, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:       cfg,
		logger:    log,
		logFile:   logFile,
		readLimit: readLimit,
		matcher: magic.New(
			magic.WithLogger(log),
			magic.WithReadLimit(readLimit),
		),
	}

	if err := a.loadCustomTypes(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func overrideConfig(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("signatures") {
		cfg.Signatures, _ = flags.GetString("signatures")
	}
	if flags.Changed("plugins") {
		plugins, _ := flags.GetStringSlice("plugins")
		cfg.Plugins = strings.Join(plugins, ",")
	}
	if flags.Changed("read-limit") {
		cfg.ReadLimit, _ = flags.GetString("read-limit")
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
}

func (a *app) loadCustomTypes() error {
	if a.cfg.Signatures != "" {
		n, err := signature.Load(a.matcher, a.cfg.Signatures)
		if err != nil {
			return err
		}
		a.logger.Info("loaded signatures", "file", a.cfg.Signatures, "count", n)
	}

	pluginPaths, err := plugin.List(a.cfg.PluginPaths())
	if err != nil {
		return err
	}
	if err := plugin.Load(a.matcher, pluginPaths...); err != nil {
		return err
	}
	if len(pluginPaths) > 0 {
		a.logger.Info("loaded plugins", "count", len(pluginPaths))
	}
	return nil
}

func (a *app) Close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
