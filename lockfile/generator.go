// Copyright 2026 The Fuchsia Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lockfile pins the root repository and every submodule declared in
// its .gitmodules file to the commit currently checked out.
package lockfile

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"go.fuchsia.dev/submodlock/gitmodules"
	"go.fuchsia.dev/submodlock/gitutil"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultRootIdentifier names the root repository in the lockfile.
	DefaultRootIdentifier = "github.com/localhots/satan"

	// DefaultPrefixLen is the length of the "vendor/" directory every
	// submodule is declared under.
	DefaultPrefixLen = len("vendor/")
)

// Config controls a Generator.
type Config struct {
	// RootIdentifier is printed for the root repository.
	RootIdentifier string
	// PrefixLen is the number of leading bytes removed from a declared
	// submodule path to form its identifier.
	PrefixLen int
	// RootDir is the root repository checkout. Declared paths are relative
	// to it.
	RootDir string
	// Declarations is the declaration file. Defaults to .gitmodules in
	// RootDir.
	Declarations string
	// Jobs is the number of git invocations allowed to run at once.
	Jobs int
	// Timeout bounds each git invocation. Zero means no limit.
	Timeout time.Duration
}

// DefaultConfig returns the configuration matching the vendor/ submodule
// layout, run from the current directory.
func DefaultConfig() Config {
	return Config{
		RootIdentifier: DefaultRootIdentifier,
		PrefixLen:      DefaultPrefixLen,
		RootDir:        ".",
		Jobs:           1,
	}
}

// DeclarationsFile returns the declaration file c reads.
func (c Config) DeclarationsFile() string {
	if c.Declarations != "" {
		return c.Declarations
	}
	return filepath.Join(c.RootDir, gitmodules.DefaultFile)
}

// Resolver reports the commit checked out in a directory.
type Resolver interface {
	Resolve(ctx context.Context, dir string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, dir string) (string, error)

func (f ResolverFunc) Resolve(ctx context.Context, dir string) (string, error) {
	return f(ctx, dir)
}

// GitResolver resolves HEAD with git. dir must be the top level of its own
// work tree; an empty or plain directory inside the root checkout is an
// error rather than the root's HEAD.
type GitResolver struct {
	Logger  hclog.Logger
	Timeout time.Duration
}

func (r GitResolver) Resolve(ctx context.Context, dir string) (string, error) {
	scm := gitutil.New(r.Logger, gitutil.RootDirOpt(dir), gitutil.TimeoutOpt(r.Timeout))
	return scm.CheckoutRevision(ctx)
}

// Generator produces lock entries.
type Generator struct {
	config   Config
	resolver Resolver
	logger   hclog.Logger
}

// NewGenerator returns a Generator for config. A nil resolver resolves with
// git.
func NewGenerator(logger hclog.Logger, config Config, resolver Resolver) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if config.RootDir == "" {
		config.RootDir = "."
	}
	if config.Jobs < 1 {
		config.Jobs = 1
	}
	if resolver == nil {
		resolver = GitResolver{Logger: logger, Timeout: config.Timeout}
	}
	return &Generator{
		config:   config,
		resolver: resolver,
		logger:   logger,
	}
}

// Declarations parses the declaration file.
func (g *Generator) Declarations() ([]gitmodules.Entry, error) {
	file := g.config.DeclarationsFile()
	entries, err := gitmodules.ParseFile(file)
	if err != nil {
		return nil, &ParseError{Path: file, Err: err}
	}
	g.logger.Debug("parsed submodule declarations", "file", file, "paths", gitmodules.Paths(entries))
	return entries, nil
}

type target struct {
	path string
	dir  string
	repo string
}

func (g *Generator) targets(decls []gitmodules.Entry) []target {
	targets := make([]target, 0, len(decls)+1)
	targets = append(targets, target{
		path: g.config.RootDir,
		dir:  g.config.RootDir,
		repo: g.config.RootIdentifier,
	})
	for _, d := range decls {
		repo := RepoIdentifier(d.Path, g.config.PrefixLen)
		if repo == "" {
			g.logger.Warn("submodule path is not longer than the prefix, identifier is empty",
				"path", d.Path, "line", d.Line, "prefix_len", g.config.PrefixLen)
		}
		targets = append(targets, target{
			path: d.Path,
			dir:  filepath.Join(g.config.RootDir, d.Path),
			repo: repo,
		})
	}
	return targets
}

// Entries returns the root entry followed by one entry per declared
// submodule, in declaration order. On failure it returns the entries that
// precede the first path that could not be resolved, along with the error.
func (g *Generator) Entries(ctx context.Context) ([]Entry, error) {
	decls, err := g.Declarations()
	if err != nil {
		return nil, err
	}
	return g.resolve(ctx, g.targets(decls))
}

// resolve looks up every target, at most Jobs at a time. Once a target
// fails, targets after it in declaration order are skipped; the earliest
// failure is the one reported.
func (g *Generator) resolve(ctx context.Context, targets []target) ([]Entry, error) {
	revisions := make([]string, len(targets))
	errs := make([]error, len(targets))

	var (
		mu     sync.Mutex
		failed = len(targets)
	)
	fail := func(i int, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs[i] = err
		if i < failed {
			failed = i
		}
	}

	var eg errgroup.Group
	eg.SetLimit(g.config.Jobs)
	for i, t := range targets {
		i, t := i, t
		eg.Go(func() error {
			mu.Lock()
			skip := i > failed
			mu.Unlock()
			if skip {
				return nil
			}
			if err := ctx.Err(); err != nil {
				fail(i, &ResolutionError{Path: t.path, Err: err})
				return nil
			}
			rev, err := g.resolver.Resolve(ctx, t.dir)
			if err != nil {
				fail(i, &ResolutionError{Path: t.path, Err: err})
				return nil
			}
			g.logger.Debug("resolved revision", "repo", t.repo, "revision", rev)
			revisions[i] = rev
			return nil
		})
	}
	eg.Wait()

	entries := make([]Entry, 0, failed)
	for i := 0; i < failed; i++ {
		entries = append(entries, Entry{Repo: targets[i].repo, Revision: revisions[i]})
	}
	if failed < len(targets) {
		return entries, errs[failed]
	}
	return entries, nil
}

// Run writes the lock entries to w. Entries are written in order up to the
// first failure; w is flushed only when every entry resolved.
func (g *Generator) Run(ctx context.Context, w Writer) error {
	entries, err := g.Entries(ctx)
	for _, e := range entries {
		if werr := w.Add(e); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	return w.Flush()
}
