// Package generator runs the pipeline: read every input, parse and build each
// pack, synthesize its dispatch plan, render all classes, and only then write.
// A failure at any stage leaves the destination directory untouched.
package generator

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/packgen/apex"
	"github.com/teranos/packgen/config"
	"github.com/teranos/packgen/dispatch"
	"github.com/teranos/packgen/errors"
	"github.com/teranos/packgen/logger"
	"github.com/teranos/packgen/output"
	"github.com/teranos/packgen/pack"
	"github.com/teranos/packgen/signature"
	"github.com/teranos/packgen/source"
)

// Options control a single run.
type Options struct {
	// DryRun renders everything but writes nothing
	DryRun bool
	// Strict turns any shadowed overload into a fatal error
	Strict bool
}

// Result describes a completed run.
type Result struct {
	// RunID correlates the log lines of one run
	RunID       string
	Plans       []*dispatch.Plan
	Files       []output.File
	Ambiguities []dispatch.Ambiguity
	// DestDir is where Files were (or, on a dry run, would have been) written
	DestDir  string
	Written  bool
	Duration time.Duration
}

// Run executes the full pipeline for cfg.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	log := logger.LoggerFromContext(ctx)

	src, err := source.Load(cfg)
	if err != nil {
		return nil, err
	}
	log.Debugw("Sources loaded",
		"packs", len(src.Units),
		"overrides", len(src.Overrides),
		logger.FieldSrcDir, cfg.SrcDir)

	result, err := Render(ctx, cfg, src)
	if err != nil {
		return nil, err
	}
	result.RunID = runID
	result.DestDir = cfg.DestDir

	for _, a := range result.Ambiguities {
		log.Warnw("Shadowed overload",
			logger.FieldPack, a.Pack,
			logger.FieldName, a.Name,
			logger.FieldArity, a.Arity,
			logger.FieldWinner, a.Winner.String(),
			logger.FieldShadowed, a.Shadowed.String())
	}
	if opts.Strict {
		if err := dispatch.AmbiguityError(result.Ambiguities); err != nil {
			return nil, err
		}
	}

	if !opts.DryRun {
		if err := output.Write(cfg.DestDir, result.Files); err != nil {
			return nil, err
		}
		result.Written = true
	}

	result.Duration = time.Since(start)
	log.Infow("Generation complete",
		"packs", len(result.Plans),
		"files", len(result.Files),
		"written", result.Written,
		logger.FieldDuration, result.Duration)

	return result, nil
}

// Check renders cfg and compares the result against the destination directory.
func Check(ctx context.Context, cfg *config.Config) (*output.CompareResult, error) {
	src, err := source.Load(cfg)
	if err != nil {
		return nil, err
	}

	result, err := Render(ctx, cfg, src)
	if err != nil {
		return nil, err
	}

	return output.Compare(cfg.DestDir, result.Files)
}

// Render builds every pack from already-read sources and renders all enabled
// classes in memory.
//
// Packs are built in parallel. Each result is stored at its discovery index,
// so output order and the reported error do not depend on scheduling: when
// several units are malformed, the first one in discovery order is returned.
func Render(ctx context.Context, cfg *config.Config, src *source.Sources) (*Result, error) {
	log := logger.LoggerFromContext(ctx)

	namer := pack.Namer{Reserved: cfg.ReservedWords, Suffix: cfg.ReservedSuffix}
	synth := &dispatch.Synthesizer{
		UniversalType: cfg.UniversalType,
		Namer:         namer,
		Overrides:     src.Overrides,
		Log:           log,
	}
	syntax := signature.Syntax{
		ConstructorPrefix: cfg.ConstructorPrefix,
		StaticPrefix:      cfg.StaticPrefix,
	}

	plans := make([]*dispatch.Plan, len(src.Units))
	errs := make([]error, len(src.Units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(cfg))

	for i, unit := range src.Units {
		i, unit := i, unit
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			methods, err := signature.ParseUnit(unit.FileName, unit.Content, syntax)
			if err != nil {
				errs[i] = err
				return nil
			}

			plans[i] = synth.Synthesize(pack.Build(unit.Pack, methods))
			log.Debugw("Pack built",
				logger.FieldPack, unit.Pack,
				logger.FieldMethods, len(methods),
				logger.FieldGroups, len(plans[i].Fragments))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "pack build interrupted")
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := &Result{Plans: plans}
	for _, plan := range plans {
		result.Ambiguities = append(result.Ambiguities, plan.Ambiguities...)
	}

	files, err := apex.Render(&apex.Model{
		ClassName:       cfg.ApexClassName,
		Comment:         cfg.Comment,
		Meta:            src.Meta,
		Namer:           namer,
		Plans:           plans,
		GeneratePackage: cfg.GeneratePackage,
		GenerateTest:    cfg.GenerateTest,
		SkipTests:       cfg.SkipTests,
	})
	if err != nil {
		return nil, err
	}
	result.Files = files

	return result, nil
}

func workers(cfg *config.Config) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return runtime.NumCPU()
}
