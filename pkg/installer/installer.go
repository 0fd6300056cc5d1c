// Package installer executes a resolved stack's install plan through
// the system package manager, driving the display layer's progress
// widgets while it works.
package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexlinux/cortex/pkg/display"
	"github.com/cortexlinux/cortex/pkg/errors"
	"github.com/cortexlinux/cortex/pkg/logging"
	"github.com/cortexlinux/cortex/pkg/stacks"
)

// Installer installs stack package plans via apt.
type Installer struct {
	runner     Runner
	display    *display.Display
	aptCommand string
	dryRun     bool
}

// Result summarizes an install run.
type Result struct {
	Installed []string
	Failed    []string
	Duration  time.Duration
	DryRun    bool
}

// Options configures an Installer.
type Options struct {
	Runner     Runner
	Display    *display.Display
	AptCommand string
	DryRun     bool
}

// New creates an Installer. A nil runner defaults to executing on the
// host; an empty apt command defaults to apt-get.
func New(opts Options) *Installer {
	runner := opts.Runner
	if runner == nil {
		runner = &ExecRunner{}
	}
	aptCommand := opts.AptCommand
	if aptCommand == "" {
		aptCommand = "apt-get"
	}
	return &Installer{
		runner:     runner,
		display:    opts.Display,
		aptCommand: aptCommand,
		dryRun:     opts.DryRun,
	}
}

// Install applies the stack's package plan. Individual package
// failures do not abort the run; they are collected and reported as a
// single ErrInstallFailed at the end. A dry run renders the plan and
// stops.
func (ins *Installer) Install(ctx context.Context, stack stacks.Stack) (*Result, error) {
	logger := logging.GetLogger("installer")
	start := time.Now()

	result := &Result{DryRun: ins.dryRun}

	if len(stack.Packages) == 0 {
		ins.display.Info(fmt.Sprintf("Stack '%s' has no packages, nothing to install", stack.ID))
		return result, nil
	}

	plan := make([]display.PackageAction, 0, len(stack.Packages))
	for _, pkg := range stack.Packages {
		plan = append(plan, display.PackageAction{Name: pkg, Action: "Install"})
	}
	ins.display.PackageTable(fmt.Sprintf("Installation Plan: %s", stack.Name), plan)

	if ins.dryRun {
		ins.display.Info("Dry run - no changes were made")
		return result, nil
	}

	steps := make([]string, 0, len(stack.Packages)+1)
	const updateStep = "Updating package lists"
	steps = append(steps, updateStep)
	for _, pkg := range stack.Packages {
		steps = append(steps, "Installing "+pkg)
	}

	tracker := ins.display.NewStepTracker(fmt.Sprintf("Installing %s", stack.Name), steps)
	defer tracker.Stop()

	tracker.Start(updateStep)
	if err := ins.runner.Run(ctx, ins.aptCommand, "update"); err != nil {
		// A stale index is not fatal; installs may still succeed.
		tracker.Fail(updateStep)
		logger.Warn().Err(err).Msg("Package list update failed, continuing")
	} else {
		tracker.Complete(updateStep)
	}

	for _, pkg := range stack.Packages {
		step := "Installing " + pkg
		if ctx.Err() != nil {
			tracker.Skip(step)
			continue
		}

		tracker.Start(step)
		if err := ins.runner.Run(ctx, ins.aptCommand, "install", "-y", pkg); err != nil {
			tracker.Fail(step)
			result.Failed = append(result.Failed, pkg)
			logger.Error().Err(err).Str("package", pkg).Msg("Package install failed")
			continue
		}
		tracker.Complete(step)
		result.Installed = append(result.Installed, pkg)
	}

	result.Duration = time.Since(start)
	logger.Info().
		Int("installed", len(result.Installed)).
		Int("failed", len(result.Failed)).
		Dur("duration", result.Duration).
		Msg("Install run finished")

	if len(result.Failed) > 0 {
		return result, errors.Newf(errors.ErrInstallFailed,
			"%d of %d packages failed to install", len(result.Failed), len(stack.Packages)).
			WithDetail("failed", result.Failed)
	}
	return result, nil
}
