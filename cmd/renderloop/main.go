// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command renderloop renders an animated skeleton through an EGL render
// loop on the software driver and writes the last frame to a PNG file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/spf13/cobra"

	"github.com/gogpu/renderloop"
	"github.com/gogpu/renderloop/egl"
	"github.com/gogpu/renderloop/skeleton"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "renderloop",
		Short:   "Drive an animated skeleton through an EGL render loop",
		Version: version,
	}
	root.AddCommand(
		runCmd(),
		driversCmd(),
		initCmd(),
	)
	return root
}

func runCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render a scene for a while, then destroy the surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.verbose {
				renderloop.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res, err := runScene(ctx, o)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), o, res)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "scene TOML file (default: built-in figure)")
	f.DurationVar(&o.duration, "duration", 3*time.Second, "how long to render before destroying the surface")
	f.StringVar(&o.out, "out", "frame.png", "PNG file for the last presented frame (empty to skip)")
	f.Float64Var(&o.scale, "scale", 1, "scale factor applied to the written frame")
	f.IntVar(&o.width, "width", 320, "surface width in pixels")
	f.IntVar(&o.height, "height", 240, "surface height in pixels")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log render loop events to stderr")
	return cmd
}

func driversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List registered EGL drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			printDrivers(cmd.OutOrStdout())
			return nil
		},
	}
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default " + skeleton.DefaultFileName,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path, err := skeleton.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func printDrivers(w io.Writer) {
	names := egl.List()
	if len(names) == 0 {
		fmt.Fprintln(w, "No EGL drivers registered.")
		return
	}
	for _, name := range names {
		entry, ok := egl.Get(name)
		if !ok {
			continue
		}
		status := "available"
		if !entry.Available() {
			status = "unavailable"
		}
		fmt.Fprintf(w, "%-10s priority %3d  %s\n", entry.Name, entry.Priority, status)
		if !entry.Available() {
			continue
		}
		drv, err := entry.Factory()
		if err != nil {
			fmt.Fprintf(w, "           open failed: %v\n", err)
			continue
		}
		if desc := describeAdapter(drv); desc != "" {
			fmt.Fprintf(w, "           %s\n", desc)
		}
	}
}

// describeAdapter reports the adapter and surface format of drivers that
// also act as a gpucontext device provider.
func describeAdapter(drv egl.Driver) string {
	p, ok := drv.(gpucontext.DeviceProvider)
	if !ok {
		return ""
	}
	info := p.AdapterInfo()
	return fmt.Sprintf("adapter %s (%s), surface format %s", info.Name, info.Type, p.SurfaceFormat())
}
