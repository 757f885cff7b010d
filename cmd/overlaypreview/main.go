// Package main renders the timestamp overlay on synthetic frames of several
// widths so the banner and text can be checked by eye.
package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/user/chronocam/pkg/adapters/ggrenderer"
	"github.com/user/chronocam/pkg/adapters/logger"
	"github.com/user/chronocam/pkg/adapters/osfilesystem"
	"github.com/user/chronocam/pkg/adapters/patterncamera"
	"github.com/user/chronocam/pkg/pipeline"
	"github.com/user/chronocam/pkg/ports"
	"github.com/user/chronocam/pkg/stages/annotate"
)

type CLI struct {
	Out     string `short:"o" default:"tmp" help:"Directory for preview images."`
	Widths  []int  `short:"w" default:"320,640,1280,1920" help:"Frame widths to render."`
	Height  int    `default:"240" help:"Frame height."`
	Verbose bool   `short:"v" help:"Log draw calls."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli, kong.Name("overlaypreview"))
	kctx.FatalIfErrorf(run(cli))
}

func run(cli CLI) error {
	level := ports.LevelInfo
	if cli.Verbose {
		level = ports.LevelDebug
	}
	log := logger.NewConsole(level)

	fs := osfilesystem.New()
	if err := fs.MkdirAll(cli.Out); err != nil {
		return err
	}

	renderer := ggrenderer.New()
	stage := annotate.NewStage(renderer, log)
	ts := pipeline.NewTimestamp(time.Now())
	ctx := context.Background()

	for _, width := range cli.Widths {
		cam := patterncamera.New(renderer, width, cli.Height)
		if err := cam.Open(ctx, 0); err != nil {
			return err
		}
		frame, err := cam.ReadFrame(ctx)
		cam.Close()
		if err != nil {
			return err
		}

		if _, err := stage.Execute(ctx, pipeline.AnnotateInput{
			Frame:       frame,
			SourceWidth: cam.FrameWidth(),
			Timestamp:   ts,
		}); err != nil {
			return err
		}

		data, err := renderer.EncodeImage(frame.Image, ports.FormatPNG, 0)
		if err != nil {
			return err
		}
		filename := filepath.Join(cli.Out, fmt.Sprintf("overlay_%d.png", width))
		if err := fs.WriteFile(filename, data); err != nil {
			return err
		}

		log.Info("Generated %s (%dx%d)", filename, frame.Width(), frame.Height())
	}
	return nil
}
