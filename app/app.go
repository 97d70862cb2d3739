package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/aep/entity"
	"github.com/AnkushinDaniil/aep/entity/constants"
	"github.com/AnkushinDaniil/aep/entity/format"
	"github.com/AnkushinDaniil/aep/entity/mode"
	"github.com/AnkushinDaniil/aep/entity/parameters"
)

const DefaultOutput = "aep_parameters.html"

type App struct {
	Constants constants.Constants
	Format    format.Format
	Mode      mode.Mode
	Output    string
	Stdout    io.Writer
}

func New(k constants.Constants, f format.Format, m mode.Mode, output string, stdout io.Writer) *App {
	if output == "" {
		output = DefaultOutput
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &App{
		Constants: k,
		Format:    f,
		Mode:      m,
		Output:    output,
		Stdout:    stdout,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"format": a.Format,
		"output": a.Output,
		"M_P":    a.Constants.MP,
		"c":      a.Constants.C,
		"hbar":   a.Constants.Hbar,
		"a0":     a.Constants.A0,
	}).Debug("App started")

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to start determination: %w", err)
	}

	var progress io.Writer
	if a.Format != format.JSON && a.Mode == mode.Full {
		progress = a.Stdout
	}

	params, err := entity.Determine(a.Constants, progress)
	if err != nil {
		return fmt.Errorf("failed to determine parameters: %w", err)
	}

	switch a.Format {
	case format.JSON:
		if err := writeJSON(a.Stdout, params); err != nil {
			return fmt.Errorf("failed to write json: %w", err)
		}
	case format.HTML:
		if err := writeReport(a.Stdout, params, progress != nil); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if err := a.saveChart(params); err != nil {
			return err
		}
	default:
		if err := writeReport(a.Stdout, params, progress != nil); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func (a *App) saveChart(params parameters.Parameters) error {
	bar := createChart(params)
	log.Info("Chart created")

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	log.WithFields(log.Fields{
		"time": time.Since(renderTime),
		"path": a.Output,
	}).Info("Chart rendered and saved")

	return nil
}
