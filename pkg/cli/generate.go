package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/getmockd/cuid/internal/cliconfig"
	"github.com/getmockd/cuid/pkg/cuid"
	"github.com/getmockd/cuid/pkg/logging"
)

// GenerateOutput is the --json form of the default command.
type GenerateOutput struct {
	Version string   `json:"version"`
	Slug    bool     `json:"slug,omitempty"`
	Length  int      `json:"length"`
	IDs     []string `json:"ids"`
}

// runGenerate prints cfg.Count identifiers to w.
func runGenerate(w io.Writer, cfg *cliconfig.CLIConfig, log *slog.Logger) error {
	next, length, err := newIDSource(cfg, logging.Component(log, "cuid"))
	if err != nil {
		return err
	}

	if cfg.JSON {
		out := GenerateOutput{
			Version: cfg.Version,
			Slug:    cfg.Slug,
			Length:  length,
			IDs:     make([]string, 0, cfg.Count),
		}
		for i := 0; i < cfg.Count; i++ {
			id, err := next()
			if err != nil {
				return err
			}
			out.IDs = append(out.IDs, id)
		}
		return printResult(w, true, out, nil)
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < cfg.Count; i++ {
		id, err := next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, id); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// newIDSource returns the generation function selected by cfg and the
// length of its identifiers. V1 identifiers are reported at their current
// length.
func newIDSource(cfg *cliconfig.CLIConfig, log *slog.Logger) (func() (string, error), int, error) {
	if !cfg.IsV2() {
		// The counter starts at a random position, so one-off runs do not
		// all begin at the same value.
		g := cuid.NewV1Generator(cuid.WithLogger(log))
		if cfg.Slug {
			return g.Slug, cuid.SlugLength, nil
		}
		return g.New, cuid.V1Length, nil
	}

	length := cfg.Length
	switch {
	case cfg.Slug:
		length = cuid.SlugLength
	case length == 0:
		length = cuid.DefaultLength
	}

	g, err := cuid.NewV2Generator(cuid.WithLength(length), cuid.WithLogger(log))
	if err != nil {
		return nil, 0, err
	}
	// Single goroutine: keep one scope instead of going through the pool.
	return g.NewScope().New, length, nil
}
