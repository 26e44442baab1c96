package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/getmockd/cuid/internal/cliconfig"
	"github.com/getmockd/cuid/pkg/cli/internal/output"
	"github.com/getmockd/cuid/pkg/cuid"
)

// ValidateResult is one line of validate output.
type ValidateResult struct {
	ID    string `json:"id"`
	Valid bool   `json:"valid"`
}

// ValidateOutput is the --json form of validate.
type ValidateOutput struct {
	Version string           `json:"version"`
	Slug    bool             `json:"slug,omitempty"`
	Results []ValidateResult `json:"results"`
	Invalid int              `json:"invalid"`
}

type validateOptions struct {
	v2   bool
	slug bool
	max  int
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <id>...",
		Short: "Check the shape of identifiers",
		Long: `Check that each identifier has the shape of a V1 identifier (or a V2
identifier with --v2, or a slug with --slug).

Validation is syntactic only: it cannot tell whether an identifier was
actually generated by cuid. The command fails if any identifier is invalid.`,
		Example: `  cuid validate cjld2cjxh0000qzrmn831i7rn
  cuid validate --v2 --max 32 tz4a98xxat96iws9zmbrgj3a`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *root.cfg
			if cmd.Flags().Changed("v2") {
				cfg.Version = cliconfig.VersionV1
				if opts.v2 {
					cfg.Version = cliconfig.VersionV2
				}
			}
			if cmd.Flags().Changed("slug") {
				cfg.Slug = opts.slug
			}
			if cfg.Slug && opts.max > 0 {
				output.Warn(cmd.ErrOrStderr(), "--max is ignored with --slug")
			}
			return runValidate(cmd.OutOrStdout(), &cfg, opts.max, args)
		},
	}

	cmd.Flags().BoolVar(&opts.v2, "v2", false, "Validate V2 identifiers")
	cmd.Flags().BoolVar(&opts.slug, "slug", false, "Validate slugs")
	cmd.Flags().IntVar(&opts.max, "max", 0, "Maximum accepted length (default 26 for V1, 100 for V2)")
	return cmd
}

func runValidate(w io.Writer, cfg *cliconfig.CLIConfig, maxLength int, ids []string) error {
	check := validator(cfg, maxLength)

	out := ValidateOutput{
		Version: cfg.Version,
		Slug:    cfg.Slug,
		Results: make([]ValidateResult, 0, len(ids)),
	}
	for _, id := range ids {
		ok := check(id)
		if !ok {
			out.Invalid++
		}
		out.Results = append(out.Results, ValidateResult{ID: id, Valid: ok})
	}

	err := printResult(w, cfg.JSON, out, func() error {
		tw := output.Table(w)
		for _, r := range out.Results {
			status := "valid"
			if !r.Valid {
				status = "invalid"
			}
			fmt.Fprintf(tw, "%s\t%s\n", r.ID, status)
		}
		return tw.Flush()
	})
	if err != nil {
		return err
	}

	if out.Invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidID, out.Invalid, len(ids))
	}
	return nil
}

// validator picks the check for cfg. A positive maxLength overrides the
// default upper bound; it does not apply to slugs.
func validator(cfg *cliconfig.CLIConfig, maxLength int) func(string) bool {
	switch {
	case cfg.IsV2() && cfg.Slug:
		return cuid.IsV2Slug
	case cfg.Slug:
		return cuid.IsV1Slug
	case cfg.IsV2() && maxLength > 0:
		return func(s string) bool { return cuid.IsV2Max(s, maxLength) }
	case cfg.IsV2():
		return cuid.IsV2
	case maxLength > 0:
		return func(s string) bool { return cuid.IsV1Max(s, maxLength) }
	default:
		return cuid.IsV1
	}
}
