package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sofmeright/buildmatrix/src/ctxlog"
	"github.com/sofmeright/buildmatrix/src/gitver"
	"github.com/sofmeright/buildmatrix/src/matrix"
	"github.com/sofmeright/buildmatrix/src/output"
)

var manifestOut string

var manifestCmd = &cobra.Command{
	Use:   "manifest [repo-dir]",
	Short: "Write the sweep result as a manifest stamped with the source revision",
	Long: `Resolve every configured host and write the jobs to a manifest file.

The manifest records the commit, branch and tag of the repository it was
generated from. Outside a git repository the stamp is left empty.
Use --out - to write to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat()
		if err != nil {
			return err
		}
		if format == matrix.FormatText && formatFlag == "" {
			format = matrix.FormatYAML
		}

		repoDir := "."
		if len(args) > 0 {
			repoDir = args[0]
		}

		stderr := cmd.ErrOrStderr()
		output.SectionStartCollapsed(stderr, "bm_resolve", "Resolving hosts")
		plans, err := sweepHosts(ctxlog.WithLogger(cmd.Context(), slog.Default()))
		output.SectionEnd(stderr, "bm_resolve")
		if err != nil {
			return err
		}
		m := newManifest(plans)

		stamp := "unstamped"
		info, err := gitver.Detect(repoDir)
		switch {
		case errors.Is(err, gitver.ErrNotRepository):
			slog.Warn("not a git repository, manifest is unstamped", "dir", repoDir)
		case err != nil:
			return fmt.Errorf("detecting revision: %w", err)
		default:
			m.Commit = info.SHA
			m.Branch = info.Branch
			m.Tag = info.Tag
			m.Dirty = info.Dirty
			stamp = info.Version()
			if info.Dirty {
				slog.Warn("worktree has uncommitted changes", "commit", info.SHA)
			}
		}
		output.ContextBlock(stderr, []output.KV{
			{Key: "Target", Value: target.Name()},
			{Key: "Hosts", Value: strconv.Itoa(len(plans))},
			{Key: "Commit", Value: valueOr(m.Commit, "-")},
			{Key: "Branch", Value: valueOr(m.Branch, "-")},
			{Key: "Source", Value: stamp},
			{Key: "Format", Value: string(format)},
		})
		dump(cmd, m)

		if manifestOut == "-" {
			return matrix.WriteManifest(cmd.OutOrStdout(), m, format)
		}

		path := manifestOut
		if path == "" {
			path = filepath.Join(cfg.Output.Dir, target.Name()+format.Ext())
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating manifest dir: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating manifest: %w", err)
		}
		if err := matrix.WriteManifest(f, m, format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "manifest: %s (%d jobs)\n", path, len(m.Jobs()))
		return nil
	},
}

func init() {
	manifestCmd.Flags().StringVarP(&manifestOut, "out", "o", "", "output file, - for stdout (default: <output.dir>/<target>.<ext>)")
	manifestCmd.Flags().StringVar(&formatFlag, "format", "", "output format: yaml, toml, json, text (default: from config, text becomes yaml)")

	rootCmd.AddCommand(manifestCmd)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
