package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-tagcloud/pkg/cloud"
	"github.com/goliatone/go-tagcloud/pkg/config"
)

type renderOptions struct {
	configPath   string
	tagsPath     string
	outputPath   string
	templatesDir string
	seed         uint64
	noSanitize   bool
}

func newRenderCmd(newLogger func(io.Writer) *slog.Logger) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a tag cloud from a tag file",
		Example: `  tagcloud render --tags tags.yaml
  tagcloud render --config cloud.yaml --tags tags.json --output cloud.html --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr())
			return runRender(cmd.OutOrStdout(), logger, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON configuration file")
	flags.StringVarP(&opts.tagsPath, "tags", "t", "", "YAML or JSON tag file")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "output file (stdout if empty)")
	flags.StringVar(&opts.templatesDir, "templates", "", "directory with tag.tmpl and cloud.tmpl overrides")
	flags.Uint64Var(&opts.seed, "seed", 0, "shuffle seed for reproducible output (0 picks a random order)")
	flags.BoolVar(&opts.noSanitize, "no-sanitize", false, "skip HTML sanitizing of the rendered fragment")
	_ = cmd.MarkFlagRequired("tags")

	return cmd
}

func runRender(stdout io.Writer, logger *slog.Logger, opts renderOptions) error {
	cfg := cloud.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("loaded config", "path", opts.configPath, "min", cfg.MinFontSize, "max", cfg.MaxFontSize, "unit", cfg.FontUnit)
	}

	tags, err := config.LoadTags(opts.tagsPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded tags", "path", opts.tagsPath, "count", len(tags))

	var cloudOpts []cloud.Option
	if opts.seed != 0 {
		cloudOpts = append(cloudOpts, cloud.WithShuffler(cloud.SeededShuffler(opts.seed)))
	}
	if !opts.noSanitize {
		cloudOpts = append(cloudOpts, cloud.WithSanitizer(cloud.DefaultPolicy()))
	}
	if opts.templatesDir != "" {
		cloudOpts = append(cloudOpts, cloud.WithTemplatesDir(opts.templatesDir))
	}

	c, err := cloud.New(cfg, cloudOpts...)
	if err != nil {
		return err
	}
	out, err := c.Render(tags...)
	if err != nil {
		return err
	}

	if stats, err := c.Stats(); err == nil {
		logger.Debug("rendered cloud", "tags", stats.Len, "min", stats.Min, "max", stats.Max, "sum", stats.Sum)
	}

	if opts.outputPath == "" {
		_, err := fmt.Fprintln(stdout, out)
		return err
	}
	if err := atomic.WriteFile(opts.outputPath, strings.NewReader(out)); err != nil {
		return fmt.Errorf("write %s: %w", opts.outputPath, err)
	}
	logger.Info("cloud written", "path", opts.outputPath, "tags", len(tags))
	return nil
}
