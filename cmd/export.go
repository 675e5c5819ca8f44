/*
Copyright © 2025 Slidegen Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/slidedeck/slidegen"
	"github.com/slidedeck/slidegen/config"
	"github.com/spf13/cobra"
)

var (
	outDir   string
	format   string
	layout   string
	theme    string
	title    string
	fontFile string
)

var exportCmd = &cobra.Command{
	Use:   "export DECK_FILE",
	Short: "export a deck file",
	Long:  `export a deck file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		job, err := loadJob(args[0])
		if err != nil {
			return err
		}
		if format != "" {
			job.Format = slidegen.Format(format)
		}
		if job.Format == "" {
			job.Format = slidegen.FormatPDF
		}
		if layout != "" {
			job.LayoutPreference = layout
		}
		if theme != "" {
			job.Theme = slidegen.Theme(theme)
		}
		if title != "" {
			job.Title = title
		}

		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		opts, err := generatorOptions(cfg)
		if err != nil {
			return err
		}
		opts = append(opts, slidegen.WithLogger(logger))

		g, err := slidegen.New(opts...)
		if err != nil {
			return err
		}
		files, err := g.Export(ctx, job, outDir)
		if err != nil {
			return err
		}
		for _, f := range files {
			cmd.Println(f)
		}
		return nil
	},
}

// loadJob reads a deck file. YAML files are converted to JSON first so
// both formats share the same field names.
func loadJob(path string) (slidegen.ExportJob, error) {
	var job slidegen.ExportJob
	b, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("failed to read deck file %s: %w", path, err)
	}
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		b, err = yaml.YAMLToJSON(b)
		if err != nil {
			return job, fmt.Errorf("failed to parse deck file %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(b, &job); err != nil {
		return job, fmt.Errorf("failed to parse deck file %s: %w", path, err)
	}
	return job, nil
}

// generatorOptions maps the loaded configuration onto generator
// options.
func generatorOptions(cfg *config.Config) ([]slidegen.Option, error) {
	analyzer := slidegen.NewAnalyzer()
	if d := cfg.Density; d != nil {
		if d.SplitScore != nil {
			analyzer.SplitScore = *d.SplitScore
		}
		if d.SplitBullets != nil {
			analyzer.SplitBullets = *d.SplitBullets
		}
	}
	opts := []slidegen.Option{slidegen.WithAnalyzer(analyzer)}

	if s := cfg.Split; s != nil {
		maxBullets := slidegen.DefaultMaxBullets
		maxChars := slidegen.DefaultMaxChars
		if s.MaxBullets != nil {
			maxBullets = *s.MaxBullets
		}
		if s.MaxChars != nil {
			maxChars = *s.MaxChars
		}
		opts = append(opts, slidegen.WithSplitLimits(maxBullets, maxChars))
	}
	if fontFile != "" {
		opts = append(opts, slidegen.WithFontFile(fontFile))
	} else if cfg.FontFile != "" {
		opts = append(opts, slidegen.WithFontFile(cfg.FontFile))
	}
	if cfg.ImageDelayMs != nil {
		opts = append(opts, slidegen.WithImageDelay(time.Duration(*cfg.ImageDelayMs)*time.Millisecond))
	}

	conditions, err := config.CompileConditions(cfg.Defaults)
	if err != nil {
		return nil, err
	}
	if len(conditions) > 0 {
		opts = append(opts, slidegen.WithLayoutRule(layoutRule(conditions, analyzer)))
	}
	return opts, nil
}

// layoutRule adapts the compiled config conditions into a per-slide
// override. The first matching condition wins; a condition naming an
// unknown layout is treated as no match.
func layoutRule(conditions []*config.Condition, analyzer *slidegen.Analyzer) slidegen.LayoutRule {
	return func(slide *slidegen.Slide, index int) (slidegen.Archetype, bool, bool) {
		d := analyzer.Measure(slide.Content)
		vars := config.Vars{
			Index:         index,
			Title:         slide.Title,
			HasImage:      slide.ImageURL != "",
			ContentLength: len(slide.Content),
			Bullets:       d.BulletCount,
		}
		for _, c := range conditions {
			matched, err := c.Match(vars)
			if err != nil || !matched {
				continue
			}
			if c.Skip() {
				return "", true, true
			}
			if a, ok := slidegen.ParseArchetype(c.Layout()); ok {
				return a, false, true
			}
		}
		return "", false, false
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "output directory")
	exportCmd.Flags().StringVarP(&format, "format", "f", "", "output format (pdf, images, ppt)")
	exportCmd.Flags().StringVarP(&layout, "layout", "l", "", "layout preference (auto or a layout name)")
	exportCmd.Flags().StringVarP(&theme, "theme", "", "", "theme (light, dark)")
	exportCmd.Flags().StringVarP(&title, "title", "", "", "deck title override")
	exportCmd.Flags().StringVarP(&fontFile, "font-file", "", "", "TrueType font file for the images format")
}
