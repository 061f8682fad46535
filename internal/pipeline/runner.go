package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/pngjpg/internal/check"
	"github.com/backmassage/pngjpg/internal/config"
	"github.com/backmassage/pngjpg/internal/display"
	"github.com/backmassage/pngjpg/internal/logging"
	"github.com/backmassage/pngjpg/internal/naming"
	"github.com/backmassage/pngjpg/internal/rewrite"
	"github.com/backmassage/pngjpg/internal/term"
	"github.com/backmassage/pngjpg/internal/transcode"
)

// convertReport is what convertStage hands back to Run.
type convertReport struct {
	items      []ItemResult
	pairs      []naming.Pair // successful (or simulated) conversions, in order
	collisions int
}

type rewriteReport struct {
	candidates int
	items      []ItemResult
}

type removeReport struct {
	items []ItemResult
}

// Run is the top-level batch entry point. layout must come from
// [check.ValidateLayout]. It converts every PNG under the images directory,
// rewrites references in text files under the root, optionally removes the
// converted PNGs, and prints a summary. Per-file failures are logged and
// counted; the only error returned is a failed image discovery.
func Run(cfg *config.Config, layout check.Layout, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	logBatchHeader(cfg, layout, log)

	images, err := FindImages(layout.Images)
	if err != nil {
		return stats, fmt.Errorf("discover images: %w", err)
	}
	stats.Found = len(images)
	if len(images) == 0 {
		log.Warn("No PNG files found. Exiting.")
		return stats, nil
	}
	log.Info("Found %s", display.Plural(len(images), "PNG file"))
	log.Blank()

	if cfg.DryRun {
		printInventory(log, layout.Root, Inventory(images))
	}

	conv := convertStage(cfg, layout, log, images)
	stats.addConvert(conv)

	rw := rewriteStage(cfg, layout, log, conv.pairs)
	stats.addRewrite(rw)

	if cfg.RemovePNG && !cfg.DryRun {
		stats.addRemove(removeStage(layout, log, conv.pairs))
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// convertStage transcodes each image in order. In a dry run nothing is
// written; each image counts as a would-be conversion.
func convertStage(cfg *config.Config, layout check.Layout, log *logging.Logger, images []string) convertReport {
	log.Stage("Converting %s", display.Plural(len(images), "image"))

	var rep convertReport
	collisions := naming.NewCollisionDetector()
	opts := transcode.Options{Quality: cfg.Quality, Background: cfg.BackgroundColor()}

	for i, src := range images {
		rel := relPath(layout.Root, src)
		target := naming.JPEGPath(src)
		if owner, collided := collisions.Claim(src, target); collided {
			rep.collisions++
			log.Warn("%s and %s both map to %s; the later conversion wins",
				relPath(layout.Root, owner), rel, relPath(layout.Root, target))
		}

		if cfg.DryRun {
			log.Info("[%d/%d] [DRY RUN] Would convert %s -> %s", i+1, len(images), rel, filepath.Base(target))
			rep.items = append(rep.items, ItemResult{Path: src, Target: target, Outcome: OutcomeSimulated})
			rep.pairs = append(rep.pairs, naming.Pair{PNG: src, JPEG: target})
			continue
		}

		res, err := transcode.Transcode(src, opts)
		if err != nil {
			log.Error("[%d/%d] Failed to convert %s: %v", i+1, len(images), rel, err)
			rep.items = append(rep.items, failed(src, err))
			continue
		}

		log.Debug("  %s %dx%d, %s", res.Mode, res.Width, res.Height, display.FormatBytes(res.InputBytes))
		log.Success("[%d/%d] %s -> %s (%s, %s of original)", i+1, len(images), rel,
			filepath.Base(res.Target), display.FormatBytes(res.OutputBytes),
			display.FormatRatio(res.OutputBytes, res.InputBytes))
		rep.items = append(rep.items, ItemResult{
			Path:        src,
			Target:      res.Target,
			Outcome:     OutcomeConverted,
			InputBytes:  res.InputBytes,
			OutputBytes: res.OutputBytes,
		})
		rep.pairs = append(rep.pairs, naming.Pair{PNG: src, JPEG: res.Target})
	}
	log.Blank()
	return rep
}

// rewriteStage builds the replacement mapping from pairs and applies it to
// every text candidate under the root. It runs even when pairs is empty:
// the suffix patterns do not depend on the mapping.
func rewriteStage(cfg *config.Config, layout check.Layout, log *logging.Logger, pairs []naming.Pair) rewriteReport {
	var rep rewriteReport
	if len(pairs) == 0 {
		log.Warn("No images were converted; only suffix patterns will be rewritten")
	}

	mapping := naming.BuildMapping(layout.Root, pairs, cfg.StripPrefixes)
	for _, k := range mapping.Keys() {
		v, _ := mapping.Get(k)
		log.Debug("  map %s -> %s", k, v)
	}

	files, err := FindTextCandidates(layout.Root, DiscoverOptions{
		Extensions: cfg.Extensions,
		SkipDirs:   cfg.SkipDirs,
		Exclude:    cfg.Exclude,
	})
	if err != nil {
		log.Error("Failed to scan %s for text files: %v", layout.Root, err)
		return rep
	}
	rep.candidates = len(files)
	log.Stage("Updating references in %s (%d mapping entries)", display.Plural(len(files), "text file"), mapping.Len())

	bar := display.NewProgress(log.Writer(), len(files), "Scanning",
		!log.Verbose() && term.IsTerminal(log.Writer()))

	for _, path := range files {
		fr := rewrite.RewriteFile(path, mapping, cfg.DryRun)
		rel := relPath(layout.Root, path)
		switch {
		case fr.Err != nil:
			bar.Clear()
			log.Error("Failed to update %s: %v", rel, fr.Err)
			rep.items = append(rep.items, failed(path, fr.Err))
		case fr.Replacements > 0:
			bar.Clear()
			outcome := OutcomeUpdated
			if cfg.DryRun {
				outcome = OutcomeSimulated
				log.Info("[DRY RUN] Would update %s (%s)", rel, display.Plural(fr.Replacements, "reference"))
			} else {
				log.Success("Updated %s (%s)", rel, display.Plural(fr.Replacements, "reference"))
			}
			rep.items = append(rep.items, ItemResult{Path: path, Outcome: outcome, Replacements: fr.Replacements})
		default:
			log.Debug("  unchanged %s", rel)
			rep.items = append(rep.items, ItemResult{Path: path, Outcome: OutcomeUnchanged})
		}
		bar.Step()
	}
	bar.Finish()
	log.Blank()
	return rep
}

// removeStage deletes the source PNG of every successful conversion. PNGs
// whose conversion failed never reach this stage.
func removeStage(layout check.Layout, log *logging.Logger, pairs []naming.Pair) removeReport {
	var rep removeReport
	if len(pairs) == 0 {
		return rep
	}
	log.Stage("Removing %s", display.Plural(len(pairs), "converted PNG"))
	for _, p := range pairs {
		rel := relPath(layout.Root, p.PNG)
		if err := os.Remove(p.PNG); err != nil {
			log.Error("Failed to remove %s: %v", rel, err)
			rep.items = append(rep.items, failed(p.PNG, err))
			continue
		}
		log.Info("Removed %s", rel)
		rep.items = append(rep.items, ItemResult{Path: p.PNG, Outcome: OutcomeRemoved})
	}
	log.Blank()
	return rep
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, layout check.Layout, log *logging.Logger) {
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written or deleted")
	}
	log.Info("Blog directory: %s", layout.Root)
	log.Info("Images: %s", relPath(layout.Root, layout.Images))
	log.Info("JPEG quality: %d, background: %s", cfg.Quality, cfg.Background)
	log.Info("Text extensions: %s", strings.Join(cfg.Extensions, ", "))
	if len(cfg.Exclude) > 0 {
		log.Info("Excluding: %s", strings.Join(cfg.Exclude, ", "))
	}
	switch {
	case cfg.RemovePNG && cfg.DryRun:
		log.Info("PNG removal: skipped (dry run)")
	case cfg.RemovePNG:
		log.Info("PNG removal: enabled")
	}
	if cfg.ConfigFile != "" {
		log.Debug("Config file: %s", cfg.ConfigFile)
	}
	log.Blank()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	convertLabel, updateLabel := "Converted", "Files updated"
	if cfg.DryRun {
		convertLabel, updateLabel = "Would convert", "Would update"
	}

	rows := [][]string{
		{"PNG files found", fmt.Sprint(stats.Found)},
		{convertLabel, fmt.Sprint(stats.Converted)},
		{"Conversion failures", fmt.Sprint(stats.ConvertFailed)},
		{"Text files scanned", fmt.Sprint(stats.Candidates)},
		{updateLabel, fmt.Sprint(stats.FilesUpdated)},
		{"References replaced", fmt.Sprint(stats.Replacements)},
		{"Update failures", fmt.Sprint(stats.UpdateFailed)},
	}
	if stats.Collisions > 0 {
		rows = append(rows, []string{"Name collisions", fmt.Sprint(stats.Collisions)})
	}
	if cfg.RemovePNG && !cfg.DryRun {
		rows = append(rows,
			[]string{"PNGs removed", fmt.Sprint(stats.Removed)},
			[]string{"Removal failures", fmt.Sprint(stats.RemoveFailed)})
	}
	if cfg.DryRun {
		rows = append(rows, []string{"Space saved", "n/a (dry run)"})
	} else {
		rows = append(rows, []string{"Space saved", fmt.Sprintf("%s (%s -> %s)",
			display.FormatBytesWithSign(stats.SpaceSaved()),
			display.FormatBytes(stats.InputBytes),
			display.FormatBytes(stats.OutputBytes))})
	}

	log.Stage("Summary")
	fmt.Fprint(log.Writer(), display.RenderTable([]display.Column{
		{Header: "Item"},
		{Header: "Count", Align: display.AlignRight},
	}, rows))
	fmt.Fprintln(log.Writer())

	switch n := stats.Failed(); {
	case n > 0:
		log.Warn("Completed with %s", display.Plural(n, "failure"))
	case cfg.DryRun:
		log.Success("Dry run complete")
	default:
		log.Success("Migration complete")
	}
}

// relPath returns p relative to root for display, or p itself when that is
// not possible.
func relPath(root, p string) string {
	rel, err := filepath.Rel(root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return filepath.ToSlash(rel)
}
