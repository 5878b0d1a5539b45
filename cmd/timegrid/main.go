// Command timegrid reconstructs timetable sections from rendered timetable
// documents (PDFs, fragment dumps, or plain text) and emits them as JSON.
// With --day/--from/--to it instead answers which observed rooms are free
// across the overlapping time slots.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/timegrid"
	"github.com/tsawler/timegrid/internal/config"
	"github.com/tsawler/timegrid/model"
	"github.com/tsawler/timegrid/reader"
	"github.com/tsawler/timegrid/schedule"
)

// extractOutput is the JSON document written for an extraction run.
type extractOutput struct {
	Sections []model.Section    `json:"sections"`
	Skipped  []model.SkipReport `json:"skipped,omitempty"`
}

// freeRoomOutput is the JSON document written for a free-room query.
type freeRoomOutput struct {
	Day  string   `json:"day"`
	From string   `json:"from"`
	To   string   `json:"to"`
	Free []string `json:"free_rooms"`
}

func main() {
	logger := log.New(os.Stderr, "timegrid: ", 0)

	cfg, err := config.LoadFromFlags()
	if err != nil {
		logger.Fatal(err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	store := schedule.NewMemoryStore()
	out := extractOutput{}

	for _, input := range cfg.Inputs {
		ext, err := buildExtractor(cfg, input)
		if err != nil {
			return err
		}

		sections, skipped, err := ext.Sections()
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}

		for _, skip := range skipped {
			logger.Printf("%s page %d skipped: %s", input, skip.Page, skip.Reason)
			if cfg.Verbose && skip.Sample != "" {
				logger.Printf("  sample: %s", skip.Sample)
			}
		}
		if cfg.Verbose {
			logger.Printf("%s: %d sections, %d pages skipped", input, len(sections), len(skipped))
		}

		out.Sections = append(out.Sections, sections...)
		out.Skipped = append(out.Skipped, skipped...)

		if err := store.SaveDocument(input, sections); err != nil {
			return err
		}

		// Text sources carry no positions to dump.
		if cfg.DumpDir != "" && resolveFormat(cfg.Format, input) != config.FormatText {
			if err := writeDumps(cfg, ext, input); err != nil {
				return err
			}
		}
	}

	if cfg.IsFreeRoomQuery() {
		free, err := store.FreeRooms(cfg.Day, cfg.From, cfg.To)
		if err != nil {
			return err
		}
		return writeJSON(cfg.Output, freeRoomOutput{
			Day:  cfg.Day,
			From: cfg.From,
			To:   cfg.To,
			Free: free,
		})
	}

	return writeJSON(cfg.Output, out)
}

// buildExtractor constructs the fluent chain for one input, resolving the
// source format by flag or file extension.
func buildExtractor(cfg *config.Config, input string) (*timegrid.Extractor, error) {
	var ext *timegrid.Extractor

	switch resolveFormat(cfg.Format, input) {
	case config.FormatPDF:
		ext = timegrid.Open(input)
	case config.FormatDump:
		ext = timegrid.FromFragmentDumps(input)
	case config.FormatText:
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}
		ext = timegrid.FromText(string(data))
	default:
		return nil, fmt.Errorf("%s: cannot determine input format; use --format", input)
	}

	if len(cfg.Pages) > 0 {
		ext = ext.Pages(cfg.Pages...)
	}
	switch cfg.Mode {
	case config.ModeGeometry:
		ext = ext.GeometryMode()
	case config.ModeLine:
		ext = ext.LineMode()
	}

	return ext, nil
}

// resolveFormat maps the format flag, falling back to the file extension.
func resolveFormat(format, input string) string {
	if format != config.FormatAuto {
		return format
	}
	switch strings.ToLower(filepath.Ext(input)) {
	case ".pdf":
		return config.FormatPDF
	case ".jsonl", ".dump":
		return config.FormatDump
	case ".txt", ".text":
		return config.FormatText
	}
	return config.FormatAuto
}

// writeDumps writes one fragment dump file per extracted page.
func writeDumps(cfg *config.Config, ext *timegrid.Extractor, input string) error {
	pages, err := ext.Fragments()
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	if err := os.MkdirAll(cfg.DumpDir, 0o750); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	for i, page := range pages {
		path := filepath.Join(cfg.DumpDir, fmt.Sprintf("%s-page-%d.jsonl", base, i+1))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := reader.WriteFragmentDump(f, page); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes v as indented JSON to path, or stdout for "-".
func writeJSON(path string, v any) error {
	w := os.Stdout
	if path != "-" && path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
