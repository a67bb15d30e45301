package commands

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/crossdialect/rosetta/internal/cli/config"
	"github.com/crossdialect/rosetta/internal/cli/output"
	"github.com/crossdialect/rosetta/pkg/dictionary"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce delays re-validation until file events settle; editors tend
// to emit bursts of writes for a single save.
const watchDebounce = 250 * time.Millisecond

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Watch bool
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}
	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Load a dictionary and report validation errors",
		Long: `Load the dictionary rooted at the given file (or a directory containing a
dictionary.yaml) and run its validation rules.

Exits non-zero when the dictionary fails to load or any validation error is
found.`,
		Example: `  # Validate a dictionary
  rosetta validate ./dictionaries/core/dictionary.yaml

  # Validate the dictionary.yaml inside a directory
  rosetta validate ./dictionaries/core

  # Re-validate whenever a file changes
  rosetta validate --watch ./dictionaries/core

  # Machine-readable report
  rosetta validate -o json ./dictionaries/core`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveDictionaryPath(args[0])
			if opts.Watch {
				return watchValidate(cmd, path, renderer(cmd))
			}
			return validateOnce(path, renderer(cmd))
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Re-validate when dictionary files change")
	return cmd
}

// resolveDictionaryPath maps a directory argument to the root dictionary
// file inside it.
func resolveDictionaryPath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, config.DefaultDictionaryFile)
	}
	return path
}

// validateReport is the JSON shape of a validation run.
type validateReport struct {
	ID      string   `json:"id"`
	Version string   `json:"version"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors"`
}

func validateOnce(path string, r *output.Renderer) error {
	d, err := dictionary.Load(path)
	if err != nil {
		return err
	}
	errs := d.Validate()

	if r.EffectiveMode() == output.ModeJSON {
		if err := r.JSON(validateReport{
			ID:      d.ID,
			Version: d.Version,
			Valid:   len(errs) == 0,
			Errors:  errs,
		}); err != nil {
			return err
		}
	} else {
		if len(errs) == 0 {
			slog.Info("no errors found", "dictionary", d.ID)
			r.Println("No errors found")
		}
		for _, e := range errs {
			r.Error(e)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("dictionary %s has %d validation errors", d.ID, len(errs))
	}
	return nil
}

// watchValidate re-runs validation whenever a file under the dictionary
// directory changes, until interrupted. Load and validation failures are
// reported but do not stop the watch.
func watchValidate(cmd *cobra.Command, path string, r *output.Renderer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(path)
	if err := watchDir(watcher, dir); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report := func() {
		if err := validateOnce(path, r); err != nil {
			r.Error(err.Error())
		}
	}
	report()
	r.Printf("Watching %s for changes...\n", dir)

	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
				fire = debounce.C
			} else {
				debounce.Reset(watchDebounce)
			}
		case <-fire:
			report()
			// New subdirectories may have appeared since the last walk.
			if err := watchDir(watcher, dir); err != nil {
				slog.Warn("failed to refresh watch list", "error", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", werr)
		case <-ctx.Done():
			return nil
		}
	}
}

// watchDir recursively adds a directory tree to the watcher.
func watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
