package cmd

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/samsaffron/skilldeck/internal/config"
	"github.com/samsaffron/skilldeck/internal/corpus"
	"github.com/samsaffron/skilldeck/internal/exitcode"
	"github.com/samsaffron/skilldeck/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
	rootCmd.PersistentFlags().StringVar(&memProfile, "memprofile", "", "Write memory profile to file")
}

var rootCmd = &cobra.Command{
	Use:   "skilldeck",
	Short: "Manage a corpus of agent commands, skills, and personas",
	Long: `skilldeck manages the markdown corpus an AI coding agent loads:
slash-command templates, agent personas, and skill reference packs.

Examples:
  skilldeck commands                  # list available commands
  skilldeck skills show rust-patterns # render a skill
  skilldeck lint ./corpus             # integrity-check a corpus directory
  skilldeck search "borrow checker"   # fuzzy search everything
  skilldeck install ~/.claude         # materialize the builtin corpus`,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			ui.SetColor(false)
		}
		return startProfiling()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return stopProfiling()
	},
}

var noColor bool
var cpuProfile string
var memProfile string
var cpuProfileFile *os.File

func startProfiling() error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return err
		}
		cpuProfileFile = f
		if err := pprof.StartCPUProfile(f); err != nil {
			f.Close()
			return err
		}
	}
	return nil
}

func stopProfiling() error {
	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		cpuProfileFile.Close()
	}
	if memProfile != "" {
		f, err := os.Create(memProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(exitcode.ExitError); ok {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// termWidth returns the terminal width, or a sane default when stdout
// is not a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// loadRegistry builds the corpus registry from the effective config.
func loadRegistry() (*corpus.Registry, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	registry, err := corpus.NewRegistry(corpus.Config{
		UseBuiltin: cfg.Corpus.UseBuiltin,
		UserDir:    cfg.Corpus.UserDir,
		ProjectDir: cfg.Corpus.ProjectDir,
	})
	if err != nil {
		return nil, nil, err
	}
	return registry, cfg, nil
}
