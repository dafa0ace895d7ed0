package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samsaffron/skilldeck/internal/agents"
	"github.com/samsaffron/skilldeck/internal/commands"
	"github.com/samsaffron/skilldeck/internal/config"
	"github.com/samsaffron/skilldeck/internal/skills"
	"github.com/spf13/cobra"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install [dir]",
	Short: "Materialize the embedded corpus into a host runtime layout",
	Long: `Write the embedded commands, agents, and skills into a directory
laid out for a host agent runtime:

  <dir>/commands/<name>.md
  <dir>/agents/<name>.md
  <dir>/skills/<name>/SKILL.md

Existing files are left alone unless --force is given.

Examples:
  skilldeck install ~/.claude
  skilldeck install --force ./corpus`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	target := cfg.Install.Target
	if len(args) == 1 {
		target = args[0]
	}
	if target == "" {
		return fmt.Errorf("no install target: pass a directory or set install.target")
	}

	written, skipped := 0, 0

	for _, name := range commands.BuiltinNames() {
		content, err := commands.BuiltinContent(name)
		if err != nil {
			return err
		}
		path := filepath.Join(target, "commands", name+".md")
		w, err := installFile(path, content)
		if err != nil {
			return err
		}
		written, skipped = written+w, skipped+1-w
	}

	for _, name := range agents.BuiltinNames() {
		content, err := agents.BuiltinContent(name)
		if err != nil {
			return err
		}
		path := filepath.Join(target, "agents", name+".md")
		w, err := installFile(path, content)
		if err != nil {
			return err
		}
		written, skipped = written+w, skipped+1-w
	}

	for _, name := range skills.BuiltinNames() {
		content, err := skills.BuiltinContent(name)
		if err != nil {
			return err
		}
		path := filepath.Join(target, "skills", name, "SKILL.md")
		w, err := installFile(path, content)
		if err != nil {
			return err
		}
		written, skipped = written+w, skipped+1-w
	}

	fmt.Printf("Installed %d file(s) to %s", written, target)
	if skipped > 0 {
		fmt.Printf(" (%d existing, use --force to overwrite)", skipped)
	}
	fmt.Println()
	return nil
}

// installFile writes content to path, creating parents. Returns 1 if
// the file was written, 0 if it was skipped.
func installFile(path, content string) (int, error) {
	if !installForce {
		if _, err := os.Stat(path); err == nil {
			return 0, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return 1, nil
}
