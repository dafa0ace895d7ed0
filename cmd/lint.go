package cmd

import (
	"fmt"

	"github.com/samsaffron/skilldeck/internal/config"
	"github.com/samsaffron/skilldeck/internal/exitcode"
	"github.com/samsaffron/skilldeck/internal/lint"
	"github.com/samsaffron/skilldeck/internal/ui"
	"github.com/spf13/cobra"
)

var lintIgnore []string

var lintCmd = &cobra.Command{
	Use:   "lint [dir]",
	Short: "Integrity-check a corpus directory",
	Long: `Check every markdown document under a directory:

  - frontmatter parses and validates
  - names match file or directory basenames
  - no file is empty, no duplicate names within a kind
  - prose references (skill: ` + "`x`" + `) resolve within the corpus
  - relative markdown links point at existing files
  - command templates carry a code block in their stated language

Exits 0 when clean or warnings only, 3 when any error was found.

Examples:
  skilldeck lint                 # lint the project corpus (.skilldeck)
  skilldeck lint ./corpus
  skilldeck lint --ignore 'drafts/**' ./corpus`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringArrayVar(&lintIgnore, "ignore", nil, "Glob pattern to skip (repeatable)")
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := cfg.Corpus.ProjectDir
	if len(args) == 1 {
		dir = args[0]
	}

	ignore := append(append([]string{}, cfg.Lint.Ignore...), lintIgnore...)
	report, err := lint.Dir(dir, lint.Options{Ignore: ignore})
	if err != nil {
		return err
	}

	for _, finding := range report.Findings {
		style := ui.WarnStyle
		if finding.Severity == lint.SeverityError {
			style = ui.ErrorStyle
		}
		fmt.Println(ui.Styled(style, finding.String()))
	}

	errs, warns := report.Errors(), report.Warnings()
	if errs == 0 && warns == 0 {
		fmt.Printf("%s: corpus is clean\n", dir)
		return nil
	}

	fmt.Printf("\n%d error(s), %d warning(s)\n", errs, warns)
	if errs > 0 {
		return exitcode.Lint(fmt.Sprintf("%d lint error(s)", errs))
	}
	return nil
}
