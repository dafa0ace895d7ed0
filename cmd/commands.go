package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/samsaffron/skilldeck/internal/commands"
	"github.com/samsaffron/skilldeck/internal/ui"
	"github.com/spf13/cobra"
)

var (
	commandsBuiltin bool
	commandsUser    bool
	commandsProject bool
	commandsRaw     bool
	renderAbsolute  bool
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Manage slash-command templates",
	Long: `List and manage commands: slash-command prompt templates with
argument placeholders.

Examples:
  skilldeck commands                        # list all available commands
  skilldeck commands show rust-test         # display a template
  skilldeck commands render rust-test "add retry logic"`,
	RunE: runCommandsList,
}

var commandsShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Display a command template",
	Args:              cobra.ExactArgs(1),
	RunE:              runCommandsShow,
	ValidArgsFunction: commandNameCompletion,
}

var commandsRenderCmd = &cobra.Command{
	Use:   "render <name> [args...]",
	Short: "Expand a command template",
	Long: `Expand a command template: $ARGUMENTS and positional $1..$9 are
substituted from the invocation arguments, and {{file:path}} includes
are resolved relative to the command's directory.

Examples:
  skilldeck commands render rust-test "add retry logic"
  skilldeck commands render java-build-fix core`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runCommandsRender,
	ValidArgsFunction: commandNameCompletion,
}

var commandsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print command directories",
	RunE:  runCommandsPath,
}

func init() {
	commandsCmd.Flags().BoolVar(&commandsBuiltin, "builtin", false, "Show only embedded commands")
	commandsCmd.Flags().BoolVar(&commandsUser, "user", false, "Show only user-global commands")
	commandsCmd.Flags().BoolVar(&commandsProject, "project", false, "Show only project-local commands")
	commandsShowCmd.Flags().BoolVar(&commandsRaw, "raw", false, "Print raw markdown without styling")
	commandsRenderCmd.Flags().BoolVar(&renderAbsolute, "allow-absolute-includes", false, "Permit absolute include paths")

	rootCmd.AddCommand(commandsCmd)
	commandsCmd.AddCommand(commandsShowCmd)
	commandsCmd.AddCommand(commandsRenderCmd)
	commandsCmd.AddCommand(commandsPathCmd)
}

func runCommandsList(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	source := pickSource(commandsBuiltin, commandsUser, commandsProject)

	var rows [][2]string
	for _, command := range registry.Commands() {
		if source != "" && command.Source.String() != source {
			continue
		}
		name := command.Invocation()
		if command.ArgumentHint != "" {
			name += " " + command.ArgumentHint
		}
		rows = append(rows, [2]string{name, command.Description})
	}

	if len(rows) == 0 {
		fmt.Println("No commands found.")
		return nil
	}

	fmt.Println(ui.Styled(ui.TitleStyle, "Commands"))
	fmt.Print(ui.RenderList(rows, termWidth()))
	reportLoadErrors(registry)
	return nil
}

func runCommandsShow(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	command, ok := registry.Command(args[0])
	if !ok {
		return fmt.Errorf("command %q not found", args[0])
	}

	if commandsRaw {
		fmt.Println(command.Body)
		return nil
	}

	fmt.Println(ui.Styled(ui.NameStyle, command.Invocation()))
	fmt.Println(ui.Styled(ui.DescStyle, command.Description))
	fmt.Printf("%s %s (%s)\n", ui.Styled(ui.SourceStyle, "source:"), command.Source, command.SourcePath)
	if command.ArgumentHint != "" {
		fmt.Printf("%s %s\n", ui.Styled(ui.SourceStyle, "arguments:"), command.ArgumentHint)
	}
	if command.Model != "" {
		fmt.Printf("%s %s\n", ui.Styled(ui.SourceStyle, "model:"), command.Model)
	}
	fmt.Println()
	fmt.Println(ui.RenderMarkdown(command.Body))
	return nil
}

func runCommandsRender(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	command, ok := registry.Command(args[0])
	if !ok {
		return fmt.Errorf("command %q not found", args[0])
	}

	expanded, err := command.Expand(commands.ExpandOptions{
		Args:          args[1:],
		AllowAbsolute: renderAbsolute,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", command.Invocation(), err)
	}

	fmt.Println(expanded)
	return nil
}

func runCommandsPath(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}
	fmt.Printf("user:    %s\n", filepath.Join(cfg.Corpus.UserDir, "commands"))
	fmt.Printf("project: %s\n", filepath.Join(cfg.Corpus.ProjectDir, "commands"))
	return nil
}

func commandNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	registry, _, err := loadRegistry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, command := range registry.Commands() {
		names = append(names, command.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
