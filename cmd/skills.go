package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samsaffron/skilldeck/internal/corpus"
	"github.com/samsaffron/skilldeck/internal/frontmatter"
	"github.com/samsaffron/skilldeck/internal/ui"
	"github.com/spf13/cobra"
)

var (
	skillsBuiltin bool
	skillsUser    bool
	skillsProject bool
	skillsRaw     bool
	skillsLocal   bool
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Manage skill reference packs",
	Long: `List and manage skills: markdown reference packs an agent loads
as background knowledge for a language or workflow.

Examples:
  skilldeck skills                     # list all available skills
  skilldeck skills --builtin           # only embedded skills
  skilldeck skills show rust-patterns  # render a skill
  skilldeck skills new my-skill        # scaffold a new skill
  skilldeck skills path                # print skill directories`,
	RunE: runSkillsList,
}

var skillsShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Display a skill",
	Args:              cobra.ExactArgs(1),
	RunE:              runSkillsShow,
	ValidArgsFunction: skillNameCompletion,
}

var skillsNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new skill",
	Long: `Create a new skill directory with a template SKILL.md.

By default, creates the skill under the user corpus directory. Use
--local to create it in the project's .skilldeck/skills/ instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillsNew,
}

var skillsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print skill directories",
	RunE:  runSkillsPath,
}

func init() {
	skillsCmd.Flags().BoolVar(&skillsBuiltin, "builtin", false, "Show only embedded skills")
	skillsCmd.Flags().BoolVar(&skillsUser, "user", false, "Show only user-global skills")
	skillsCmd.Flags().BoolVar(&skillsProject, "project", false, "Show only project-local skills")
	skillsShowCmd.Flags().BoolVar(&skillsRaw, "raw", false, "Print raw markdown without styling")
	skillsNewCmd.Flags().BoolVar(&skillsLocal, "local", false, "Create in the project's .skilldeck/skills/")

	rootCmd.AddCommand(skillsCmd)
	skillsCmd.AddCommand(skillsShowCmd)
	skillsCmd.AddCommand(skillsNewCmd)
	skillsCmd.AddCommand(skillsPathCmd)
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	source := pickSource(skillsBuiltin, skillsUser, skillsProject)

	var rows [][2]string
	for _, skill := range registry.Skills() {
		if source != "" && skill.Source.String() != source {
			continue
		}
		rows = append(rows, [2]string{skill.Name, skill.Description})
	}

	if len(rows) == 0 {
		if source != "" {
			fmt.Println("No skills found matching filter.")
		} else {
			fmt.Println("No skills available.")
			fmt.Println()
			fmt.Println("Create one with: skilldeck skills new <name>")
		}
		return nil
	}

	fmt.Println(ui.Styled(ui.TitleStyle, "Skills"))
	fmt.Print(ui.RenderList(rows, termWidth()))
	reportLoadErrors(registry)
	return nil
}

func runSkillsShow(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	skill, ok := registry.Skill(args[0])
	if !ok {
		return fmt.Errorf("skill %q not found", args[0])
	}

	if skillsRaw {
		fmt.Println(skill.Body)
		return nil
	}

	fmt.Println(ui.Styled(ui.NameStyle, skill.Name))
	fmt.Println(ui.Styled(ui.DescStyle, skill.Description))
	fmt.Printf("%s %s (%s)\n", ui.Styled(ui.SourceStyle, "source:"), skill.Source, skill.SourcePath)
	if len(skill.Tools) > 0 {
		fmt.Printf("%s %v\n", ui.Styled(ui.SourceStyle, "tools:"), skill.Tools)
	}
	if len(skill.References) > 0 {
		fmt.Printf("%s %v\n", ui.Styled(ui.SourceStyle, "references:"), skill.References)
	}
	fmt.Println()
	fmt.Println(ui.RenderMarkdown(skill.Body))
	return nil
}

func runSkillsNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := frontmatter.ValidateName(name); err != nil {
		return err
	}

	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	baseDir := filepath.Join(cfg.Corpus.UserDir, "skills")
	if skillsLocal {
		baseDir = filepath.Join(cfg.Corpus.ProjectDir, "skills")
	}

	skillDir := filepath.Join(baseDir, name)
	if _, err := os.Stat(skillDir); err == nil {
		return fmt.Errorf("skill directory already exists: %s", skillDir)
	}
	if err := os.MkdirAll(skillDir, 0755); err != nil {
		return fmt.Errorf("create skill directory: %w", err)
	}

	content := fmt.Sprintf(`---
name: %s
description: "Describe when an agent should load this skill"
---

# %s

Reference patterns go here.
`, name, name)

	path := filepath.Join(skillDir, "SKILL.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write SKILL.md: %w", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func runSkillsPath(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}
	fmt.Printf("user:    %s\n", filepath.Join(cfg.Corpus.UserDir, "skills"))
	fmt.Printf("project: %s\n", filepath.Join(cfg.Corpus.ProjectDir, "skills"))
	return nil
}

func skillNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	registry, _, err := loadRegistry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, skill := range registry.Skills() {
		names = append(names, skill.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// pickSource maps the mutually exclusive source flags to a source name.
func pickSource(builtin, user, project bool) string {
	switch {
	case builtin:
		return "builtin"
	case user:
		return "user"
	case project:
		return "project"
	default:
		return ""
	}
}

func reportLoadErrors(registry *corpus.Registry) {
	for _, loadErr := range registry.LoadErrors() {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.Styled(ui.WarnStyle, "skipped:"), loadErr)
	}
}
