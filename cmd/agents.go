package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samsaffron/skilldeck/internal/agents"
	"github.com/samsaffron/skilldeck/internal/frontmatter"
	"github.com/samsaffron/skilldeck/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	agentsBuiltin bool
	agentsUser    bool
	agentsProject bool
	agentsRaw     bool
	agentsLocal   bool
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Manage agent personas",
	Long: `List and manage agents: persona definitions combining a system
prompt, tool allowlist, and model preference.

Examples:
  skilldeck agents                       # list all available agents
  skilldeck agents --builtin             # only embedded agents
  skilldeck agents show rust-reviewer    # display a persona
  skilldeck agents new my-agent          # scaffold a new agent
  skilldeck agents copy rust-reviewer strict-reviewer`,
	RunE: runAgentsList,
}

var agentsShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Display an agent",
	Args:              cobra.ExactArgs(1),
	RunE:              runAgentsShow,
	ValidArgsFunction: agentNameCompletion,
}

var agentsNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new agent",
	Args:  cobra.ExactArgs(1),
	RunE:  runAgentsNew,
}

var agentsCopyCmd = &cobra.Command{
	Use:   "copy <source> <dest>",
	Short: "Copy an agent for customization",
	Long: `Copy an existing agent to create a customized version.

This is useful for creating modified versions of built-in agents.

Examples:
  skilldeck agents copy rust-reviewer strict-reviewer
  skilldeck agents copy build-fixer cautious-fixer`,
	Args:              cobra.ExactArgs(2),
	RunE:              runAgentsCopy,
	ValidArgsFunction: agentNameCompletion,
}

var agentsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print agent directories",
	RunE:  runAgentsPath,
}

func init() {
	agentsCmd.Flags().BoolVar(&agentsBuiltin, "builtin", false, "Show only embedded agents")
	agentsCmd.Flags().BoolVar(&agentsUser, "user", false, "Show only user-global agents")
	agentsCmd.Flags().BoolVar(&agentsProject, "project", false, "Show only project-local agents")
	agentsShowCmd.Flags().BoolVar(&agentsRaw, "raw", false, "Print raw markdown without styling")
	agentsNewCmd.Flags().BoolVar(&agentsLocal, "local", false, "Create in the project's .skilldeck/agents/")
	agentsCopyCmd.Flags().BoolVar(&agentsLocal, "local", false, "Copy to the project's .skilldeck/agents/")

	rootCmd.AddCommand(agentsCmd)
	agentsCmd.AddCommand(agentsShowCmd)
	agentsCmd.AddCommand(agentsNewCmd)
	agentsCmd.AddCommand(agentsCopyCmd)
	agentsCmd.AddCommand(agentsPathCmd)
}

func runAgentsList(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	source := pickSource(agentsBuiltin, agentsUser, agentsProject)

	var rows [][2]string
	for _, agent := range registry.Agents() {
		if source != "" && agent.Source.String() != source {
			continue
		}
		rows = append(rows, [2]string{agent.Name, agent.Description})
	}

	if len(rows) == 0 {
		if source != "" {
			fmt.Println("No agents found matching filter.")
		} else {
			fmt.Println("No agents available.")
			fmt.Println()
			fmt.Println("Create one with: skilldeck agents new <name>")
		}
		return nil
	}

	fmt.Println(ui.Styled(ui.TitleStyle, "Agents"))
	fmt.Print(ui.RenderList(rows, termWidth()))
	reportLoadErrors(registry)
	return nil
}

func runAgentsShow(cmd *cobra.Command, args []string) error {
	registry, _, err := loadRegistry()
	if err != nil {
		return err
	}

	agent, ok := registry.Agent(args[0])
	if !ok {
		return fmt.Errorf("agent %q not found", args[0])
	}

	if agentsRaw {
		fmt.Println(agent.SystemPrompt)
		return nil
	}

	fmt.Println(ui.Styled(ui.NameStyle, agent.Name))
	fmt.Println(ui.Styled(ui.DescStyle, agent.Description))
	fmt.Printf("%s %s (%s)\n", ui.Styled(ui.SourceStyle, "source:"), agent.Source, agent.SourcePath)
	if agent.Model != "" {
		fmt.Printf("%s %s\n", ui.Styled(ui.SourceStyle, "model:"), agent.Model)
	}
	if len(agent.Tools) > 0 {
		fmt.Printf("%s %v\n", ui.Styled(ui.SourceStyle, "tools:"), agent.Tools)
	}

	promptBody, err := agent.ExpandedSystemPrompt()
	if err != nil {
		return fmt.Errorf("expand system prompt: %w", err)
	}
	fmt.Println()
	fmt.Println(ui.RenderMarkdown(promptBody))
	return nil
}

func runAgentsNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := frontmatter.ValidateName(name); err != nil {
		return err
	}

	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	content := fmt.Sprintf(`---
name: %s
description: "Describe this persona and when to use it"
tools: read, grep, glob
---

# %s

You are...
`, name, name)

	path, err := writeAgentFile(cfg.Corpus.UserDir, cfg.Corpus.ProjectDir, name, content)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

func runAgentsCopy(cmd *cobra.Command, args []string) error {
	srcName, destName := args[0], args[1]
	if err := frontmatter.ValidateName(destName); err != nil {
		return err
	}

	registry, cfg, err := loadRegistry()
	if err != nil {
		return err
	}

	src, ok := registry.Agent(srcName)
	if !ok {
		return fmt.Errorf("agent %q not found", srcName)
	}

	var content string
	if src.Source == agents.SourceBuiltin {
		content, err = agents.BuiltinContent(srcName)
		if err != nil {
			return err
		}
	} else {
		data, err := os.ReadFile(src.SourcePath)
		if err != nil {
			return fmt.Errorf("read agent %s: %w", srcName, err)
		}
		content = string(data)
	}

	// Rewrite the name so it matches the destination file.
	copied, err := agents.ParseContent(content)
	if err != nil {
		return err
	}
	content = renderAgentMarkdown(destName, copied)

	path, err := writeAgentFile(cfg.Corpus.UserDir, cfg.Corpus.ProjectDir, destName, content)
	if err != nil {
		return err
	}

	fmt.Printf("Copied %s to %s\n", srcName, path)
	return nil
}

// renderAgentMarkdown re-serializes an agent under a new name,
// preserving description, model, tools, metadata, unknown frontmatter
// keys, and the system prompt.
func renderAgentMarkdown(name string, agent *agents.Agent) string {
	var out strings.Builder
	fmt.Fprintf(&out, "---\nname: %s\ndescription: %q\n", name, agent.Description)
	if agent.Model != "" {
		fmt.Fprintf(&out, "model: %s\n", agent.Model)
	}
	if len(agent.Tools) > 0 {
		out.WriteString("tools:")
		for _, tool := range agent.Tools {
			fmt.Fprintf(&out, "\n  - %s", tool)
		}
		out.WriteString("\n")
	}
	if len(agent.Metadata) > 0 {
		if data, err := yaml.Marshal(map[string]map[string]string{"metadata": agent.Metadata}); err == nil {
			out.Write(data)
		}
	}
	if len(agent.Extras) > 0 {
		if data, err := yaml.Marshal(agent.Extras); err == nil {
			out.Write(data)
		}
	}
	out.WriteString("---\n\n" + agent.SystemPrompt + "\n")
	return out.String()
}

func writeAgentFile(userDir, projectDir, name, content string) (string, error) {
	baseDir := filepath.Join(userDir, "agents")
	if agentsLocal {
		baseDir = filepath.Join(projectDir, "agents")
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return "", fmt.Errorf("create agents directory: %w", err)
	}

	path := filepath.Join(baseDir, name+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("agent file already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write agent file: %w", err)
	}
	return path, nil
}

func runAgentsPath(cmd *cobra.Command, args []string) error {
	_, cfg, err := loadRegistry()
	if err != nil {
		return err
	}
	fmt.Printf("user:    %s\n", filepath.Join(cfg.Corpus.UserDir, "agents"))
	fmt.Printf("project: %s\n", filepath.Join(cfg.Corpus.ProjectDir, "agents"))
	return nil
}

func agentNameCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	registry, _, err := loadRegistry()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, agent := range registry.Agents() {
		names = append(names, agent.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
