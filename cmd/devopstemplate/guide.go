package main

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var guideDocs embed.FS

var guideHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true).
	MarginBottom(1)

var guideCmd = &cobra.Command{
	Use:       "guide [topic]",
	Short:     MsgGuideShort,
	Long:      MsgGuideLong,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: guideTopics(),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			listGuideTopics()
			return nil
		}
		return showGuideTopic(args[0])
	},
}

// guideTopics lists embedded topic names without the .md extension
func guideTopics() []string {
	entries, err := guideDocs.ReadDir("docs")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".md") {
			topics = append(topics, strings.TrimSuffix(name, ".md"))
		}
	}
	sort.Strings(topics)
	return topics
}

func listGuideTopics() {
	if isTerminal() {
		fmt.Println(guideHeaderStyle.Render("Available topics"))
	} else {
		fmt.Println("Available topics")
	}
	for _, topic := range guideTopics() {
		fmt.Printf("  %s\n", topic)
	}
	fmt.Println("\nRun 'devopstemplate guide <topic>' to read one.")
}

func showGuideTopic(topic string) error {
	content, err := guideDocs.ReadFile("docs/" + topic + ".md")
	if err != nil {
		return fmt.Errorf(MsgErrUnknownTopic, topic)
	}
	fmt.Print(renderMarkdown(string(content)))
	return nil
}

// renderMarkdown converts markdown to terminal output, falling back to the
// raw text when rendering is not possible.
func renderMarkdown(content string) string {
	if !isTerminal() {
		return content
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
