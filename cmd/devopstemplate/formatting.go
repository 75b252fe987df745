package main

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/devops-template/devopstemplate/pkg/installer"
)

// isTerminal reports whether stdout is attached to a terminal
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !isTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatStatus colors the per-file status when stdout is a terminal
func formatStatus(status installer.Status) string {
	if !isTerminal() {
		return string(status)
	}
	switch status {
	case installer.StatusWritten:
		return pterm.FgGreen.Sprint(string(status))
	case installer.StatusSkipped:
		return pterm.FgYellow.Sprint(string(status))
	default:
		return string(status)
	}
}

// printOutcomes reports per-file results, one line per target path
func printOutcomes(outcomes []installer.FileOutcome, sess installer.Session) {
	if len(outcomes) == 0 {
		fmt.Println(MsgNoFiles)
		return
	}
	fmt.Printf(MsgOutcomesHeader, len(outcomes), sess.ProjectDir)
	for _, outcome := range outcomes {
		fmt.Printf("  %-8s %s\n", formatStatus(outcome.Status), outcome.Path)
	}
	if sess.DryRun {
		fmt.Println(MsgDryRunNotice)
	}
}

// printError writes the final error to stderr, bold on terminals
func printError(err error) {
	msg := fmt.Sprintf("Error: %s", err)
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = pterm.Bold.Sprint(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  formatBold,
		"upper": strings.ToUpper,
	})
}
