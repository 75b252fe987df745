package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/devops-template/devopstemplate/internal/version"
	"github.com/devops-template/devopstemplate/pkg/catalog"
	"github.com/devops-template/devopstemplate/pkg/config"
	"github.com/devops-template/devopstemplate/pkg/filesystem"
	"github.com/devops-template/devopstemplate/pkg/installer"
	"github.com/devops-template/devopstemplate/pkg/logging"
	"github.com/devops-template/devopstemplate/pkg/project"
	"github.com/devops-template/devopstemplate/pkg/templates"
)

var (
	verbosity       int
	projectDir      string
	overwriteExists bool
	skipExists      bool
	dryRun          bool

	rootCmd = &cobra.Command{
		Use:   "devopstemplate",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&projectDir, "project-dir", "d", ".", MsgFlagProjectDir)
	rootCmd.PersistentFlags().BoolVar(&overwriteExists, "overwrite-exists", false, MsgFlagOverwrite)
	rootCmd.PersistentFlags().BoolVar(&skipExists, "skip-exists", false, MsgFlagSkip)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(manageCmd)
	rootCmd.AddCommand(cookiecutterCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(guideCmd)

	initTemplateFormatting()
}

// newOperations wires the embedded catalog and templates to the local
// filesystem and returns the operations facade.
func newOperations() (*project.Operations, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	fsys := filesystem.NewOS()
	inst := installer.New(cat, templates.Default(), fsys)
	return project.New(inst, fsys), nil
}

// newSession combines configuration defaults with command line flags. Flags
// win when set; the config file supplies defaults otherwise.
func newSession(cmd *cobra.Command, cfg config.Config) installer.Session {
	overwrite := cfg.Behavior.OverwriteExists
	if cmd.Flags().Changed("overwrite-exists") {
		overwrite = overwriteExists
	}
	skip := cfg.Behavior.SkipExists
	if cmd.Flags().Changed("skip-exists") {
		skip = skipExists
	}
	return installer.NewSession(projectDir, overwrite, skip, dryRun)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: MsgVersionShort,
	Long:  MsgVersionLong,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("devopstemplate version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: MsgCompletionShort,
	Long: `To load completions:

Bash:
  $ source <(devopstemplate completion bash)

Zsh:
  $ devopstemplate completion zsh > "${fpath[1]}/_devopstemplate"

Fish:
  $ devopstemplate completion fish | source

PowerShell:
  PS> devopstemplate completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate bash completion")
			}
		case "zsh":
			if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate zsh completion")
			}
		case "fish":
			if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
				log.Error().Err(err).Msg("Failed to generate fish completion")
			}
		case "powershell":
			if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("Failed to generate powershell completion")
			}
		}
	},
}
