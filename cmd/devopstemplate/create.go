package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devops-template/devopstemplate/pkg/config"
	"github.com/devops-template/devopstemplate/pkg/project"
)

var createOpts project.CreateOptions

var createCmd = &cobra.Command{
	Use:   "create",
	Short: MsgCreateShort,
	Long:  MsgCreateLong,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(projectDir)
		if err != nil {
			return fmt.Errorf(MsgErrLoadConfig, err)
		}
		opts := createOpts
		opts.ProjectConfig = mergeProjectConfig(cmd, cfg.Project, opts.ProjectConfig)

		ops, err := newOperations()
		if err != nil {
			return err
		}
		sess := newSession(cmd, cfg)
		outcomes, err := ops.Create(opts, sess)
		if err != nil {
			return fmt.Errorf(MsgErrCreate, err)
		}
		printOutcomes(outcomes, sess)
		return nil
	},
}

// mergeProjectConfig overlays flag-provided fields on top of the loaded
// configuration and derives the slug when neither source names one.
func mergeProjectConfig(cmd *cobra.Command, base, flags project.ProjectConfig) project.ProjectConfig {
	merged := base
	if cmd.Flags().Changed("project-name") {
		merged.ProjectName = flags.ProjectName
		if !cmd.Flags().Changed("project-slug") {
			merged.ProjectSlug = project.DeriveSlug(flags.ProjectName)
		}
	}
	if cmd.Flags().Changed("project-slug") {
		merged.ProjectSlug = flags.ProjectSlug
	}
	if cmd.Flags().Changed("project-version") {
		merged.ProjectVersion = flags.ProjectVersion
	}
	if cmd.Flags().Changed("project-url") {
		merged.ProjectURL = flags.ProjectURL
	}
	if cmd.Flags().Changed("description") {
		merged.ProjectDescription = flags.ProjectDescription
	}
	if cmd.Flags().Changed("author-name") {
		merged.AuthorName = flags.AuthorName
	}
	if cmd.Flags().Changed("author-email") {
		merged.AuthorEmail = flags.AuthorEmail
	}
	return merged
}

// addProjectConfigFlags registers the shared project identity flags
func addProjectConfigFlags(cmd *cobra.Command, cfg *project.ProjectConfig) {
	cmd.Flags().StringVarP(&cfg.ProjectName, "project-name", "n", "", MsgFlagName)
	cmd.Flags().StringVar(&cfg.ProjectSlug, "project-slug", "", MsgFlagSlug)
	cmd.Flags().StringVar(&cfg.ProjectVersion, "project-version", "", MsgFlagVersionVal)
	cmd.Flags().StringVar(&cfg.ProjectURL, "project-url", "", MsgFlagURL)
	cmd.Flags().StringVar(&cfg.ProjectDescription, "description", "", MsgFlagDescription)
	cmd.Flags().StringVar(&cfg.AuthorName, "author-name", "", MsgFlagAuthorName)
	cmd.Flags().StringVar(&cfg.AuthorEmail, "author-email", "", MsgFlagAuthorEmail)
}

func init() {
	addProjectConfigFlags(createCmd, &createOpts.ProjectConfig)
	createCmd.Flags().BoolVar(&createOpts.AddScriptsDir, "add-scripts-dir", false, MsgFlagAddScripts)
	createCmd.Flags().BoolVar(&createOpts.AddDocsDir, "add-docs-dir", false, MsgFlagAddDocs)
	createCmd.Flags().BoolVar(&createOpts.NoGitignoreFile, "no-gitignore-file", false, MsgFlagNoGitignore)
	createCmd.Flags().BoolVar(&createOpts.NoReadmeFile, "no-readme-file", false, MsgFlagNoReadme)
	createCmd.Flags().BoolVar(&createOpts.NoSonar, "no-sonar", false, MsgFlagNoSonar)
}
