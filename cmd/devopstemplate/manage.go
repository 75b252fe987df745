package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devops-template/devopstemplate/pkg/config"
	"github.com/devops-template/devopstemplate/pkg/project"
)

var manageOpts project.ManageOptions

var manageCmd = &cobra.Command{
	Use:   "manage",
	Short: MsgManageShort,
	Long:  MsgManageLong,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(projectDir)
		if err != nil {
			return fmt.Errorf(MsgErrLoadConfig, err)
		}
		opts := manageOpts
		opts.ProjectConfig = mergeProjectConfig(cmd, cfg.Project, opts.ProjectConfig)

		ops, err := newOperations()
		if err != nil {
			return err
		}
		sess := newSession(cmd, cfg)
		outcomes, err := ops.Manage(opts, sess)
		if err != nil {
			return fmt.Errorf(MsgErrManage, err)
		}
		printOutcomes(outcomes, sess)
		return nil
	},
}

func init() {
	addProjectConfigFlags(manageCmd, &manageOpts.ProjectConfig)
	manageCmd.Flags().BoolVar(&manageOpts.AddScriptsDir, "add-scripts-dir", false, MsgFlagAddScripts)
	manageCmd.Flags().BoolVar(&manageOpts.AddDocsDir, "add-docs-dir", false, MsgFlagAddDocs)
	manageCmd.Flags().BoolVar(&manageOpts.AddGitignoreFile, "add-gitignore-file", false, MsgFlagAddGitignore)
	manageCmd.Flags().BoolVar(&manageOpts.AddReadmeFile, "add-readme-file", false, MsgFlagAddReadme)
	manageCmd.Flags().BoolVar(&manageOpts.AddSonar, "add-sonar", false, MsgFlagAddSonar)
}
