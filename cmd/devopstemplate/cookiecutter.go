package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devops-template/devopstemplate/pkg/config"
	"github.com/devops-template/devopstemplate/pkg/project"
)

var cookiecutterConfig project.ProjectConfig

var cookiecutterCmd = &cobra.Command{
	Use:   "cookiecutter",
	Short: MsgCookiecutterShort,
	Long:  MsgCookiecutterLong,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(projectDir)
		if err != nil {
			return fmt.Errorf(MsgErrLoadConfig, err)
		}
		pc := mergeProjectConfig(cmd, cfg.Project, cookiecutterConfig)

		ops, err := newOperations()
		if err != nil {
			return err
		}
		sess := newSession(cmd, cfg)
		outcomes, err := ops.Cookiecutter(pc, sess)
		if err != nil {
			return fmt.Errorf(MsgErrCookiecutter, err)
		}
		printOutcomes(outcomes, sess)
		return nil
	},
}

func init() {
	addProjectConfigFlags(cookiecutterCmd, &cookiecutterConfig)
}
