package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/devops-template/devopstemplate/pkg/config"
)

var genconfigWrite bool

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: MsgGenconfigShort,
	Long:  MsgGenconfigLong,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.DefaultTOML()
		if err != nil {
			return fmt.Errorf(MsgErrGenconfig, err)
		}
		if !genconfigWrite {
			fmt.Print(string(data))
			return nil
		}
		path := filepath.Join(projectDir, ".devopstemplate.toml")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf(MsgErrGenconfig, err)
		}
		fmt.Printf(MsgConfigWritten, path)
		return nil
	},
}

func init() {
	genconfigCmd.Flags().BoolVarP(&genconfigWrite, "write", "w", false, MsgFlagWrite)
}
