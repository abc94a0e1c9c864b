package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cinematch/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize cinematch configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure cinematch and generates a .cinematch.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
