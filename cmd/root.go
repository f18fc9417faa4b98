package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/jsh-shell/jsh/core/config"
	"github.com/jsh-shell/jsh/core/shell"
)

var (
	cfgPath     string
	commandLine string
)

// loadConfig reads the configuration, falling back to the built-in
// defaults when no config.yaml exists yet.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return configuration, err
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "jsh",
	Short: "A small interactive command interpreter",
	Long: `jsh is a minimal shell: builtin commands (cd, help, exit), external
programs, and two-stage pipelines joined with '|'.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if commandLine != "" {
			return runOneCommand(cmd, commandLine)
		}

		s, err := shell.NewShell(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		return s.Run()
	},
}

// runOneCommand tokenizes and executes a single line, for `jsh -c`.
func runOneCommand(cmd *cobra.Command, line string) error {
	tokens, err := shell.Split(line)
	if err != nil {
		return err
	}

	executor := shell.NewExecutor(os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if executor.Exec(tokens) == shell.StatusFailed {
		return fmt.Errorf("command failed: %s", line)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "execute a single command line and exit")
}
