package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and a default config.yaml if none exists.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	configPath := filepath.Join(configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	// Opening a session validates the config and creates the sqlite database
	// when that backend is selected.
	sess, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer sess.Close()

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintln(out, "Contacts initialized successfully")
	} else {
		fmt.Fprintln(out, "Contacts already initialized")
	}
	fmt.Fprintln(out, "  config:", configPath)
	fmt.Fprintln(out, "  data:  ", sess.config.File)
	return nil
}
