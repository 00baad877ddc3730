// Package cli implements the contacts command-line interface. Run without a
// subcommand it starts the interactive menu.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/menu"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	file      string
	backend   string
	color     string
	verbose   bool
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "contacts",
		Short: "A small contact book kept in a text file",
		Long: `Contacts keeps phone numbers, names, companies, and emails in a
plain text file (contacts.txt in the working directory by default).

Run without a subcommand to use the interactive menu.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		RunE:         runMenu,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.file, "file", "", "contacts file (default: ./contacts.txt)")
	root.PersistentFlags().StringVar(&flags.backend, "backend", "", "storage backend: text or sqlite (default: text)")
	root.PersistentFlags().StringVar(&flags.color, "color", "", "color output: auto, always, or never (default: auto)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newDeleteCmd())
	root.AddCommand(newBrowseCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func runMenu(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	loop := menu.New(sess.store, cmd.InOrStdin(), cmd.OutOrStdout(), sess.styler, sess.logger)
	loop.Run()
	return nil
}

// exitCodeError carries the process exit code for a failed command.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string { return e.err.Error() }
func (e *exitCodeError) Unwrap() error { return e.err }

// userError marks err as caused by bad input.
func userError(err error) error {
	return &exitCodeError{code: exitUserError, err: err}
}

// sysError marks err as an environment or storage failure.
func sysError(err error) error {
	return &exitCodeError{code: exitSysError, err: err}
}

// exitCode maps a command error to a process exit code. Errors that were not
// classified, such as flag parsing errors from cobra, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ec *exitCodeError
	if errors.As(err, &ec) {
		return ec.code
	}
	return exitUserError
}
