package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/render"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Display all contacts",
		Long: `List prints every contact in order, numbered from 1.

Example:
  contacts list
  contacts list --json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer sess.Close()

	contacts := sess.store.List()
	if flags.jsonMode {
		if contacts == nil {
			contacts = []types.Contact{}
		}
		output, err := json.MarshalIndent(contacts, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal contacts: %w", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), render.Contacts(sess.styler, contacts))
	return nil
}
