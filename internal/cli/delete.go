package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <number>",
		Short: "Delete a contact by its list number",
		Long: `Delete removes the contact with the given number, as shown by
"contacts list". Later contacts move up by one.

Example:
  contacts delete 2`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return userError(fmt.Errorf("%w: %q", types.ErrInvalidIndex, args[0]))
	}

	sess, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer sess.Close()

	removed, err := sess.store.Get(index)
	if err != nil {
		return userError(err)
	}
	if err := sess.store.Delete(index); err != nil {
		if errors.Is(err, types.ErrInvalidIndex) {
			return userError(err)
		}
		return sysError(err)
	}

	if flags.jsonMode {
		output, err := json.MarshalIndent(map[string]any{
			"deleted": index,
			"label":   removed.Label,
			"status":  "success",
		}, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal result: %w", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Contact deleted successfully! (%d %s)\n", index, removed.Label)
	return nil
}
