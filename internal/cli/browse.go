package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/browse"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse and delete contacts in a full-screen view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := browse.Run(sess.store, sess.styler, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}
