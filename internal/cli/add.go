package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newAddCmd() *cobra.Command {
	var c types.Contact
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add appends a contact to the end of the list and saves the file.

Fields longer than their limits are cut: phone 14, label 29, company and
email 49 characters.

Example:
  contacts add --phone 555-1234 --label Alice
  contacts add --phone 555-5678 --label Bob --company Acme --email bob@acme.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, c)
		},
	}
	cmd.Flags().StringVar(&c.Phone, "phone", "", "phone number (required)")
	cmd.Flags().StringVar(&c.Label, "label", "", "name (required)")
	cmd.Flags().StringVar(&c.Company, "company", "", "company name")
	cmd.Flags().StringVar(&c.Email, "email", "", "email address")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("label")
	return cmd
}

func runAdd(cmd *cobra.Command, c types.Contact) error {
	if strings.TrimSpace(c.Phone) == "" {
		return userError(fmt.Errorf("%w: --phone", types.ErrFieldEmpty))
	}
	if strings.TrimSpace(c.Label) == "" {
		return userError(fmt.Errorf("%w: --label", types.ErrFieldEmpty))
	}

	sess, err := openSession(cmd, true)
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.store.Add(c); err != nil {
		if errors.Is(err, types.ErrListFull) {
			return userError(err)
		}
		return sysError(err)
	}

	index := sess.store.Len()
	if flags.jsonMode {
		saved, err := sess.store.Get(index)
		if err != nil {
			return sysError(err)
		}
		output, err := json.MarshalIndent(struct {
			Index int `json:"index"`
			types.Contact
		}{index, saved}, "", "  ")
		if err != nil {
			return sysError(fmt.Errorf("marshal contact: %w", err))
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Contact saved! (%d)\n", index)
	return nil
}
