package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature of a message read from --in or stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.state()
			if err != nil {
				return err
			}

			publicKey, err := e.loadKey("public-key", st.PublicKeyLength())
			if err != nil {
				return err
			}

			if err := st.SetPublicKey(publicKey); err != nil {
				return err
			}

			signature, err := e.loadKey("signature", st.SignatureLength())
			if err != nil {
				return err
			}

			message, err := e.readMessage(cmd)
			if err != nil {
				return err
			}

			if err := st.Verify(message, signature); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}

	cmd.Flags().String("public-key", "", "hex-encoded public key")
	cmd.Flags().String("signature", "", "hex-encoded signature")
	cmd.Flags().String("in", "", "message file (default stdin)")

	return cmd
}
