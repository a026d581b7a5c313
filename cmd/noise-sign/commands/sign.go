package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message read from --in or stdin and print the signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.state()
			if err != nil {
				return err
			}
			defer st.Clear()

			privateKey, err := e.loadKey("private-key", st.PrivateKeyLength())
			if err != nil {
				return err
			}

			if err := st.SetKeypairPrivate(privateKey); err != nil {
				return err
			}

			message, err := e.readMessage(cmd)
			if err != nil {
				return err
			}

			signature, err := st.Sign(message)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(signature))
			return err
		},
	}

	cmd.Flags().String("private-key", "", "hex-encoded private key")
	cmd.Flags().String("in", "", "message file (default stdin)")

	return cmd
}
