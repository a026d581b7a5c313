package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Derive the public key of a private key",
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

			publicKey, err := st.PublicKey()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(publicKey))
			return err
		},
	}

	cmd.Flags().String("private-key", "", "hex-encoded private key")

	return cmd
}
