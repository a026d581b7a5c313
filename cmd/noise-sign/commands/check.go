package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that a public key belongs to a private key",
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

			publicKey, err := e.loadKey("public-key", st.PublicKeyLength())
			if err != nil {
				return err
			}

			if err := st.SetKeypair(privateKey, publicKey); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}

	cmd.Flags().String("private-key", "", "hex-encoded private key")
	cmd.Flags().String("public-key", "", "hex-encoded public key")

	return cmd
}
