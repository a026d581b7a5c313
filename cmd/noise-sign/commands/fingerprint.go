package commands

import (
	"fmt"

	"github.com/perlin-network/sign"
	"github.com/spf13/cobra"
)

func fingerprintCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of a public key",
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

			typ := sign.FingerprintBasic
			if e.v.GetBool("full") {
				typ = sign.FingerprintFull
			}

			fingerprint, err := st.Fingerprint(typ)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), fingerprint)
			return err
		},
	}

	cmd.Flags().String("public-key", "", "hex-encoded public key")
	cmd.Flags().Bool("full", false, "print all 32 bytes of the fingerprint")

	return cmd
}
