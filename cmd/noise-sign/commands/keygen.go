package commands

import (
	"encoding/hex"
	"encoding/json"

	"github.com/spf13/cobra"
)

type keypairJSON struct {
	Scheme     string `json:"scheme"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

func keygenCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a keypair and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := e.state()
			if err != nil {
				return err
			}
			defer st.Clear()

			st.GenerateKeypair()

			privateKey, publicKey, err := st.Keypair()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(keypairJSON{
				Scheme:     st.ID().String(),
				PrivateKey: hex.EncodeToString(privateKey),
				PublicKey:  hex.EncodeToString(publicKey),
			})
		},
	}
}
