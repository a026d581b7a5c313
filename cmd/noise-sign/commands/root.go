package commands

import (
	"io"
	"os"
	"strings"

	"github.com/perlin-network/sign"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// env carries the configuration and logger shared by every subcommand.
type env struct {
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCommand builds the noise-sign command tree. Every flag may also be set through a
// NOISE_SIGN_* environment variable or a config file passed with --config.
func NewRootCommand() *cobra.Command {
	e := &env{v: viper.New(), logger: zap.NewNop()}

	e.v.SetEnvPrefix("NOISE_SIGN")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "noise-sign",
		Short:        "Generate keys, sign and verify with Noise signature algorithms",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			if path := e.v.GetString("config"); path != "" {
				e.v.SetConfigFile(path)

				if err := e.v.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "failed to read config file %s", path)
				}
			}

			if e.v.GetBool("verbose") {
				logger, err := zap.NewDevelopment(zap.AddStacktrace(zap.PanicLevel))
				if err != nil {
					return err
				}

				e.logger = logger
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
	}

	root.PersistentFlags().String("scheme", sign.IDEd25519.String(), "signature algorithm (Ed25519 or Ed448)")
	root.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log to stderr")

	root.AddCommand(
		keygenCmd(e),
		pubkeyCmd(e),
		checkCmd(e),
		signCmd(e),
		verifyCmd(e),
		fingerprintCmd(e),
	)

	return root
}

func (e *env) state() (*sign.State, error) {
	return sign.NewStateByName(e.v.GetString("scheme"), sign.WithStateLogger(e.logger))
}

// loadKey decodes the hex value of the flag named key.
func (e *env) loadKey(key string, size int) ([]byte, error) {
	value := e.v.GetString(key)
	if value == "" {
		return nil, errors.Errorf("--%s is required", key)
	}

	buf, err := sign.LoadKeyFromHex(value, size)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", key)
	}

	return buf, nil
}

// readMessage reads the message named by --in, or stdin when --in is empty or "-".
func (e *env) readMessage(cmd *cobra.Command) ([]byte, error) {
	var r io.Reader = cmd.InOrStdin()

	if path := e.v.GetString("in"); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open message")
		}
		defer f.Close()

		r = f
	}

	message, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message")
	}

	return message, nil
}
