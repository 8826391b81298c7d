package commands

import (
	"github.com/spf13/cobra"

	"sscrypt/internal/app"
)

var (
	pubPath    string
	privPath   string
	passphrase string
	verbose    bool

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sscrypt",
		Short: "Schmidt-Samoa public-key encryption CLI",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.New(app.Config{PubPath: pubPath, PrivPath: privPath})
		},
	}

	root.PersistentFlags().StringVarP(&pubPath, "pub", "n", "ss.pub", "public key file")
	root.PersistentFlags().StringVarP(&privPath, "priv", "d", "ss.priv", "private key file")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the private key file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print key material to stderr")

	root.AddCommand(keygenCmd(), encryptCmd(), decryptCmd())
	return root.Execute()
}
