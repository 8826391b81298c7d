package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func encryptCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file under the public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(inPath)
			if err != nil {
				return err
			}
			defer closeIn()

			out, closeOut, err := openOutput(outPath)
			if err != nil {
				return err
			}

			pub, err := appCtx.Cipher.Encrypt(in, out)
			if err != nil {
				_ = closeOut()
				return err
			}
			if err := closeOut(); err != nil {
				return err
			}

			if verbose {
				w := cmd.ErrOrStderr()
				fmt.Fprintf(w, "Username: %s\n", pub.Username)
				fmt.Fprintf(w, "n (%d bits) = %d\n", pub.N.BitLen(), pub.N)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	return cmd
}
