package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func decryptCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file under the private key",
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

			priv, err := appCtx.Cipher.Decrypt(passphrase, in, out)
			if err != nil {
				_ = closeOut()
				return err
			}
			if err := closeOut(); err != nil {
				return err
			}

			if verbose {
				w := cmd.ErrOrStderr()
				fmt.Fprintf(w, "pq (%d bits) = %d\n", priv.PQ.BitLen(), priv.PQ)
				fmt.Fprintf(w, "d  (%d bits) = %d\n", priv.D.BitLen(), priv.D)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "input file (default: stdin)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	return cmd
}
