package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sscrypt/internal/domain"
)

func keygenCmd() *cobra.Command {
	var (
		bits       uint
		iterations uint
		seed       uint64
	)
	user := os.Getenv("USER")

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a public/private key pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().Unix())
			}

			kp, priv, err := appCtx.Keys.Generate(domain.KeyGenParams{
				TotalBits:  bits,
				Iterations: iterations,
				Seed:       seed,
				Username:   domain.Username(user),
				Passphrase: passphrase,
			})
			if err != nil {
				return err
			}

			if verbose {
				w := cmd.ErrOrStderr()
				fmt.Fprintf(w, "Username: %s\n", user)
				fmt.Fprintf(w, "p  (%d bits) = %d\n", kp.P.BitLen(), kp.P)
				fmt.Fprintf(w, "q  (%d bits) = %d\n", kp.Q.BitLen(), kp.Q)
				fmt.Fprintf(w, "n  (%d bits) = %d\n", kp.N.BitLen(), kp.N)
				fmt.Fprintf(w, "pq (%d bits) = %d\n", priv.PQ.BitLen(), priv.PQ)
				fmt.Fprintf(w, "d  (%d bits) = %d\n", priv.D.BitLen(), priv.D)
			}
			return nil
		},
	}

	cmd.Flags().UintVarP(&bits, "bits", "b", 256, "bit length of the public modulus")
	cmd.Flags().UintVarP(&iterations, "iters", "i", 50, "Miller-Rabin iterations per primality check")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "PRNG seed (default: current Unix time)")
	cmd.Flags().StringVar(&user, "user", user, "username recorded in the public key")
	return cmd
}
