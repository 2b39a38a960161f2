package auth

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bobby/zonesync/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an AWS credential pair",
		Long: `Store an AWS access key ID and secret access key in the local keychain.

Example:
  zonesync auth login`,
		Args: cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			accessKey, err := cmd.Flags().GetString("access-key-id")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			accessKey = strings.TrimSpace(accessKey)
			if accessKey == "" {
				fmt.Fprint(os.Stdout, "Enter AWS access key ID: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				accessKey = strings.TrimSpace(line)
			}

			if accessKey == "" {
				fmt.Fprintln(os.Stderr, "access key ID cannot be empty")
				return
			}

			secretKey, err := cmd.Flags().GetString("secret-access-key")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			secretKey = strings.TrimSpace(secretKey)
			if secretKey == "" {
				fmt.Fprint(os.Stdout, "Enter AWS secret access key: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				secretKey = strings.TrimSpace(string(bytes))
			}

			if secretKey == "" {
				fmt.Fprintln(os.Stderr, "secret access key cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.SetSecret(auth.AccessKeyEntry, accessKey); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}
			if err := store.SetSecret(auth.SecretKeyEntry, secretKey); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintln(os.Stdout, "Saved AWS credentials")
		},
	}

	cmd.Flags().String("access-key-id", "", "AWS access key ID (optional, overrides prompt)")
	cmd.Flags().String("secret-access-key", "", "AWS secret access key (optional, overrides prompt)")

	return cmd
}
