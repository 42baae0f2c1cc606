// Package main implements a small utility that prints bcrypt hashes for
// seeding users directly into the database.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-generator [password...]",
		Short: "Print bcrypt hashes for the given passwords",
		Long: "Prints one bcrypt hash per password. Passwords are taken from the " +
			"arguments, or read one per line from stdin when no arguments are given.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
				return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
			}

			passwords := args
			if len(passwords) == 0 {
				var err error
				if passwords, err = readPasswords(in); err != nil {
					return err
				}
			}
			if len(passwords) == 0 {
				return fmt.Errorf("no passwords given")
			}

			return writeHashes(out, auth.NewBcryptHasher(cost), passwords)
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")
	return cmd
}

func readPasswords(in io.Reader) ([]string, error) {
	var passwords []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			passwords = append(passwords, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read passwords: %w", err)
	}
	return passwords, nil
}

func writeHashes(out io.Writer, hasher auth.PasswordHasher, passwords []string) error {
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}
