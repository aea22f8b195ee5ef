// Package authcmd holds the sign-in, sign-up, and sign-out commands.
package authcmd

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for authentication operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your Heart Beat session",
	Long:  `Commands for signing in, creating an account, and checking who you are.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(whoamiCmd)
}
