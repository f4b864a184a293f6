/*
Copyright WalletGate Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package auth-rest OAuth2/OIDC Authorization Server for Verifiable Credentials REST API.
//
// Terms Of Service:
//
//	Schemes: http, https
//	Version: 0.1.0
//	License: SPDX-License-Identifier: Apache-2.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/walletgate/vc-auth/cmd/auth-rest/startcmd"
)

var logger = log.New("auth-rest")

func main() {
	rootCmd := &cobra.Command{
		Use: "auth-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(&startcmd.HTTPServer{}))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run auth-rest", log.WithError(err))
	}
}
