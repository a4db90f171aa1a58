// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/vtm-api/cmd/server/client"
)

// envPrefix scopes environment overrides, e.g. VTM_GRPC_PORT
const envPrefix = "VTM"

var replacer = strings.NewReplacer("-", "_")

var rootCmd = &cobra.Command{
	Use:   "vtm-api",
	Short: "Vampire: The Masquerade rules API",
	Long: `vtm-api serves V5 and V20 dice resolution, Hunger and Blood Potency,
the V20 Blood Pool and combat initiative over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv()
}
