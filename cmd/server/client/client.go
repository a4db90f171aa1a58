// Package client provides commands that call a running vtm-api server
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	v1alpha1 "github.com/KirkDiggler/vtm-api/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Roll context flags
	chronicleID string
	sessionID   string
	characterID string
	description string
	secret      bool

	asJSON bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the vtm-api services",
	Long:  `Client commands make real gRPC requests against a running vtm-api server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the raw response as JSON")

	ClientCmd.PersistentFlags().StringVar(&chronicleID, "chronicle", "", "Chronicle to log rolls to")
	ClientCmd.PersistentFlags().StringVar(&sessionID, "session", "", "Session the roll belongs to")
	ClientCmd.PersistentFlags().StringVar(&characterID, "character", "", "Character making the roll")
	ClientCmd.PersistentFlags().StringVar(&description, "description", "", "What the roll is for")
	ClientCmd.PersistentFlags().BoolVar(&secret, "secret", false, "Hide the roll from players")

	// Dice
	ClientCmd.AddCommand(rollV5Cmd)
	ClientCmd.AddCommand(willpowerCmd)
	ClientCmd.AddCommand(remorseCmd)
	ClientCmd.AddCommand(rollV20Cmd)
	ClientCmd.AddCommand(soakCmd)
	ClientCmd.AddCommand(historyCmd)

	// Vitae
	ClientCmd.AddCommand(rouseCmd)
	ClientCmd.AddCommand(frenzyCmd)
	ClientCmd.AddCommand(hungerCmd)
	ClientCmd.AddCommand(bloodPotencyCmd)
	ClientCmd.AddCommand(bloodCmd)

	// Initiative
	ClientCmd.AddCommand(initiativeCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

func createDiceClient() (v1alpha1.DiceServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}
	return v1alpha1.NewDiceServiceClient(conn), closer(conn), nil
}

func createVitaeClient() (v1alpha1.VitaeServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}
	return v1alpha1.NewVitaeServiceClient(conn), closer(conn), nil
}

func createInitiativeClient() (v1alpha1.InitiativeServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}
	return v1alpha1.NewInitiativeServiceClient(conn), closer(conn), nil
}

func closer(conn *grpc.ClientConn) func() {
	return func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
}

func rollContext() *v1alpha1.RollContext {
	if chronicleID == "" && sessionID == "" && characterID == "" && description == "" && !secret {
		return nil
	}
	return &v1alpha1.RollContext{
		ChronicleID: chronicleID,
		SessionID:   sessionID,
		CharacterID: characterID,
		Description: description,
		Secret:      secret,
	}
}

// printJSON writes resp indented when --json is set and reports whether it did
func printJSON(resp any) (bool, error) {
	if !asJSON {
		return false, nil
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return true, enc.Encode(resp)
}

func printRollID(rollID string) {
	if rollID != "" {
		fmt.Printf("  Logged as: %s\n", rollID)
	}
}
