// Package client provides test commands for the Cardastika gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/cardastika-api/internal/handlers/equipment/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	ownerID    string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Cardastika API",
	Long:  `Client commands allow you to test the Cardastika API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&ownerID, "owner", "", "Owner id (server default when empty)")

	ClientCmd.AddCommand(callCmd)
	ClientCmd.AddCommand(summaryCmd)
	ClientCmd.AddCommand(seedDemoCmd)

	// Inventory commands
	ClientCmd.AddCommand(addItemCmd)
	ClientCmd.AddCommand(equipItemCmd)
	ClientCmd.AddCommand(unequipItemCmd)
	ClientCmd.AddCommand(equipBestCmd)

	// Forge commands
	ClientCmd.AddCommand(forgeCmd)
	ClientCmd.AddCommand(quickForgeCmd)
	ClientCmd.AddCommand(atelierCmd)
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

// createEquipmentClient creates an equipment service client
func createEquipmentClient() (v1alpha1.EquipmentServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := v1alpha1.NewEquipmentServiceClient(conn)
	return client, cleanup, nil
}

// invoke sends fields to method, adding the --owner flag, and prints the response
func invoke(method string, fields map[string]any) error {
	if fields == nil {
		fields = map[string]any{}
	}
	if ownerID != "" {
		fields["ownerId"] = ownerID
	}

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return send(method, req)
}

func send(method string, req *structpb.Struct) error {
	client, cleanup, err := createEquipmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := v1alpha1.ToJSON(resp)
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if ok, found := resp.GetFields()["ok"]; found && !ok.GetBoolValue() {
		fmt.Printf("\nrefused: %s\n", resp.GetFields()["reason"].GetStringValue())
	}
	return nil
}
