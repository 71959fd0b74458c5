// Package client provides CLI commands that call the talent gRPC service
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/handlers/talents/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the talent service",
	Long:  `Client commands call a running talent-api server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the raw response as JSON")

	// Queries
	ClientCmd.AddCommand(treesCmd)
	ClientCmd.AddCommand(treeCmd)
	ClientCmd.AddCommand(progressionCmd)
	ClientCmd.AddCommand(statusCmd)

	// Player commands
	ClientCmd.AddCommand(allocateCmd)
	ClientCmd.AddCommand(reclaimCmd)

	// Administration
	ClientCmd.AddCommand(addTalentCmd)
	ClientCmd.AddCommand(removeTalentCmd)
	ClientCmd.AddCommand(editTalentCmd)
	ClientCmd.AddCommand(reloadCmd)
}

// createTalentClient dials the server and returns a client with its cleanup
func createTalentClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}
	return v1alpha1.NewClient(conn), cleanup, nil
}

// call runs fn against a fresh connection and prints the result with render
func call(cmd *cobra.Command, fn func(context.Context, *v1alpha1.Client) (*structpb.Struct, error), render func(io.Writer, *structpb.Struct)) error {
	client, cleanup, err := createTalentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, resp)
	}
	render(out, resp)
	return nil
}

func printJSON(w io.Writer, resp *structpb.Struct) error {
	marshaler := protojson.MarshalOptions{Indent: "  "}
	data, err := marshaler.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
