package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
)

// Client wraps TalentServiceClient with typed requests. Errors come back
// as *errors.Error with the server's code and metadata restored.
type Client struct {
	rpc TalentServiceClient
}

// NewClient creates a client on conn
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{rpc: NewTalentServiceClient(conn)}
}

type unaryCall func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

func call(ctx context.Context, fn unaryCall, req map[string]any) (*structpb.Struct, error) {
	if req == nil {
		req = map[string]any{}
	}
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid request: %v", err)
	}

	out, err := fn(ctx, in)
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return out, nil
}

// ListTrees lists every loaded tree
func (c *Client) ListTrees(ctx context.Context) (*structpb.Struct, error) {
	return call(ctx, c.rpc.ListTrees, nil)
}

// GetTree fetches a single tree
func (c *Client) GetTree(ctx context.Context, tree string) (*structpb.Struct, error) {
	return call(ctx, c.rpc.GetTree, map[string]any{FieldTree: tree})
}

// GetProgression fetches level and experience
func (c *Client) GetProgression(ctx context.Context) (*structpb.Struct, error) {
	return call(ctx, c.rpc.GetProgression, nil)
}

// GetStatus fetches the installed configuration generation
func (c *Client) GetStatus(ctx context.Context) (*structpb.Struct, error) {
	return call(ctx, c.rpc.GetStatus, nil)
}

// Allocate spends a point on a talent
func (c *Client) Allocate(ctx context.Context, tree, talentID string) (*structpb.Struct, error) {
	return call(ctx, c.rpc.Allocate, map[string]any{FieldTree: tree, FieldTalentID: talentID})
}

// Reclaim refunds a point from a talent
func (c *Client) Reclaim(ctx context.Context, tree, talentID string) (*structpb.Struct, error) {
	return call(ctx, c.rpc.Reclaim, map[string]any{FieldTree: tree, FieldTalentID: talentID})
}

// AddTalent adds a talent; an empty id is generated by the server
func (c *Client) AddTalent(ctx context.Context, tree string, talent entities.Talent) (*structpb.Struct, error) {
	return call(ctx, c.rpc.AddTalent, map[string]any{
		FieldTree:   tree,
		FieldTalent: talentToMap(&talent),
	})
}

// RemoveTalent deletes a talent
func (c *Client) RemoveTalent(ctx context.Context, tree, talentID string) (*structpb.Struct, error) {
	return call(ctx, c.rpc.RemoveTalent, map[string]any{FieldTree: tree, FieldTalentID: talentID})
}

// EditTalent sets one talent property
func (c *Client) EditTalent(ctx context.Context, tree, talentID string, field entities.TalentField, value string) (*structpb.Struct, error) {
	return call(ctx, c.rpc.EditTalent, map[string]any{
		FieldTree:     tree,
		FieldTalentID: talentID,
		FieldField:    string(field),
		FieldValue:    value,
	})
}

// ReloadTrees asks the server to re-read its tree source
func (c *Client) ReloadTrees(ctx context.Context) (*structpb.Struct, error) {
	return call(ctx, c.rpc.ReloadTrees, nil)
}
