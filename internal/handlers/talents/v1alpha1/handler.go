// Package v1alpha1 serves the talent orchestrator over gRPC
package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/errors"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/talents"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	TalentService talents.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.TalentService == nil {
		return errors.InvalidArgument("talent service is required")
	}
	return nil
}

// Handler implements TalentServiceServer
type Handler struct {
	UnimplementedTalentServiceServer
	talentService talents.Service
}

var _ TalentServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		talentService: cfg.TalentService,
	}, nil
}

// ListTrees returns every loaded tree
func (h *Handler) ListTrees(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.ListTrees(ctx, &talents.ListTreesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		FieldTrees: treesToList(output.Trees),
	})
}

// GetTree returns one tree and its row states
func (h *Handler) GetTree(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.GetTree(ctx, &talents.GetTreeInput{
		Name: stringField(req, FieldTree),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		FieldTree: treeToMap(output.Tree),
		FieldRows: rowsToList(output.RowStates),
	})
}

// GetProgression returns level and experience
func (h *Handler) GetProgression(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.GetProgression(ctx, &talents.GetProgressionInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		FieldProgression: progressionToMap(output.Progression),
		"treeCount":      output.TreeCount,
	})
}

// GetStatus reports the installed configuration generation
func (h *Handler) GetStatus(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.GetStatus(ctx, &talents.GetStatusInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := map[string]any{
		"loaded":     output.Loaded,
		"generation": output.Generation,
		"treeCount":  output.TreeCount,
	}
	if output.Loaded {
		resp["loadedAt"] = output.LoadedAt.UTC().Format(time.RFC3339)
	}
	return respond(resp)
}

// Allocate spends a point. Capped and locked attempts are successful
// responses with allowed=false.
func (h *Handler) Allocate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.Allocate(ctx, &talents.AllocateInput{
		Tree:     stringField(req, FieldTree),
		TalentID: scalarField(req, FieldTalentID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"outcome":        string(output.Outcome),
		"allowed":        output.Allowed,
		FieldTalent:      talentToMap(output.Talent),
		"pointsSpent":    output.PointsSpent,
		"requirement":    output.Requirement,
		FieldRows:        rowsToList(output.RowStates),
		FieldProgression: progressionToMap(output.Progression),
	})
}

// Reclaim refunds a point
func (h *Handler) Reclaim(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.Reclaim(ctx, &talents.ReclaimInput{
		Tree:     stringField(req, FieldTree),
		TalentID: scalarField(req, FieldTalentID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"outcome":        string(output.Outcome),
		"allowed":        output.Allowed,
		FieldTalent:      talentToMap(output.Talent),
		"pointsSpent":    output.PointsSpent,
		FieldRows:        rowsToList(output.RowStates),
		FieldProgression: progressionToMap(output.Progression),
	})
}

// AddTalent adds a talent described by the "talent" struct
func (h *Handler) AddTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	talent, err := talentFromStruct(req.GetFields()[FieldTalent].GetStructValue())
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.talentService.AddTalent(ctx, &talents.AddTalentInput{
		Tree:   stringField(req, FieldTree),
		Talent: talent,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		FieldTalent:      talentToMap(output.Talent),
		FieldProgression: progressionToMap(output.Progression),
	})
}

// RemoveTalent deletes a talent
func (h *Handler) RemoveTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.RemoveTalent(ctx, &talents.RemoveTalentInput{
		Tree:     stringField(req, FieldTree),
		TalentID: scalarField(req, FieldTalentID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		FieldTalent:      talentToMap(output.Talent),
		FieldProgression: progressionToMap(output.Progression),
	})
}

// EditTalent changes one property; numeric values may be sent as numbers or strings
func (h *Handler) EditTalent(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.EditTalent(ctx, &talents.EditTalentInput{
		Tree:     stringField(req, FieldTree),
		TalentID: scalarField(req, FieldTalentID),
		Field:    entities.TalentField(stringField(req, FieldField)),
		Value:    scalarField(req, FieldValue),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		FieldTalent: talentToMap(output.Talent),
		FieldRows:   rowsToList(output.RowStates),
	})
}

// ReloadTrees re-reads tree configuration from the server's source
func (h *Handler) ReloadTrees(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.talentService.ReloadTrees(ctx, &talents.ReloadTreesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(map[string]any{
		"generation":     output.Generation,
		FieldTrees:       treesToList(output.Trees),
		"warnings":       warningsToList(output.Warnings),
		FieldProgression: progressionToMap(output.Progression),
	})
}

func respond(m map[string]any) (*structpb.Struct, error) {
	out, err := toStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
