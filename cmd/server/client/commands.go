package client

import (
	"context"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/talent-api/internal/entities"
	"github.com/KirkDiggler/talent-api/internal/handlers/talents/v1alpha1"
)

var treesCmd = &cobra.Command{
	Use:   "trees",
	Short: "List every loaded tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.ListTrees(ctx)
		}, renderTrees)
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [tree]",
	Short: "Show one tree and its row states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.GetTree(ctx, args[0])
		}, renderTreeResponse)
	},
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Show player level and experience",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.GetProgression(ctx)
		}, renderProgressionResponse)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which configuration generation is loaded",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.GetStatus(ctx)
		}, renderStatus)
	},
}

var allocateCmd = &cobra.Command{
	Use:   "allocate [tree] [talent]",
	Short: "Spend one point on a talent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.Allocate(ctx, args[0], args[1])
		}, renderCommand)
	},
}

var reclaimCmd = &cobra.Command{
	Use:   "reclaim [tree] [talent]",
	Short: "Refund one point from a talent",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.Reclaim(ctx, args[0], args[1])
		}, renderCommand)
	},
}

var (
	addID          string
	addName        string
	addDescription string
	addImageURL    string
	addMaxPoints   int
	addRow         int
)

var addTalentCmd = &cobra.Command{
	Use:   "add-talent [tree]",
	Short: "Add a talent to a tree",
	Long:  `Add a talent to a tree. When --id is omitted the server generates one.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		talent := entities.Talent{
			ID:          addID,
			Name:        addName,
			Description: addDescription,
			ImageURL:    addImageURL,
			MaxPoints:   addMaxPoints,
			Row:         addRow,
		}
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.AddTalent(ctx, args[0], talent)
		}, renderTalentChange)
	},
}

var removeTalentCmd = &cobra.Command{
	Use:   "remove-talent [tree] [talent]",
	Short: "Remove a talent and refund its points",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.RemoveTalent(ctx, args[0], args[1])
		}, renderTalentChange)
	},
}

var editTalentCmd = &cobra.Command{
	Use:   "edit-talent [tree] [talent] [field] [value]",
	Short: "Set name, description, imageUrl, maxPoints or row on a talent",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.EditTalent(ctx, args[0], args[1], entities.TalentField(args[2]), args[3])
		}, renderTalentChange)
	},
}

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload tree configuration on the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, func(ctx context.Context, c *v1alpha1.Client) (*structpb.Struct, error) {
			return c.ReloadTrees(ctx)
		}, renderReload)
	},
}

func init() {
	addTalentCmd.Flags().StringVar(&addID, "id", "", "Talent id (generated when empty)")
	addTalentCmd.Flags().StringVar(&addName, "name", "", "Display name")
	addTalentCmd.Flags().StringVar(&addDescription, "description", "", "Description")
	addTalentCmd.Flags().StringVar(&addImageURL, "image-url", "", "Image URL")
	addTalentCmd.Flags().IntVar(&addMaxPoints, "max-points", 1, "Maximum points")
	addTalentCmd.Flags().IntVar(&addRow, "row", 1, "Row")
}
