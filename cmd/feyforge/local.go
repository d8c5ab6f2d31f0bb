package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmdrew96/FeyForge-sub001/internal/app"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

func newLocalCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Manage campaigns, NPCs and codex bookmarks stored on this machine",
	}
	cmd.AddCommand(newLocalCampaignCmd(e), newLocalNPCCmd(e), newLocalCodexCmd(e))
	return cmd
}

// withLocal opens the local stores for the duration of fn.
func withLocal(e *env, fn func(*app.Local) error) error {
	l, err := app.OpenLocal(e.cfg.Local, e.log)
	if err != nil {
		return err
	}
	return errors.Join(fn(l), l.Close())
}

func newLocalCampaignCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "campaign", Short: "Local campaigns"}

	var description string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLocal(e, func(l *app.Local) error {
				c, err := l.Campaigns.Create(args[0], description)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&description, "description", "", "campaign description")

	var rename string
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change a campaign's name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.CampaignPatch
			if cmd.Flags().Changed("name") {
				patch.Name = optional.Some(rename)
			}
			if cmd.Flags().Changed("description") {
				patch.Description = optional.Some(description)
			}
			return withLocal(e, func(l *app.Local) error {
				_, err := l.Campaigns.Update(args[0], patch)
				return err
			})
		},
	}
	update.Flags().StringVar(&rename, "name", "", "new name")
	update.Flags().StringVar(&description, "description", "", "new description")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List campaigns; the active one is starred",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withLocal(e, func(l *app.Local) error {
					active := l.Campaigns.ActiveID().OrElse("")
					var rows [][]any
					for _, c := range l.Campaigns.Campaigns() {
						rows = append(rows, []any{mark(c.ID == active), c.ID, c.Name, len(l.NPCs.ByCampaign(c.ID))})
					}
					return table(cmd.OutOrStdout(), "\tID\tNAME\tNPCS", rows)
				})
			},
		},
		create,
		update,
		&cobra.Command{
			Use:   "use ID",
			Short: "Select the active campaign",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return withLocal(e, func(l *app.Local) error { return l.Campaigns.SetActive(args[0]) })
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a campaign and its NPCs",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withLocal(e, func(l *app.Local) error {
					n := l.DeleteCampaign(args[0])
					fmt.Fprintf(cmd.OutOrStdout(), "deleted campaign %s and %d NPCs\n", args[0], n)
					return nil
				})
			},
		},
	)
	return cmd
}

func newLocalNPCCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "npc", Short: "Local NPCs"}

	var campaignID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List NPCs of a campaign (default: the active one)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLocal(e, func(l *app.Local) error {
				id := campaignID
				if id == "" {
					id = l.Campaigns.ActiveID().OrElse("")
				}
				var rows [][]any
				for _, n := range l.NPCs.ByCampaign(id) {
					rows = append(rows, []any{n.ID, n.Name, n.Role, n.Importance})
				}
				return table(cmd.OutOrStdout(), "ID\tNAME\tROLE\tIMPORTANCE", rows)
			})
		},
	}
	list.Flags().StringVar(&campaignID, "campaign", "", "campaign id")

	var npc domain.NPC
	var importance, faction string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an NPC to a campaign (default: the active one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLocal(e, func(l *app.Local) error {
				n := npc
				n.Name = args[0]
				n.Importance = domain.Importance(importance)
				if n.CampaignID == "" {
					n.CampaignID = l.Campaigns.ActiveID().OrElse("")
				}
				if faction != "" {
					n.Faction = optional.Some(faction)
				}
				created, err := l.NPCs.Create(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), created.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&npc.CampaignID, "campaign", "", "campaign id")
	add.Flags().StringVar(&npc.Role, "role", "", "role in the story")
	add.Flags().StringVar(&importance, "importance", string(domain.ImportanceMinor), "minor, major or key")
	add.Flags().StringVar(&npc.Personality, "personality", "", "personality notes")
	add.Flags().StringVar(&npc.Goals, "goals", "", "goals")
	add.Flags().StringVar(&faction, "faction", "", "faction")

	cmd.AddCommand(
		list,
		add,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete an NPC",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return withLocal(e, func(l *app.Local) error {
					l.NPCs.Delete(args[0])
					return nil
				})
			},
		},
	)
	return cmd
}

func newLocalCodexCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "codex", Short: "Rules reference bookmarks"}

	var category string
	list := &cobra.Command{
		Use:   "list [QUERY]",
		Short: "List bookmarks, optionally filtered by category and query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLocal(e, func(l *app.Local) error {
				if category != "" {
					c := domain.CodexCategory(category)
					if !c.IsValid() {
						return domain.NewValidationError("category", "unknown category")
					}
					l.Codex.SetActiveCategory(optional.Some(c))
				}
				if len(args) == 1 {
					l.Codex.SetSearchQuery(args[0])
				}
				var rows [][]any
				for _, b := range l.Codex.Search() {
					rows = append(rows, []any{b.ID, b.Category, b.Name})
				}
				return table(cmd.OutOrStdout(), "ID\tCATEGORY\tNAME", rows)
			})
		},
	}
	list.Flags().StringVar(&category, "category", "", "one of "+categoryNames())

	bookmark := &cobra.Command{
		Use:   "bookmark CATEGORY SLUG NAME",
		Short: "Bookmark a catalog entry",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLocal(e, func(l *app.Local) error {
				b, err := l.Codex.AddBookmark(domain.Bookmark{
					Category: domain.CodexCategory(args[0]),
					Slug:     args[1],
					Name:     args[2],
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), b.ID)
				return nil
			})
		},
	}

	cmd.AddCommand(
		list,
		bookmark,
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a bookmark",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return withLocal(e, func(l *app.Local) error {
					l.Codex.RemoveBookmark(args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every bookmark",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return withLocal(e, func(l *app.Local) error {
					l.Codex.ClearBookmarks()
					return nil
				})
			},
		},
	)
	return cmd
}

func categoryNames() string {
	cats := domain.CodexCategories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
