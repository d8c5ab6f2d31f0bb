package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmdrew96/FeyForge-sub001/internal/app"
	"github.com/lmdrew96/FeyForge-sub001/internal/domain"
	"github.com/lmdrew96/FeyForge-sub001/pkg/optional"
)

func newRemoteCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Work with campaign data stored on a FeyForge server",
	}
	cmd.AddCommand(
		newLoginCmd(e),
		newRegisterCmd(e),
		&cobra.Command{
			Use:   "logout",
			Short: "Sign out and forget the saved session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error { return r.Logout(cmd.Context()) })
			},
		},
		newRemoteCampaignsCmd(e),
		newRemoteWorldCmd(e),
		newRemoteConversationsCmd(e),
		newRemoteEncountersCmd(e),
	)
	return cmd
}

// withRemote opens the synced stores for the duration of fn.
func withRemote(cmd *cobra.Command, e *env, fn func(*app.Remote) error) error {
	r, err := app.OpenRemote(cmd.Context(), e.cfg, e.log)
	if err != nil {
		return err
	}
	return errors.Join(fn(r), r.Close(cmd.Context()))
}

// readPassword reads one line from stdin so passwords stay out of shell history.
func readPassword(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "login EMAIL",
		Short: "Sign in; the password is read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			return withRemote(cmd, e, func(r *app.Remote) error {
				s, err := r.Login(cmd.Context(), args[0], password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", greet(s.User))
				return nil
			})
		},
	}
}

func newRegisterCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "register EMAIL NAME",
		Short: "Create an account; the password is read from stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd)
			if err != nil {
				return err
			}
			return withRemote(cmd, e, func(r *app.Remote) error {
				s, err := r.Register(cmd.Context(), args[0], args[1], password)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "registered %s\n", greet(s.User))
				return nil
			})
		},
	}
}

func newRemoteCampaignsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "campaigns", Short: "Server campaigns"}

	var description string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRemote(cmd, e, func(r *app.Remote) error {
				c, err := r.Campaigns.Create(cmd.Context(), args[0], description)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.ID)
				return nil
			})
		},
	}
	create.Flags().StringVar(&description, "description", "", "campaign description")

	var name string
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Change a campaign's name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.CampaignPatch
			if cmd.Flags().Changed("name") {
				patch.Name = optional.Some(name)
			}
			if cmd.Flags().Changed("description") {
				patch.Description = optional.Some(description)
			}
			return withRemote(cmd, e, func(r *app.Remote) error {
				_, err := r.Campaigns.Update(cmd.Context(), args[0], patch)
				return err
			})
		},
	}
	update.Flags().StringVar(&name, "name", "", "new name")
	update.Flags().StringVar(&description, "description", "", "new description")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List campaigns",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					if err := r.Campaigns.Initialize(cmd.Context()); err != nil {
						return err
					}
					active := r.Campaigns.ActiveID().OrElse("")
					var rows [][]any
					for _, c := range r.Campaigns.All() {
						rows = append(rows, []any{mark(c.ID == active), c.ID, c.Name, c.UpdatedAt.Format("2006-01-02")})
					}
					return table(cmd.OutOrStdout(), "\tID\tNAME\tUPDATED", rows)
				})
			},
		},
		create,
		update,
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a campaign",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error { return r.Campaigns.Delete(cmd.Context(), args[0]) })
			},
		},
	)
	return cmd
}

func newRemoteWorldCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "world", Short: "Server world locations"}

	var loc domain.Location
	add := &cobra.Command{
		Use:   "add CAMPAIGN_ID NAME",
		Short: "Add a location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := loc
			l.CampaignID, l.Name = args[0], args[1]
			return withRemote(cmd, e, func(r *app.Remote) error {
				created, err := r.World.CreateLocation(cmd.Context(), l)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), created.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&loc.Region, "region", "", "region")
	add.Flags().StringVar(&loc.LocationType, "type", "", "location type")
	add.Flags().StringVar(&loc.Description, "description", "", "description")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list CAMPAIGN_ID",
			Short: "List the locations of a campaign",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					if err := r.World.InitializeByCampaign(cmd.Context(), args[0]); err != nil {
						return err
					}
					var rows [][]any
					for _, l := range r.World.ByCampaign(args[0]) {
						rows = append(rows, []any{mark(l.Visited), l.ID, l.Name, l.Region, l.LocationType})
					}
					return table(cmd.OutOrStdout(), "VISITED\tID\tNAME\tREGION\tTYPE", rows)
				})
			},
		},
		add,
		&cobra.Command{
			Use:   "visit CAMPAIGN_ID ID",
			Short: "Toggle whether the party has visited a location",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					if err := r.World.InitializeByCampaign(cmd.Context(), args[0]); err != nil {
						return err
					}
					l, err := r.World.ToggleVisited(cmd.Context(), args[1])
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s visited: %t\n", l.Name, l.Visited)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a location",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error { return r.World.DeleteLocation(cmd.Context(), args[0]) })
			},
		},
	)
	return cmd
}

func newRemoteConversationsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "conversations", Short: "Server DM conversations"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list CAMPAIGN_ID",
			Short: "List the conversations of a campaign",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					if err := r.Conversations.InitializeByCampaign(cmd.Context(), args[0]); err != nil {
						return err
					}
					var rows [][]any
					for _, c := range r.Conversations.ByCampaign(args[0]) {
						rows = append(rows, []any{c.ID, c.Title, len(c.Messages)})
					}
					return table(cmd.OutOrStdout(), "ID\tTITLE\tMESSAGES", rows)
				})
			},
		},
		&cobra.Command{
			Use:   "create CAMPAIGN_ID TITLE",
			Short: "Start a conversation",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					c, err := r.Conversations.Create(cmd.Context(), args[0], args[1])
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), c.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rename ID TITLE",
			Short: "Rename a conversation",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					_, err := r.Conversations.Rename(cmd.Context(), args[0], args[1])
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a conversation",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error { return r.Conversations.Delete(cmd.Context(), args[0]) })
			},
		},
	)
	return cmd
}

func newRemoteEncountersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "encounters", Short: "Server saved encounters"}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list CAMPAIGN_ID",
			Short: "List the saved encounters of a campaign",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					if err := r.Encounters.InitializeByCampaign(cmd.Context(), args[0]); err != nil {
						return err
					}
					var rows [][]any
					for _, enc := range r.Encounters.ByCampaign(args[0]) {
						rows = append(rows, []any{enc.ID, enc.Name, len(enc.Combatants), enc.Round})
					}
					return table(cmd.OutOrStdout(), "ID\tNAME\tCOMBATANTS\tROUND", rows)
				})
			},
		},
		&cobra.Command{
			Use:   "rename ID NAME",
			Short: "Rename a saved encounter",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error {
					_, err := r.Encounters.Rename(cmd.Context(), args[0], args[1])
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "delete ID",
			Short: "Delete a saved encounter",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withRemote(cmd, e, func(r *app.Remote) error { return r.Encounters.Delete(cmd.Context(), args[0]) })
			},
		},
	)
	return cmd
}

func greet(u *domain.User) string {
	if u == nil {
		return "unknown user"
	}
	return fmt.Sprintf("%s <%s>", u.DisplayName(), u.Email)
}
