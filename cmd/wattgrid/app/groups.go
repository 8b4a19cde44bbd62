package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wattgrid-hq/wattgrid-client/pkg/api"
)

// GroupEditOptions holds options for group create and edit.
type GroupEditOptions struct {
	*GlobalOptions
	Name        string
	ChildMeters []int
	ChildGroups []int
}

// NewGroupsCommand creates the groups command and its subcommands.
func NewGroupsCommand(globalOpts *GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List and manage meter groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := sess.client.GroupsDetails(cmd.Context())
			if err != nil {
				return fmt.Errorf("list groups: %w", err)
			}
			printNamedItems(cmd, groups)
			return nil
		},
	}

	cmd.AddCommand(newGroupChildrenCommand(globalOpts))
	cmd.AddCommand(newGroupCreateCommand(globalOpts))
	cmd.AddCommand(newGroupEditCommand(globalOpts))
	cmd.AddCommand(newGroupDeleteCommand(globalOpts))
	return cmd
}

func newGroupChildrenCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "children GROUP_ID",
		Short: "Show the immediate child meters and groups of a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid group id %q", args[0])
			}

			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			children, err := sess.client.GroupChildren(cmd.Context(), groupID)
			if err != nil {
				return fmt.Errorf("group children: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "meters: %v\ngroups: %v\n", children.Meters, children.Groups)
			return nil
		},
	}
}

func newGroupCreateCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &GroupEditOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, cleanup, err := newSession(opts.GlobalOptions)
			if err != nil {
				return err
			}
			defer cleanup()

			group := api.GroupData{Name: opts.Name, ChildMeters: opts.ChildMeters, ChildGroups: opts.ChildGroups}
			if err := sess.client.CreateGroup(cmd.Context(), group); err != nil {
				return fmt.Errorf("create group: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created group %q\n", opts.Name)
			return nil
		},
	}

	addGroupDataFlags(cmd, opts)
	cmd.MarkFlagRequired("name")
	return cmd
}

func newGroupEditCommand(globalOpts *GlobalOptions) *cobra.Command {
	opts := &GroupEditOptions{GlobalOptions: globalOpts}

	cmd := &cobra.Command{
		Use:   "edit GROUP_ID",
		Short: "Replace a group's name and children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid group id %q", args[0])
			}

			sess, cleanup, err := newSession(opts.GlobalOptions)
			if err != nil {
				return err
			}
			defer cleanup()

			group := api.GroupData{Name: opts.Name, ChildMeters: opts.ChildMeters, ChildGroups: opts.ChildGroups}
			if err := sess.client.EditGroup(cmd.Context(), groupID, group); err != nil {
				return fmt.Errorf("edit group: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "edited group %d\n", groupID)
			return nil
		},
	}

	addGroupDataFlags(cmd, opts)
	return cmd
}

func newGroupDeleteCommand(globalOpts *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid group id %q", args[0])
			}

			sess, cleanup, err := newSession(globalOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := sess.client.DeleteGroup(cmd.Context(), groupID); err != nil {
				return fmt.Errorf("delete group: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted group %d\n", groupID)
			return nil
		},
	}
}

func addGroupDataFlags(cmd *cobra.Command, opts *GroupEditOptions) {
	cmd.Flags().StringVar(&opts.Name, "name", "", "group name")
	cmd.Flags().IntSliceVar(&opts.ChildMeters, "meters", nil, "child meter ids")
	cmd.Flags().IntSliceVar(&opts.ChildGroups, "groups", nil, "child group ids")
}
