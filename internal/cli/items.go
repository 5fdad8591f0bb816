package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"catalog-cli/internal/catalog"
	"catalog-cli/internal/ui"
)

// One-shot commands run against the same seeded in-memory session the
// page uses. They exist for scripting; nothing is persisted between
// invocations.

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the item list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, diag := openStore(app)
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderList(st.Items(), diag))
			return nil
		},
	}
}

func newShowCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one item's detail view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st, _ := openStore(app)
			session := catalog.NewSession(st, nil)
			it, err := session.Get(id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderDetail(it))
			return nil
		},
	}
}

func newAddCommand(app *App) *cobra.Command {
	var desc string
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add an item (name can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _ := openStore(app)
			session := catalog.NewSession(st, nil)
			it, err := session.Add(strings.Join(args, " "), desc)
			if err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("added %q (id %d)", it.Name, it.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderList(st.Items(), ""))
			return nil
		},
	}
	cmd.Flags().StringVarP(&desc, "description", "d", "", "item description (required)")
	return cmd
}

func newEditCommand(app *App) *cobra.Command {
	var name, desc string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update an item's name and/or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("description") {
				return fmt.Errorf("edit: nothing to change (pass --name and/or --description)")
			}
			st, _ := openStore(app)
			session := catalog.NewSession(st, nil)
			cur, err := session.BeginEdit(id)
			if err != nil {
				return err
			}
			// An omitted flag keeps the current value.
			if !cmd.Flags().Changed("name") {
				name = cur.Name
			}
			if !cmd.Flags().Changed("description") {
				desc = cur.Description
			}
			it, err := session.Update(id, name, desc)
			if err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("updated %q (id %d)", it.Name, it.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderDetail(it))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&desc, "description", "", "new description")
	return cmd
}

func newRemoveCommand(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an item (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			st, _ := openStore(app)

			confirm := catalog.Confirmer(promptConfirmer{cmd: cmd})
			if yes {
				confirm = catalog.ConfirmFunc(func(string) bool { return true })
			}
			session := catalog.NewSession(st, confirm)
			if err := session.Delete(id); err != nil {
				if errors.Is(err, catalog.ErrDeleteCanceled) {
					fmt.Fprintln(cmd.OutOrStdout(), "canceled")
					return nil
				}
				return err
			}
			ui.OK(fmt.Sprintf("deleted item %d", id))
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderList(st.Items(), ""))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// promptConfirmer asks y/N on the command's stdin. Anything but an
// explicit yes declines.
type promptConfirmer struct {
	cmd *cobra.Command
}

func (p promptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.cmd.OutOrStdout(), "%s [y/N] ", prompt)
	r := bufio.NewReader(p.cmd.InOrStdin())
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	return id, nil
}
