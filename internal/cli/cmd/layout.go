package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dynpanels/internal/application/port"
	"github.com/bnema/dynpanels/internal/cli/styles"
)

var layoutCmd = &cobra.Command{
	Use:         "layout",
	Short:       "Manage stored canvas layouts",
	Annotations: map[string]string{"store": "true"},
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored layouts",
	Args:  cobra.NoArgs,
	RunE:  runLayoutList,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show <canvas>",
	Short: "Show the panel tree of a stored layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runLayoutShow,
}

var layoutDeleteCmd = &cobra.Command{
	Use:     "delete <canvas>",
	Aliases: []string{"rm"},
	Short:   "Delete a stored layout",
	Long:    `Delete the layout stored for a canvas. The canvas starts from its initial layout next time it is opened.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runLayoutDelete,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd, layoutShowCmd, layoutDeleteCmd)
}

func runLayoutList(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	layouts, err := a.ListLayoutsUC.Execute(a.Ctx())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(a.Theme).RenderList(layouts))
	return nil
}

func runLayoutShow(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	state, err := a.InspectLayoutUC.Execute(a.Ctx(), args[0])
	if errors.Is(err, port.ErrLayoutNotFound) {
		return fmt.Errorf("no layout stored for canvas %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewLayoutRenderer(a.Theme).RenderState(state))
	return nil
}

func runLayoutDelete(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := a.DeleteLayoutUC.Execute(a.Ctx(), args[0]); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Highlight.Render("deleted")+" "+args[0])
	return nil
}
