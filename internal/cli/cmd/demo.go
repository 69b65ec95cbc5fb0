package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/dynpanels/internal/application/usecase"
	"github.com/bnema/dynpanels/internal/bootstrap"
	"github.com/bnema/dynpanels/internal/domain/docking"
	"github.com/bnema/dynpanels/internal/domain/entity"
)

var (
	demoWidth  float64
	demoHeight float64
	demoSave   bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Solve a sample layout and print its panel tree",
	Long: `Build a sample layout (an explorer docked left, a console docked below and
a floating inspector) on a canvas of the given size, solve it with the
configured settings and print the resulting tree.

With --save the layout is stored under the canvas id "demo".`,
	Args:        cobra.NoArgs,
	RunE:        runDemo,
	Annotations: map[string]string{"store": "true"},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().Float64Var(&demoWidth, "width", 1280, "canvas width")
	demoCmd.Flags().Float64Var(&demoHeight, "height", 800, "canvas height")
	demoCmd.Flags().BoolVar(&demoSave, "save", false, "store the solved layout")
}

// DemoLayout is the layout built by the demo command.
func DemoLayout() docking.InitialLayout {
	tab := func(id, label string) docking.TabSpec {
		return docking.TabSpec{Options: docking.TabOptions{ID: id, Label: label}}
	}
	return docking.InitialLayout{
		Anchored: []docking.AnchoredPanelSpec{
			{
				Panel:       docking.PanelSpec{Tabs: []docking.TabSpec{tab("explorer", "Explorer"), tab("search", "Search")}},
				Direction:   entity.DirectionLeft,
				InitialSize: entity.Vec(300, 0),
			},
			{
				Panel:     docking.PanelSpec{Tabs: []docking.TabSpec{tab("console", "Console")}},
				Direction: entity.DirectionBottom,
			},
		},
		Floating: []docking.PanelSpec{
			{Tabs: []docking.TabSpec{tab("inspector", "Inspector")}},
		},
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if demoWidth <= 0 || demoHeight <= 0 {
		return fmt.Errorf("canvas size must be positive")
	}

	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx := a.Ctx()
	cfg := *a.Config
	cfg.Layout.AutoRestore = false

	rt, err := bootstrap.New(ctx, &cfg,
		bootstrap.WithLayoutStore(a.Store),
		bootstrap.WithLogger(zerolog.Nop()),
	)
	if err != nil {
		return err
	}
	defer rt.Close()

	layout := DemoLayout()
	c, err := rt.OpenCanvas(ctx, "demo", entity.Vec(demoWidth, demoHeight), &layout)
	if err != nil {
		return err
	}
	rt.Update()

	fmt.Fprintln(cmd.OutOrStdout(), c.Hierarchy())

	if demoSave {
		out, err := rt.SaveLayout.Execute(ctx, usecase.SaveLayoutInput{Canvas: c})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d bytes under %s\n", out.Bytes, out.Key)
	}
	return nil
}
