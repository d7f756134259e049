package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crucible-sh/crucible/pkg/blueprint"
	"github.com/crucible-sh/crucible/pkg/clipboard"
	"github.com/crucible-sh/crucible/pkg/config"
	"github.com/crucible-sh/crucible/pkg/memory"
	"github.com/crucible-sh/crucible/pkg/output"
	"github.com/crucible-sh/crucible/pkg/selection"
	"github.com/crucible-sh/crucible/pkg/tokens"
)

const defaultBlueprintDir = "blueprints"

var (
	blueprintForce      bool
	blueprintList       bool
	blueprintTokens     bool
	blueprintSearch     string
	blueprintCategory   string
	blueprintName       string
	blueprintFormat     string
	blueprintOutput     string
	blueprintDir        string
	blueprintMemoryFile string
)

// copier is the clipboard implementation used by the blueprint command.
// Package-level so tests can substitute a fake.
var copier clipboard.Copier = clipboard.NewSystem()

var blueprintCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Select a prompt blueprint and copy it to the clipboard",
	Long: `Select a blueprint from the catalog and copy its full content to the
system clipboard. Without flags, the previously selected blueprint is reused
when it still exists; otherwise an interactive numbered listing is shown.`,
	Example: `  crucible blueprint                      # reuse last selection or prompt
  crucible blueprint --force              # always prompt, ignore memory
  crucible blueprint --name domain        # select by (partial) filename
  crucible blueprint --list --search ddd  # browse the catalog
  crucible blueprint --format json --output bp.json`,
	Args: cobra.NoArgs,
	RunE: runBlueprint,
}

func init() {
	rootCmd.AddCommand(blueprintCmd)

	blueprintCmd.Flags().BoolVarP(&blueprintForce, "force", "f", false, "ignore the remembered selection and always prompt")
	blueprintCmd.Flags().BoolVarP(&blueprintList, "list", "l", false, "list the catalog without selecting anything")
	blueprintCmd.Flags().BoolVar(&blueprintTokens, "tokens", false, "show token counts")
	blueprintCmd.Flags().StringVar(&blueprintSearch, "search", "", "filter the listing by name or preview (glob patterns allowed)")
	blueprintCmd.Flags().StringVar(&blueprintCategory, "category", "", "filter the listing by filename prefix")
	blueprintCmd.Flags().StringVarP(&blueprintName, "name", "n", "", "select by exact or unique partial filename")
	blueprintCmd.Flags().StringVar(&blueprintFormat, "format", "text", "output format: text, json, or yaml")
	blueprintCmd.Flags().StringVarP(&blueprintOutput, "output", "o", "", "write to a file instead of the clipboard")
	blueprintCmd.Flags().StringVar(&blueprintDir, "dir", "", "blueprint directory (default $CRUCIBLE_BLUEPRINT_DIR or ./blueprints)")
	blueprintCmd.Flags().StringVar(&blueprintMemoryFile, "memory-file", "", "selection memory file (default $CRUCIBLE_MEMORY_FILE or ~/.crucible/memory.json)")
}

func runBlueprint(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(os.Getenv("CRUCIBLE_CONFIG"))
	if err != nil {
		return err
	}

	catalog := blueprint.NewCatalog(resolveBlueprintDir(settings))

	if blueprintList {
		return listBlueprints(cmd, catalog)
	}

	format, err := output.ParseFormat(resolveFormat(cmd, settings))
	if err != nil {
		return err
	}

	store, err := newMemoryStore(settings)
	if err != nil {
		return err
	}

	selector := selection.NewSelector(catalog, store,
		selection.WithInput(cmd.InOrStdin()),
		selection.WithOutput(cmd.OutOrStdout()),
	)

	var selected blueprint.Blueprint
	if blueprintName != "" {
		selected, err = selector.ResolveByName(blueprintName)
	} else {
		selected, err = selector.Resolve(blueprintForce)
	}
	if err != nil {
		return err
	}

	content, err := selected.Content()
	if err != nil {
		return err
	}

	rendered, err := output.Render(selected.Name, content, format)
	if err != nil {
		return err
	}

	if blueprintTokens {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tokens\n", selected.Name, tokens.NewCounter().Count(content))
	}

	if blueprintOutput != "" {
		if err := output.Write(rendered, blueprintOutput, cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", selected.Name, blueprintOutput)
		return nil
	}

	if err := copier.Copy(rendered); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to clipboard\n", selected.Name)
	return nil
}

func listBlueprints(cmd *cobra.Command, catalog *blueprint.Catalog) error {
	blueprints, err := catalog.List()
	if err != nil {
		return err
	}

	filter := blueprint.Filter{Search: blueprintSearch, Category: blueprintCategory}
	blueprints, err = filter.Apply(blueprints)
	if err != nil {
		return err
	}

	var opts []output.ListingOption
	if blueprintTokens {
		opts = append(opts, output.WithTokenCounts(tokens.NewCounter()))
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderListing(blueprints, opts...))
	return nil
}

// Resolution order everywhere: flag > environment > config file > default.

func resolveBlueprintDir(settings config.Settings) string {
	if blueprintDir != "" {
		return blueprintDir
	}
	if dir := os.Getenv("CRUCIBLE_BLUEPRINT_DIR"); dir != "" {
		return dir
	}
	if settings.BlueprintDir != "" {
		return settings.BlueprintDir
	}
	return defaultBlueprintDir
}

func resolveFormat(cmd *cobra.Command, settings config.Settings) string {
	if cmd.Flags().Changed("format") {
		return blueprintFormat
	}
	if settings.Format != "" {
		return settings.Format
	}
	return blueprintFormat
}

func newMemoryStore(settings config.Settings) (memory.Store, error) {
	path := blueprintMemoryFile
	if path == "" {
		path = os.Getenv("CRUCIBLE_MEMORY_FILE")
	}
	if path == "" {
		path = settings.MemoryFile
	}
	return memory.NewFileStore(path)
}
