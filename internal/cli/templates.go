package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clausewise/clausewise/internal/template"
	"github.com/spf13/cobra"
)

var templatesOut string

// templatesCmd represents the templates command
var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage the standard clause template library",
}

// templatesListCmd represents the templates list command
var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates used for clause comparison",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()
		if templatesPath != "" {
			cfg.Templates.Path = templatesPath
		}
		lib := template.Load(cfg.Templates.Path)

		for _, key := range lib.Keys() {
			tpl := lib[key]
			fmt.Printf("%-20s %s\n", key, tpl.Title)
			if verbose {
				for _, point := range tpl.KeyPoints {
					fmt.Printf("  - %s\n", point)
				}
			}
		}
		return nil
	},
}

// templatesInitCmd represents the templates init command
var templatesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in template library to a JSON file for editing",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := templatesOut
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("find home directory: %w", err)
			}
			path = filepath.Join(home, ".clausewise", "contract_templates.json")
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("template file already exists: %s", path)
		}

		if err := template.DefaultLibrary().Save(path); err != nil {
			return err
		}

		fmt.Printf("Template library written to: %s\n", path)
		fmt.Println("Edit it and point clausewise at it with --templates or templates.path in the config.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesInitCmd)

	templatesListCmd.Flags().StringVar(&templatesPath, "templates", "", "template library JSON path")
	templatesInitCmd.Flags().StringVar(&templatesOut, "out", "", "output path (default: $HOME/.clausewise/contract_templates.json)")
}
