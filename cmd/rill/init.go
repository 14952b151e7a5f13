package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rill/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new rill project",
	Long: `Initialize a new rill project by creating a project manifest (rill.toml)
and a hello-world entry point (main.rl). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		// трактуем аргумент как путь или имя относительно cwd
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	result, err := project.Init(target)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	rel := result.Root
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, result.Root); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized rill project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if result.CreatedMain {
		fmt.Fprintf(os.Stdout, "  - main.rl\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - main.rl (existing)\n")
	}
	return nil
}
