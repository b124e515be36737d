package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vbind/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter template, script and config",
		Long: `Create a starter project in dir (default: the current directory).

Templates:
  counter   A counter with a button and a conditional hint (default)
  form      A two-way bound input echoed into a greeting

Examples:
  vbind init
  vbind init demo --template=form --title="Sign up"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, template, title)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "counter", "Starter template (counter, form)")
	cmd.Flags().StringVar(&title, "title", "", "Page title (default derived from the template name)")

	return cmd
}

func runInit(cmd *cobra.Command, dir, name, title string) error {
	tmpl, err := templates.Get(name)
	if err != nil {
		return err
	}
	if title == "" {
		title = strings.ToUpper(name[:1]) + name[1:]
	}
	if err := tmpl.Create(dir, templates.Config{Title: title}); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	success(out, "Created %s template in %s", tmpl.Name, dir)
	for _, f := range []string{"vbind.yaml", "page.html", "script.yaml"} {
		info(out, "%s", filepath.Join(dir, f))
	}
	info(out, "Run it with: cd %s && vbind run", dir)
	return nil
}
