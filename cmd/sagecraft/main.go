// Command sagecraft scaffolds a bring-your-own-container model serving
// project for SageMaker from an interactive question flow. All configuration
// is collected via prompts; there is no flag that bypasses them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/joho/godotenv"

	"github.com/germanamz/sagecraft/cmd/sagecraft/internal/styles"
	"github.com/germanamz/sagecraft/cmd/sagecraft/internal/wizard"
	"github.com/germanamz/sagecraft/pkg/projectdir"
	"github.com/germanamz/sagecraft/pkg/render"
	"github.com/germanamz/sagecraft/pkg/scaffold"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sagecraft [flags]\n\nScaffold a SageMaker BYOC serving project interactively.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, styles.Dim.Render("Aborted. No files were written."))
			os.Exit(1)
		}

		fmt.Fprintln(os.Stderr, styles.Error.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func run() error {
	fmt.Println(styles.Title.Render("sagecraft") + styles.Dim.Render("  — BYOC project generator"))

	answers, err := wizard.Run()
	if err != nil {
		return err
	}

	// The gate runs on the full record, before anything touches disk.
	if err := scaffold.Validate(answers); err != nil {
		return err
	}

	var mErr error
	err = spinner.New().
		Title("Writing " + answers.OutputDir).
		Action(func() { mErr = scaffold.Materialize(answers, render.Mustache{}) }).
		Run()
	if err != nil {
		return err
	}
	if mErr != nil {
		return mErr
	}

	dest := projectdir.New(answers.OutputDir)
	fmt.Println(styles.Success.Render("Generated " + dest.Root()))

	printNextSteps(dest)

	return nil
}

// printNextSteps renders the generated README to the terminal. Failures here
// are cosmetic: generation already succeeded.
func printNextSteps(dest projectdir.Dir) {
	data, err := os.ReadFile(dest.ReadmePath())
	if err != nil {
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return
	}

	out, err := r.Render(string(data))
	if err != nil {
		return
	}

	fmt.Print(out)
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}
