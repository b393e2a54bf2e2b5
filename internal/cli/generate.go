package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/robo/internal/form"
	"github.com/Makepad-fr/robo/internal/model"
	"github.com/Makepad-fr/robo/internal/ui"
	"github.com/Makepad-fr/robo/internal/viewer"
)

type envFunc func(*cobra.Command) (*Env, error)

type exportFlags struct {
	out    string
	format string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.out, "out", "o", ".", "directory for exported files")
	cmd.Flags().StringVarP(&f.format, "format", "f", "md", "export format: md, html or both")
}

// formats validates --format.
func (f *exportFlags) formats() ([]string, error) {
	switch strings.ToLower(f.format) {
	case "md", "markdown":
		return []string{"md"}, nil
	case "html", "print", "pdf":
		return []string{"html"}, nil
	case "both", "all":
		return []string{"md", "html"}, nil
	}
	return nil, usagef("unknown --format %q (want md, html or both)", f.format)
}

func writeExports(dir, name string, plan model.BusinessPlan, formats []string, at time.Time) ([]string, error) {
	var paths []string
	for _, f := range formats {
		var (
			path string
			err  error
		)
		switch f {
		case "md":
			path, err = viewer.WriteMarkdown(dir, name, plan)
		case "html":
			path, err = viewer.WritePrintHTML(dir, name, plan, at)
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// readInput decodes a business description. JSON is valid YAML, so one
// decoder covers both; unknown keys are rejected.
func readInput(r io.Reader) (model.BusinessInput, error) {
	var in model.BusinessInput
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, errors.New("input is empty")
		}
		return in, err
	}
	return in, nil
}

func generateCmd(getEnv envFunc) *cobra.Command {
	var (
		input  string
		stdout bool
		ex     exportFlags
	)
	cmd := &cobra.Command{
		Use:   "generate --input <file>",
		Short: "Generate a business plan from a YAML or JSON description",
		Long: "Reads the business description from --input (use - for stdin), generates a plan,\n" +
			"saves it to history and exports it. `robo inspire` prints a ready-made example.",
		Example: "  robo inspire > biz.yaml\n  robo generate -i biz.yaml --format both",
		Args:    withUsage(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				return usagef("--input is required")
			}
			formats, err := ex.formats()
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				r = f
			}
			in, err := readInput(r)
			if err != nil {
				return usagef("read %s: %v", input, err)
			}
			if missing := form.Missing(in); len(missing) > 0 {
				return usagef("missing required fields: %s", strings.Join(missing, ", "))
			}

			env, err := getEnv(cmd)
			if err != nil {
				return err
			}
			if err := env.Ctrl.Submit(cmd.Context(), in); err != nil {
				return err
			}
			if env.Ctrl.Status() == model.StatusError {
				return errors.New(env.Ctrl.ErrorMessage())
			}
			plan, name := env.Ctrl.Plan(), env.Ctrl.BusinessName()

			out := cmd.OutOrStdout()
			if stdout {
				fmt.Fprint(out, viewer.Markdown(plan))
				return nil
			}
			paths, err := writeExports(ex.out, name, plan, formats, env.Ctrl.SubmittedAt())
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			t := ui.Current()
			lines := []string{
				ui.C(t.Title, name) + "  " + ui.C(t.Muted, fmt.Sprintf("%d sections", len(plan))),
				"",
			}
			for i, s := range plan {
				lines = append(lines, fmt.Sprintf("%s %s", ui.C(t.Muted, fmt.Sprintf("%2d.", i+1)), s.Title))
			}
			ui.Panel(out, lines)
			for _, p := range paths {
				ui.OK(out, "wrote "+p)
			}
			if saved, ok := env.Ctrl.LastSaved(); ok {
				ui.OK(out, "saved to history as "+saved.ID)
			} else {
				ui.Warn(out, "plan was not saved to history (see log)")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "business description file (.yaml or .json), - for stdin")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the plan as Markdown instead of writing files")
	ex.register(cmd)
	return cmd
}
