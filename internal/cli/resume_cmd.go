package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/outreach/internal/cli/formatter"
	"github.com/alexanderramin/outreach/internal/latex"
	"github.com/spf13/cobra"
)

func newResumeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Edit and compile a LaTeX resume",
	}

	cmd.AddCommand(
		newResumeEditCmd(app),
		newResumeCompileCmd(app),
		newResumePagesCmd(),
	)

	return cmd
}

func newResumeEditCmd(app *App) *cobra.Command {
	var (
		request string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Ask the model to change a LaTeX resume",
		Example: `  outreach resume edit resume.tex -r "move Projects above Experience" -o resume.tex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.resume()
			if err != nil {
				return err
			}
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Editing resume...")
			}
			edit, err := svc.Edit(cmd.Context(), source, request)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			if edit.NeedsClarification() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warning("The model needs more detail:"))
				fmt.Fprintln(cmd.OutOrStdout(), edit.Clarification)
				return nil
			}
			if err := writeOutput(cmd, out, func(w io.Writer) error {
				_, err := io.WriteString(w, edit.LaTeX+"\n")
				return err
			}); err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Success(fmt.Sprintf("Wrote %s (about %d page(s))", out, latex.EstimatePages(edit.LaTeX))))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&request, "request", "r", "", "the change to make")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output `FILE` (- for stdout)")
	_ = cmd.MarkFlagRequired("request")
	return cmd
}

func newResumeCompileCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "compile FILE",
		Short: "Compile a LaTeX resume to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.resume()
			if err != nil {
				return err
			}
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Compiling...")
			}
			compiled, err := svc.Compile(cmd.Context(), source)
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, compiled.PDF, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Wrote %s (about %d page(s))", out, compiled.EstimatedPages)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "resume.pdf", "output `FILE`")
	return cmd
}

func newResumePagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages FILE",
		Short: "Estimate the page count of a LaTeX resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			n := latex.EstimatePages(source)
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
			if n > 1 {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning("Resume is likely longer than one page"))
			}
			return nil
		},
	}
}
