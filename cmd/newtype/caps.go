// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/invowk/newtype/internal/issue"
	"github.com/invowk/newtype/pkg/newtype"
	"github.com/invowk/newtype/pkg/types"
)

func newCapsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "caps [capability]",
		Short: "List capabilities, or describe one",
		Long: `List every capability a newtype can derive, with the requirement on the
underlying type and the operations it grants. With an argument, describe one
capability or bundle. Names are matched case-insensitively.`,
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			skipConfigAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), capabilityTable())
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s\n", SubtitleStyle.Render("Bundles:"), bundleSummary())
				return nil
			}
			md, err := describeCapability(args[0])
			if err != nil {
				app.reportError(issue.NewErrorContext().
					WithOperation("describe capability").
					WithResource(args[0]).
					WithSuggestion("Run 'newtype caps' to list the capabilities").
					WithIssue(issue.UnknownCapabilityId).
					Wrap(err).
					BuildError())
				return &ExitError{Code: types.ExitFailure}
			}
			out, err := glamour.Render(md, app.glamourStyle())
			if err != nil {
				app.logger.Debug("cannot render markdown", "error", err)
				out = md
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func capabilityTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		Headers("Capability", "Requirement", "Operations").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	for _, c := range newtype.KnownCapabilities() {
		t.Row(c.String(), c.Requirement(), strings.Join(c.Operations(), ", "))
	}
	return t.Render()
}

// bundleSummary renders "Arithmetic = {...}; Ordering = {...}".
func bundleSummary() string {
	names := newtype.BundleNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		s, _ := newtype.Bundle(name)
		parts = append(parts, name+" = "+s.String())
	}
	return strings.Join(parts, "; ")
}

// describeCapability returns the markdown reference of a leaf or bundle.
func describeCapability(name string) (string, error) {
	for _, b := range newtype.BundleNames() {
		if !strings.EqualFold(b, name) {
			continue
		}
		s, _ := newtype.Bundle(b)
		var sb strings.Builder
		fmt.Fprintf(&sb, "# %s\n\nBundle marker `newtype.%s` derives %s.\n", b, b, s)
		for c := range s.All() {
			sb.WriteString("\n")
			writeCapability(&sb, c, "##")
		}
		return sb.String(), nil
	}

	c, err := newtype.ParseCapability(name)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	writeCapability(&sb, c, "#")
	return sb.String(), nil
}

func writeCapability(sb *strings.Builder, c newtype.Capability, heading string) {
	fmt.Fprintf(sb, "%s %s\n\n", heading, c)
	fmt.Fprintf(sb, "Embed `%s` in the tag. Operations constrain the tag with `%sTag`.\n\n", c.Marker(), c.Marker())
	fmt.Fprintf(sb, "**Requirement on the underlying type:** %s\n\n", c.Requirement())
	sb.WriteString("**Operations:**\n\n")
	for _, op := range c.Operations() {
		fmt.Fprintf(sb, "- `%s`\n", op)
	}
}
