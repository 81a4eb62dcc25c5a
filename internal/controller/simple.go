package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/peek/internal/domain"
)

// SimpleShell renders one snapshot as a plain table through the cobra
// command's output. It is the non-TTY fallback of the inspector.
type SimpleShell struct {
	cmd  *cobra.Command
	ctrl *domain.Controller
}

// NewSimpleShell creates a one-shot table shell.
func NewSimpleShell(cmd *cobra.Command, ctrl *domain.Controller) *SimpleShell {
	return &SimpleShell{cmd: cmd, ctrl: ctrl}
}

// Run prints the current snapshot once and returns.
func (s *SimpleShell) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Print(renderSnapshotTable(s.ctrl.Snapshot()))

	return nil
}

// renderSnapshotTable renders a snapshot for non-interactive output.
func renderSnapshotTable(snapshot domain.Snapshot) string {
	var buf bytes.Buffer

	if snapshot.Empty() {
		fmt.Fprintf(&buf, "%s\n", snapshot.EmptyMessage())
		return buf.String()
	}

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"", "Type", "Value", "Location"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, p := range snapshot.Properties {
		marker := ""
		if p.Highlighted() {
			marker = "*"
		}

		table.Append([]string{
			marker,
			p.Value.Type.Name(),
			p.Value.Text,
			p.Location.String(),
		})
	}

	table.Render()

	fmt.Fprintf(&buf, "%d of %d properties\n", len(snapshot.Properties), snapshot.Total)

	for _, filter := range snapshot.Filters {
		state := "on"
		if !filter.On {
			state = "off"
		}

		fmt.Fprintf(&buf, "  filter %s: %s\n", filter.Type.Name(), state)
	}

	return buf.String()
}
