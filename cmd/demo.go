package cmd

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/peek/internal/controller"
	"github.com/mouse-blink/peek/internal/domain"
	m "github.com/mouse-blink/peek/internal/model"
)

// sceneFile is the optional YAML scene the demo tree is built from.
var sceneFile string

// demoCmd represents the demo command.
var demoCmd = newDemoCmd()

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the inspector against a sample view tree",
		Long: `Mount a sample view tree, re-evaluate it on a timer with changing
values, and open the inspector panel over its aggregated properties.

With --scene, the tree is loaded from a YAML file instead of the
built-in sample.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetBool(verboseFlagName))

			host, err := newDemoHost(sceneFile)
			if err != nil {
				return err
			}

			return runDemo(cmd, host)
		},
	}

	cmd.Flags().StringVar(&sceneFile, sceneFlagName, "", "YAML scene file describing the demo tree")

	return cmd
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, host *demoHost) error {
	var panel *controller.Panel

	ctrl := domain.NewController(
		domain.WithDebounceWindow(debounceWindow()),
		domain.WithOnChange(func(snapshot domain.Snapshot) {
			if panel != nil {
				panel.Push(snapshot)
			}
		}),
	)

	// First evaluation pass before any shell reads the snapshot.
	host.step(ctrl)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if plainFlag || !controller.IsTTY(os.Stdout) {
		return controller.NewSimpleShell(cmd, ctrl).Run(ctx)
	}

	panel = controller.NewPanel(ctrl, settings,
		controller.WithPreview(host.preview),
		controller.WithOnClose(host.dismiss),
	)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ticker := time.NewTicker(demoInterval())
		defer ticker.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				host.step(ctrl)
			}
		}
	}()

	panel.Push(ctrl.Snapshot())

	return panel.Run(ctx)
}

// demoLeaf is one inspected node of the demo tree with its broadcaster
// and optional per-tick value refresher.
type demoLeaf struct {
	node        *domain.Node
	broadcaster *controller.Broadcaster
	nextPulse   time.Time
	update      func(tick int)
}

// demoHost owns the demo tree and replays evaluation passes over it the
// way a live UI framework would. The mutex covers the tree and the
// broadcasters, which the panel's preview reads from the tea loop.
type demoHost struct {
	mu     sync.Mutex
	root   *domain.Node
	leaves []*demoLeaf
	tick   int
}

// newDemoHost builds the demo tree, either from a scene file or the
// built-in sample.
func newDemoHost(scenePath string) (*demoHost, error) {
	host := &demoHost{}

	if scenePath != "" {
		s, err := loadScene(scenePath)
		if err != nil {
			return nil, err
		}

		root, inspected := s.build(scenePath)
		host.root = root

		for _, node := range inspected {
			host.leaves = append(host.leaves, &demoLeaf{node: node})
		}
	} else {
		host.buildSample()
	}

	for _, leaf := range host.leaves {
		leaf.broadcaster = controller.NewBroadcaster(leaf.node.Flag(), settings.HighlightBehavior)
	}

	return host, nil
}

// buildSample assembles the built-in tree: a header with a changing
// counter, a clock, a generically typed error slot, and a hidden subtree
// demonstrating disablement.
func (h *demoHost) buildSample() {
	header := domain.NewNode("header")
	clock := domain.NewNode("clock")
	status := domain.NewNode("status")
	secrets := domain.HideFromInspection(domain.NewNode("secrets"))
	token := domain.NewNode("token")

	domain.Inspect(header, "peek demo", 0)
	domain.Inspect(clock, time.Now().Format(time.Kitchen))
	domain.InspectValues[error](status, os.ErrDeadlineExceeded)
	domain.Inspect(token, "hunter2")

	secrets.Add(token)

	root := domain.NewNode("app").
		Add(header, clock, status, secrets).
		RegisterIcon(m.TypeOf(0), func(*m.Property) string { return "#" }).
		RegisterIcon(m.TypeOf(""), func(*m.Property) string { return "\"" }).
		RegisterLabel(m.TypeFor[error](), func(*m.Property) string { return "error" })

	h.root = root
	h.leaves = []*demoLeaf{
		{
			node: header,
			update: func(tick int) {
				domain.Inspect(header, "peek demo", tick)
			},
		},
		{
			node: clock,
			update: func(tick int) {
				domain.Inspect(clock, time.Now().Format(time.Kitchen))
			},
		},
		{node: status},
		{node: token},
	}
}

// step replays one evaluation pass and publishes the merged result.
func (h *demoHost) step(ctrl *domain.Controller) {
	h.mu.Lock()

	h.tick++

	now := time.Now()

	for _, leaf := range h.leaves {
		if leaf.update != nil {
			leaf.update(h.tick)
		}

		if leaf.broadcaster != nil && now.After(leaf.nextPulse) {
			leaf.nextPulse = now.Add(leaf.broadcaster.Pulse())
		}
	}

	contribution := h.root.Evaluate()

	h.mu.Unlock()

	ctrl.SetContribution(contribution)
}

// preview renders the inspected nodes side by side, each through its own
// broadcaster so highlights pulse right next to the property list.
func (h *demoHost) preview(panelPresented bool) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	blocks := make([]string, 0, len(h.leaves))
	for _, leaf := range h.leaves {
		if leaf.broadcaster == nil {
			continue
		}

		blocks = append(blocks, leaf.broadcaster.Decorate(leaf.node.Name(), panelPresented))
	}

	if len(blocks) == 0 {
		return ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, blocks...)
}

// dismiss applies the panel-dismissal reaction to every broadcaster.
func (h *demoHost) dismiss() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, leaf := range h.leaves {
		if leaf.broadcaster != nil {
			leaf.broadcaster.PanelDismissed()
		}
	}
}
