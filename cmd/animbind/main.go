package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/rtomasi/animbind/internal/config"
	"github.com/rtomasi/animbind/internal/dom"
	ahttp "github.com/rtomasi/animbind/internal/http"
	"github.com/rtomasi/animbind/internal/loader"
	"github.com/rtomasi/animbind/internal/model"
	"github.com/rtomasi/animbind/internal/resolve"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
	groupStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8B500"))
	resolvedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	unresolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Group configuration: JSON/YAML file, inline JSON, or URL")
		docFlag     = flag.String("doc", "", "HTML document to resolve against: file or URL")
		rootFlag    = flag.String("root", "", "Explicit root path expression, resolved from the document root")
		jsonFlag    = flag.Bool("json", false, "Emit the resolution report as JSON")
		verboseFlag = flag.Bool("verbose", false, "Include per-timeline detail for resolved entries")
	)

	flag.Parse()

	if *configFlag == "" || *docFlag == "" {
		fmt.Println("animbind - resolve animation group configurations against a document")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  animbind -config <file|url> -doc <file|url> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: animbind-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	client := ahttp.NewClient()

	// Fetch the document and a local configuration concurrently; a
	// remote configuration goes through the caching loader once the
	// document is available.
	var (
		doc   *html.Node
		specs []model.GroupSpec
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		page, err := readSource(egCtx, client, *docFlag)
		if err != nil {
			return fmt.Errorf("document: %w", err)
		}
		doc, err = dom.ParseString(page)
		if err != nil {
			return fmt.Errorf("parse document: %w", err)
		}
		return nil
	})
	if !isURL(*configFlag) {
		eg.Go(func() error {
			var err error
			specs, err = config.DecodeSource(*configFlag)
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		fatal(err)
	}

	builder := resolve.NewBuilder(doc)

	var explicitRoot *html.Node
	if *rootFlag != "" {
		explicitRoot = resolve.ResolvePath(dom.RootElement(doc), *rootFlag)
		if explicitRoot == nil {
			fatal(fmt.Errorf("root %q does not resolve in the document", *rootFlag))
		}
	}

	var (
		groups *model.Groups
		err    error
	)
	if isURL(*configFlag) {
		groups, err = loader.New(client, builder).Load(ctx, *configFlag, explicitRoot)
	} else {
		groups, err = builder.Build(specs, explicitRoot)
	}
	if err != nil {
		fatal(err)
	}

	if *jsonFlag {
		printJSON(groups)
		return
	}

	reportGroups(groups, func(ev reportEvent) {
		if ev.Level == levelVerbose && !*verboseFlag {
			return
		}

		var style lipgloss.Style
		switch ev.Level {
		case levelHeader:
			style = headerStyle
		case levelGroup:
			style = groupStyle
		case levelVerbose, levelSuccess:
			style = resolvedStyle
		case levelWarning:
			style = unresolvedStyle
		default:
			style = dimStyle
		}
		fmt.Println(style.Render(ev.Message))
	})
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// readSource fetches a URL or reads a local file.
func readSource(ctx context.Context, client *ahttp.Client, src string) (string, error) {
	if isURL(src) {
		return client.GetString(ctx, src)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// reportLevel indicates the kind of a report line; the consumer picks
// styling and filtering per level.
type reportLevel int

const (
	levelHeader reportLevel = iota
	levelGroup
	levelDetail
	levelVerbose // resolved timelines, hidden unless -verbose
	levelWarning
	levelSuccess
)

// reportEvent is one line of the resolution report.
type reportEvent struct {
	Message string
	Level   reportLevel
}

// reportGroups walks the resolved graph and emits one event per
// report line. Resolved timelines are verbose-level, unresolved ones
// warnings; the closing summary is a success only when every timeline
// bound.
func reportGroups(groups *model.Groups, emit func(reportEvent)) {
	emit(reportEvent{
		Message: fmt.Sprintf("%d group(s)", groups.Len()),
		Level:   levelHeader,
	})

	var bound, total int
	for _, g := range groups.All() {
		emit(reportEvent{
			Message: fmt.Sprintf("%s (×%g)", g.Name, g.TimeScale),
			Level:   levelGroup,
		})
		emit(reportEvent{
			Message: fmt.Sprintf("  root <%s>, %d/%d bound",
				rootTag(g), len(g.Resolved()), g.Len()),
			Level: levelDetail,
		})

		bound += len(g.Resolved())
		total += g.Len()

		for _, tl := range g.Timelines() {
			switch {
			case tl.Resolved():
				emit(reportEvent{
					Message: fmt.Sprintf("  ✓ %s -> <%s>", tl.DisplayName(), tl.Node.Data),
					Level:   levelVerbose,
				})
			case tl.Ambiguous():
				emit(reportEvent{
					Message: fmt.Sprintf("  ✗ %s (both id and path)", tl.DisplayName()),
					Level:   levelWarning,
				})
			default:
				emit(reportEvent{
					Message: fmt.Sprintf("  ✗ %s", tl.DisplayName()),
					Level:   levelWarning,
				})
			}
		}
	}

	summary := reportEvent{
		Message: fmt.Sprintf("%d/%d timeline(s) bound", bound, total),
		Level:   levelSuccess,
	}
	if bound < total {
		summary.Level = levelWarning
	}
	emit(summary)
}

// rootTag names a group's root element for display; a group built
// against an element-less document has no root.
func rootTag(g *model.Group) string {
	if g.Root == nil {
		return "none"
	}
	return g.Root.Data
}

// jsonTimeline and jsonGroup shape the -json report.
type jsonTimeline struct {
	Label    string `json:"label,omitempty"`
	ID       string `json:"id,omitempty"`
	Path     string `json:"path,omitempty"`
	Resolved bool   `json:"resolved"`
	Node     string `json:"node,omitempty"`
}

type jsonGroup struct {
	Name      string         `json:"name"`
	TimeScale float64        `json:"timeScale"`
	Root      string         `json:"root"`
	Timelines []jsonTimeline `json:"timelines"`
}

func buildJSONReport(groups *model.Groups) []jsonGroup {
	out := make([]jsonGroup, 0, groups.Len())
	for _, g := range groups.All() {
		jg := jsonGroup{
			Name:      g.Name,
			TimeScale: g.TimeScale,
			Root:      rootTag(g),
			Timelines: make([]jsonTimeline, 0, g.Len()),
		}
		for _, tl := range g.Timelines() {
			jt := jsonTimeline{
				Label:    tl.Spec.Label,
				ID:       tl.ID,
				Path:     tl.Path,
				Resolved: tl.Resolved(),
			}
			if tl.Resolved() {
				jt.Node = tl.Node.Data
			}
			jg.Timelines = append(jg.Timelines, jt)
		}
		out = append(out, jg)
	}
	return out
}

func printJSON(groups *model.Groups) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildJSONReport(groups)); err != nil {
		fatal(err)
	}
}
