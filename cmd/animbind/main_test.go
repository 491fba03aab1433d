package main

import (
	"strings"
	"testing"

	"github.com/rtomasi/animbind/internal/dom"
	"github.com/rtomasi/animbind/internal/model"
	"github.com/rtomasi/animbind/internal/resolve"
)

const reportPage = `<html><body><div id="stage"><span id="logo"></span></div></body></html>`

func buildTestGroups(t *testing.T, specs []model.GroupSpec) *model.Groups {
	t.Helper()
	doc, err := dom.ParseString(reportPage)
	if err != nil {
		t.Fatalf("parse page: %v", err)
	}
	groups, err := resolve.NewBuilder(doc).Build(specs, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return groups
}

func collect(groups *model.Groups) []reportEvent {
	var events []reportEvent
	reportGroups(groups, func(ev reportEvent) {
		events = append(events, ev)
	})
	return events
}

func TestReportGroupsLevels(t *testing.T) {
	groups := buildTestGroups(t, []model.GroupSpec{
		{Name: "g", Timelines: []model.TimelineSpec{
			{ID: "logo"},
			{ID: "missing"},
			{ID: "logo", Path: "div[1]"},
		}},
	})

	events := collect(groups)

	counts := make(map[reportLevel]int)
	for _, ev := range events {
		counts[ev.Level]++
	}

	if counts[levelHeader] != 1 {
		t.Errorf("got %d header events, want 1", counts[levelHeader])
	}
	if counts[levelGroup] != 1 {
		t.Errorf("got %d group events, want 1", counts[levelGroup])
	}
	if counts[levelVerbose] != 1 {
		t.Errorf("got %d verbose events for the resolved timeline, want 1", counts[levelVerbose])
	}
	// One unresolved, one ambiguous, plus the failing summary.
	if counts[levelWarning] != 3 {
		t.Errorf("got %d warning events, want 3", counts[levelWarning])
	}

	last := events[len(events)-1]
	if last.Level != levelWarning || !strings.Contains(last.Message, "1/3") {
		t.Errorf("summary = %+v, want a 1/3 warning", last)
	}

	var sawAmbiguous bool
	for _, ev := range events {
		if strings.Contains(ev.Message, "both id and path") {
			sawAmbiguous = true
		}
	}
	if !sawAmbiguous {
		t.Error("ambiguous timeline not called out")
	}
}

func TestReportGroupsFullyBoundSummary(t *testing.T) {
	groups := buildTestGroups(t, []model.GroupSpec{
		{Name: "g", Timelines: []model.TimelineSpec{{ID: "logo"}}},
	})

	events := collect(groups)
	last := events[len(events)-1]
	if last.Level != levelSuccess || !strings.Contains(last.Message, "1/1") {
		t.Errorf("summary = %+v, want a 1/1 success", last)
	}
}

func TestReportNilRootGroup(t *testing.T) {
	// A group built against an element-less document carries no root;
	// reporting must not dereference it.
	g := model.NewGroup("bare", 1, nil, []*model.Timeline{
		model.NewTimeline(model.TimelineSpec{ID: "x"}, nil),
	})
	groups := model.NewGroups([]*model.Group{g}, nil)

	var detail string
	reportGroups(groups, func(ev reportEvent) {
		if ev.Level == levelDetail {
			detail = ev.Message
		}
	})
	if !strings.Contains(detail, "<none>") {
		t.Errorf("detail line %q should name the missing root as <none>", detail)
	}

	out := buildJSONReport(groups)
	if len(out) != 1 || out[0].Root != "none" {
		t.Errorf("json report = %+v, want root \"none\"", out)
	}
}
