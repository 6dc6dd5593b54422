package main

import (
	"reflect"
	"testing"

	"logbay/internal/catalog"
)

func TestSourceRowsSortsLogNames(t *testing.T) {
	views := []catalog.EndpointView{
		{
			Service: "metadata",
			Logs: map[string]string{
				"worker.log": "http://n/service-logs/metadata/worker.log",
				"app.log":    "http://n/service-logs/metadata/app.log",
			},
		},
	}

	rows := sourceRows(views)
	want := [][]string{
		{"metadata", "app.log", "http://n/service-logs/metadata/app.log"},
		{"metadata", "worker.log", "http://n/service-logs/metadata/worker.log"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestSourceRowsEmptySource(t *testing.T) {
	rows := sourceRows([]catalog.EndpointView{{Service: "search", Logs: map[string]string{}}})
	if len(rows) != 1 || rows[0][1] != "(no logs)" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestRenderTableIncludesHeaders(t *testing.T) {
	out := renderTable([]string{"SERVICE", "LOG", "URL"}, [][]string{{"nginx", "access.log", "http://n/x"}})
	if out == "" {
		t.Fatal("expected rendered table output")
	}
}
