package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/nova/internal/storage"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCRIPT\tTIME\tSPEED\tLINES\tSCHEDULED\tACTUAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fx\t%d\t%.0fms\t%.1fms\n",
			run.ID,
			run.Script,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Speed,
			run.Lines,
			run.ScheduledMs,
			run.ActualMs,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	appends, err := st.LoadAppends(runID)
	if err != nil {
		return err
	}

	if len(appends) < 2 {
		return fmt.Errorf("not enough appends to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("script: %s\n", meta.Script)
	fmt.Printf("lines: %d\n\n", len(appends))

	scheduled := make([]float64, len(appends))
	actual := make([]float64, len(appends))
	var drift float64
	for i, a := range appends {
		scheduled[i] = a.DelayMs
		actual[i] = a.GapMs
		drift = max(drift, a.GapMs-a.DelayMs)
	}

	graph := asciigraph.PlotMany([][]float64{scheduled, actual},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Green),
		asciigraph.Caption("gap before each line (ms): scheduled, actual"),
	)
	fmt.Println(graph)
	fmt.Printf("\nmax lateness: %.2fms\n", drift)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	export, err := st.Export(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(export)
}
