package diagnostics

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// dump renders the tracked-device table and the active action source
// (manifest or legacy) as plain-text ASCII tables, for pasting
// directly into a bug report.
func (h *handlers) dump(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	fmt.Fprintln(w, "== tracked devices ==")
	writeTable(w, []string{"Index", "Class", "Role", "Hand", "Connected", "Profile"}, deviceDumpRows(h.src))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "== actions ==")
	actionsResp := buildActionsResponse(h.src)
	fmt.Fprintf(w, "source: %s\n", actionsResp.Source)
	writeTable(w, []string{"Path", "Type"}, actionDumpRows(actionsResp))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "== events (queued) ==")
	writeTable(w, []string{"Type", "Device", "Age (s)"}, eventDumpRows(h.src))
}

func deviceDumpRows(src Source) [][]string {
	var rows [][]string
	for _, d := range deviceRows(src) {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(d.Index), 10),
			d.Class,
			d.Role,
			d.Hand,
			strconv.FormatBool(d.Connected),
			d.ProfilePath,
		})
	}
	return rows
}

func actionDumpRows(resp actionsResponse) [][]string {
	var rows [][]string
	for _, a := range resp.Actions {
		rows = append(rows, []string{a.Path, a.Type})
	}
	return rows
}

func eventDumpRows(src Source) [][]string {
	var rows [][]string
	for _, ev := range src.Events().Snapshot() {
		rows = append(rows, []string{
			eventTypeLabel(ev.Type),
			strconv.FormatUint(uint64(ev.TrackedDeviceIndex), 10),
			strconv.FormatFloat(float64(ev.EventAgeSeconds), 'f', 2, 32),
		})
	}
	return rows
}

func writeTable(w http.ResponseWriter, headers []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
