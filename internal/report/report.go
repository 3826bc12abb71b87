package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typist/internal/model"
)

const minPreviewWidth = 10

// RenderSummary prints the sessions completed during a run and their averages.
func RenderSummary(w io.Writer, results []model.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No completed sessions.")
		return err
	}
	headers := []string{"#", "Passage", "WPM", "Accuracy", "Errors", "Time"}
	rows := make([][]string, 0, len(results)+1)
	var totalWPM, totalAcc, totalErrors int
	for i, r := range results {
		totalWPM += r.Stats.WordsPerMinute
		totalAcc += r.Stats.AccuracyPercent
		totalErrors += r.Stats.ErrorCount
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Title,
			strconv.Itoa(r.Stats.WordsPerMinute),
			fmt.Sprintf("%d%%", r.Stats.AccuracyPercent),
			strconv.Itoa(r.Stats.ErrorCount),
			formatElapsed(r.Elapsed),
		})
	}
	n := len(results)
	rows = append(rows, []string{
		"",
		"Average",
		fmt.Sprintf("%.1f", float64(totalWPM)/float64(n)),
		fmt.Sprintf("%.1f%%", float64(totalAcc)/float64(n)),
		fmt.Sprintf("%.1f", float64(totalErrors)/float64(n)),
		"",
	})

	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderPassages prints library passages, truncating previews to fit width.
// A non-positive width disables truncation.
func RenderPassages(w io.Writer, records []model.PassageRecord, width int) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No passages in library.")
		return err
	}
	headers := []string{"ID", "Title", "Words", "Text"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		title := rec.Title
		if title == "" {
			title = "-"
		}
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			title,
			strconv.Itoa(countWords(rec.Text)),
			rec.Text,
		})
	}
	if width > 0 {
		fixed := 0
		for _, line := range formatTable(headers[:3], trimCols(rows, 3), nil) {
			if lw := runewidth.StringWidth(line); lw > fixed {
				fixed = lw
			}
		}
		preview := width - fixed - 1
		if preview < minPreviewWidth {
			preview = minPreviewWidth
		}
		for _, row := range rows {
			row[3] = runewidth.Truncate(row[3], preview, "...")
		}
	}
	rightAlign := map[int]bool{0: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func trimCols(rows [][]string, n int) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = row[:n]
	}
	return out
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func formatElapsed(d time.Duration) string {
	return d.Round(100 * time.Millisecond).String()
}
