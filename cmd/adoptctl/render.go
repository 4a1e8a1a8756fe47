package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

// emit prints v as JSON when --json is set and as a table otherwise.
func (a *app) emit(v any, header []string, rows [][]string) error {
	if a.jsonOut {
		return printJSON(a.out, v)
	}
	printTable(a.out, header, rows)
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func petRows(pets []pet.Pet, favorite func(string) bool) [][]string {
	rows := make([][]string, 0, len(pets))
	for _, p := range pets {
		mark := ""
		if favorite != nil && favorite(p.ID) {
			mark = "♥"
		}
		rows = append(rows, []string{
			p.ID, p.Name, p.Breed, p.Age, string(p.Gender), string(p.Size), p.Location, mark,
		})
	}
	return rows
}

var petHeader = []string{"ID", "Name", "Breed", "Age", "Gender", "Size", "Location", "Fav"}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func money(v float64) string {
	return "NT$" + strconv.FormatFloat(v, 'f', 0, 64)
}

// printBanner writes a notification the way the app's banner shows it.
func printBanner(w io.Writer, n notification.Notification, unread int) {
	sender := color.New(color.FgHiMagenta, color.Bold).SprintFunc()
	badge := color.New(color.FgBlack, color.BgHiYellow).SprintFunc()
	fmt.Fprintf(w, "%s %s %s\n", badge(" 剛剛 "), sender(n.Sender), n.Text)
	fmt.Fprintf(w, "  thread %s, %d unread\n", n.ThreadID, unread)
}

func printSuccess(w io.Writer, format string, args ...any) {
	color.New(color.FgGreen).Fprintf(w, format+"\n", args...)
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// screenErr prefers the message a screen shows over the raw error.
func screenErr(err error, shown string) error {
	if shown == "" {
		return err
	}
	return errors.New(shown)
}
