package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/transfer"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/views"
	"github.com/dmitrijs2005/recruitkeeper/internal/filex"
)

func (a *App) Stats(_ context.Context, _ []string) error {
	data, resources := a.disp.Store().Contents()
	d := views.BuildDashboard(data, resources, a.now())

	tw := a.table()
	fmt.Fprintf(tw, "Total records\t%d\n", d.Stats.Total)
	for _, k := range slices.Concat(models.LocalKeys, []string{models.KeyResources}) {
		fmt.Fprintf(tw, "  %s\t%d\n", k, d.Stats.Counts[k])
	}
	for _, s := range models.FirmStatuses {
		fmt.Fprintf(tw, "Firms %s\t%d\n", s, d.Stats.FirmStatus[s])
	}
	window := func(name string, w views.Window) {
		fmt.Fprintf(tw, "%s today\t%d (%+d%% vs yesterday), %d this week\n", name, w.Today, w.Change(), w.ThisWeek)
	}
	window("Coffee chats", d.CoffeeChats)
	window("Mock interviews", d.MockInterviews)
	window("Market intel", d.MarketIntel)
	fmt.Fprintf(tw, "Pending coffee chats\t%d\n", d.PendingChats)
	fmt.Fprintf(tw, "Average mock score\t%.1f\n", d.AverageScore)
	fmt.Fprintf(tw, "Intel this week\t%d\n", d.IntelThisWeek)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(d.UpcomingDeadlines) > 0 {
		fmt.Fprintln(a.out, "Upcoming deadlines:")
		for _, f := range d.UpcomingDeadlines {
			fmt.Fprintf(a.out, "  %s  %s\n", f.Deadline, f.Name)
		}
	}
	return nil
}

// Export writes the export document to the given path, or to a dated file
// in the working directory.
func (a *App) Export(_ context.Context, args []string) error {
	now := a.now()
	path := transfer.FileName(now)
	if len(args) > 0 {
		path = args[0]
	}

	b, err := transfer.ExportStore(a.disp.Store(), now)
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(path, b, 0o600); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Exported to", path)
	return nil
}

func (a *App) Import(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: import <file>")
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	res := transfer.Import(ctx, a.disp.Store(), raw)
	if !res.Success {
		return res.Err
	}
	fmt.Fprintln(a.out, res.Message)
	return nil
}

// Clear wipes every local collection after confirmation.
func (a *App) Clear(ctx context.Context, _ []string) error {
	answer, err := GetSimpleText(a.reader, "This deletes all local data. Type 'yes' to continue", a.out)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	if err := transfer.Clear(ctx, a.disp.Store()); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Cleared")
	return nil
}
