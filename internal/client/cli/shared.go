package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/services"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/views"
)

func parseKind(args []string) (models.QuestionKind, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("usage: questions behavioral|technical [search]")
	}
	k := models.QuestionKind(strings.ToLower(args[0]))
	if !k.Valid() {
		return "", nil, fmt.Errorf("unknown question bank %q", args[0])
	}
	return k, args[1:], nil
}

// AddQuestion adds to the bank named by the first argument.
func (a *App) AddQuestion(ctx context.Context, args []string) error {
	kind, _, err := parseKind(args)
	if err != nil {
		return err
	}

	q := models.Question{Kind: kind}
	if q.Question, err = GetSimpleText(a.reader, "Question", a.out); err != nil {
		return err
	}
	if q.Category, err = GetChoice(a.reader, "Category", kind.Categories(), "Other", a.out); err != nil {
		return err
	}
	if q.Difficulty, err = GetChoice(a.reader, "Difficulty", models.Difficulties, models.DifficultyMedium, a.out); err != nil {
		return err
	}
	if q.Answer, err = GetMultiline(a.reader, "Answer", a.out); err != nil {
		return err
	}

	id, err := a.disp.AddQuestion(ctx, q)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s question %s\n", kind, id)
	return nil
}

func (a *App) Questions(_ context.Context, args []string) error {
	kind, rest, err := parseKind(args)
	if err != nil {
		return err
	}

	all := store.Read(a.disp.Store(), store.Questions(kind))
	qs := views.Filter(all, views.Query[models.Question]{
		Search:       strings.Join(rest, " "),
		SearchFields: []views.Field[models.Question]{views.QuestionByText, views.QuestionByAnswer, views.QuestionByNotes},
	})

	counts := views.QuestionCategoryCounts(all, kind)
	parts := make([]string, 0, len(counts))
	for _, c := range kind.Categories() {
		parts = append(parts, fmt.Sprintf("%s %d", c, counts[c]))
	}
	fmt.Fprintln(a.out, strings.Join(parts, " | "))

	tw := a.table()
	fmt.Fprintln(tw, "ID\tCATEGORY\tDIFFICULTY\tQUESTION")
	for _, q := range views.SortBy(qs, views.QuestionByCategory, false) {
		mark := ""
		if q.IsPreloaded {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\n", q.ID, mark, q.Category, q.Difficulty, q.Question)
	}
	return tw.Flush()
}

func (a *App) AddResource(ctx context.Context, _ []string) error {
	var r models.Resource
	var err error

	if r.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if r.Type, err = GetChoice(a.reader, "Type", models.ResourceTypes, models.ResourceLink, a.out); err != nil {
		return err
	}
	if r.Category, err = GetChoice(a.reader, "Category", models.ResourceCategories, models.ResourceGeneral, a.out); err != nil {
		return err
	}
	if r.Description, err = GetSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if r.Tags, err = GetList(a.reader, "Tags", a.out); err != nil {
		return err
	}

	var att *services.Attachment
	if r.Type == models.ResourceDocument {
		path, err := GetSimpleText(a.reader, "File to upload (empty for none)", a.out)
		if err != nil {
			return err
		}
		if path != "" {
			if att, err = readAttachment(path); err != nil {
				return err
			}
		}
	}
	if att == nil {
		if r.URL, err = GetSimpleText(a.reader, "URL", a.out); err != nil {
			return err
		}
	}

	id, err := a.disp.AddResource(ctx, r, att)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added resource %s\n", id)
	return nil
}

func readAttachment(path string) (*services.Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = http.DetectContentType(content)
	}
	return &services.Attachment{Name: filepath.Base(path), ContentType: ct, Content: content}, nil
}

func (a *App) Resources(_ context.Context, args []string) error {
	rs := views.Filter(store.Read(a.disp.Store(), store.Resources), views.Query[models.Resource]{
		Search:       strings.Join(args, " "),
		SearchFields: []views.Field[models.Resource]{views.ResourceByTitle, views.ResourceByDescription, views.ResourceByTags},
	})
	if len(rs) == 0 {
		fmt.Fprintln(a.out, "No resources")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tCATEGORY\tTYPE\tTITLE\tURL")
	for _, r := range views.SortBy(rs, views.ResourceByCategory, false) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Category, r.Type, r.Title, r.URL)
	}
	return tw.Flush()
}

// Notify posts the arguments as a notification.
func (a *App) Notify(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		var err error
		if text, err = GetSimpleText(a.reader, "Notification text", a.out); err != nil {
			return err
		}
	}
	if _, err := a.disp.AddNotification(ctx, text); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Posted")
	return nil
}

func (a *App) Notifications(_ context.Context, _ []string) error {
	ns := store.Read(a.disp.Store(), store.Notifications)
	if len(ns) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return nil
	}
	for _, n := range ns {
		fmt.Fprintf(a.out, "%s  %s\n", n.CreatedAt.In(a.now().Location()).Format("2006-01-02 15:04"), n.Text)
	}
	return nil
}

func (a *App) Refresh(ctx context.Context, _ []string) error {
	if err := a.disp.Refresh(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Refreshed")
	return nil
}
