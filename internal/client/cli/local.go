package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/auth"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/services"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/views"
)

const dayLayout = "2006-01-02"

func (a *App) today() string { return a.now().Format(dayLayout) }

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

// SignIn reads an identity token when a signing secret is configured and
// plain name and email prompts otherwise.
func (a *App) SignIn(ctx context.Context, _ []string) error {
	var id models.Identity

	if secret := a.config.IdentitySecret; secret != "" {
		tok, err := GetSecret(a.reader, "Identity token", a.out)
		if err != nil {
			return err
		}
		if id, err = auth.ParseIdentityToken(tok, []byte(secret)); err != nil {
			return err
		}
	} else {
		name, err := GetSimpleText(a.reader, "Name", a.out)
		if err != nil {
			return err
		}
		email, err := GetSimpleText(a.reader, "Email", a.out)
		if err != nil {
			return err
		}
		id = models.Identity{ID: strings.ToLower(email), DisplayName: name, Email: email}
	}

	if err := a.disp.SignIn(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", id.DisplayName)
	return nil
}

func (a *App) SignOut(ctx context.Context, _ []string) error {
	if err := a.disp.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) WhoAmI(_ context.Context, _ []string) error {
	id := a.disp.Identity()
	if id == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}
	role := "user"
	if a.disp.IsAdmin() {
		role = "admin"
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", id.DisplayName, id.Email, role)
	return nil
}

func (a *App) AddFirm(ctx context.Context, _ []string) error {
	var f models.Firm
	var err error

	if f.Name, err = GetSimpleText(a.reader, "Firm name", a.out); err != nil {
		return err
	}
	if f.Division, err = GetSimpleText(a.reader, "Division", a.out); err != nil {
		return err
	}
	if f.Location, err = GetSimpleText(a.reader, "Location", a.out); err != nil {
		return err
	}
	if f.Status, err = GetChoice(a.reader, "Status", models.FirmStatuses, models.FirmResearching, a.out); err != nil {
		return err
	}
	if f.Deadline, err = GetSimpleText(a.reader, "Deadline (YYYY-MM-DD, optional)", a.out); err != nil {
		return err
	}

	added, err := services.Add(ctx, a.disp, store.Firms, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added firm %s (%s)\n", added.Name, added.ID)
	return nil
}

// Firms lists firms by name; any arguments form a search term.
func (a *App) Firms(_ context.Context, args []string) error {
	firms := views.Filter(store.Read(a.disp.Store(), store.Firms), views.Query[models.Firm]{
		Search:       strings.Join(args, " "),
		SearchFields: []views.Field[models.Firm]{views.FirmByName, views.FirmByDivision, views.FirmByLocation, views.FirmByNotes},
	})
	if len(firms) == 0 {
		fmt.Fprintln(a.out, "No firms")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tDEADLINE")
	for _, f := range views.SortBy(firms, views.FirmByName, false) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Status, f.Deadline)
	}
	return tw.Flush()
}

// resolveFirmRef matches ref against firm ids first and names second.
func resolveFirmRef(firms []models.Firm, ref string) (string, bool) {
	if f, ok := views.ResolveFirm(firms, ref); ok {
		return f.ID, true
	}
	for _, f := range firms {
		if strings.EqualFold(f.Name, ref) {
			return f.ID, true
		}
	}
	return ref, false
}

func (a *App) AddChat(ctx context.Context, _ []string) error {
	var c models.CoffeeChat

	ref, err := GetSimpleText(a.reader, "Firm (name or id)", a.out)
	if err != nil {
		return err
	}
	var ok bool
	if c.FirmID, ok = resolveFirmRef(store.Read(a.disp.Store(), store.Firms), ref); !ok && ref != "" {
		fmt.Fprintf(a.out, "No firm %q yet; the chat will show %s until one exists\n", ref, views.UnknownFirm)
	}
	if c.ContactName, err = GetSimpleText(a.reader, "Contact name", a.out); err != nil {
		return err
	}
	if c.ScheduledDate, err = GetDefaultText(a.reader, "Date", a.today(), a.out); err != nil {
		return err
	}
	if c.Notes, err = GetMultiline(a.reader, "Notes", a.out); err != nil {
		return err
	}

	added, err := services.Add(ctx, a.disp, store.CoffeeChats, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added coffee chat %s\n", added.ID)
	return nil
}

func (a *App) Chats(_ context.Context, args []string) error {
	st := a.disp.Store()
	chats := views.Filter(store.Read(st, store.CoffeeChats), views.Query[models.CoffeeChat]{
		Search:       strings.Join(args, " "),
		SearchFields: []views.Field[models.CoffeeChat]{views.ChatByContact, views.ChatByNotes},
	})
	rows := views.CoffeeChatRows(views.SortBy(chats, views.ChatByDate, true), store.Read(st, store.Firms))
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No coffee chats")
		return nil
	}

	tw := a.table()
	fmt.Fprintln(tw, "ID\tDATE\tCONTACT\tFIRM\tDONE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", r.Chat.ID, r.Chat.ScheduledDate, r.Chat.ContactName, r.FirmName, r.Chat.Completed)
	}
	return tw.Flush()
}

func (a *App) AddIntel(ctx context.Context, _ []string) error {
	var m models.MarketIntel
	var err error

	if m.Headline, err = GetSimpleText(a.reader, "Headline", a.out); err != nil {
		return err
	}
	if m.Category, err = GetSimpleText(a.reader, "Category", a.out); err != nil {
		return err
	}
	if m.Date, err = GetDefaultText(a.reader, "Date", a.today(), a.out); err != nil {
		return err
	}
	if m.Content, err = GetMultiline(a.reader, "Content", a.out); err != nil {
		return err
	}
	card, err := GetDefaultText(a.reader, "Flashcard? (y/n)", "n", a.out)
	if err != nil {
		return err
	}
	if m.IsFlashcard = strings.HasPrefix(strings.ToLower(card), "y"); m.IsFlashcard {
		if m.FlashcardQuestion, err = GetSimpleText(a.reader, "Question", a.out); err != nil {
			return err
		}
		if m.FlashcardAnswer, err = GetMultiline(a.reader, "Answer", a.out); err != nil {
			return err
		}
	}

	added, err := services.Add(ctx, a.disp, store.MarketIntel, m)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added market intel %s (week %d of %d)\n", added.ID, added.WeekNumber, added.Year)
	return nil
}

// Deck walks the flashcards and records a new review status for each one.
// An optional argument restricts the deck to one status.
func (a *App) Deck(ctx context.Context, args []string) error {
	var only models.ReviewStatus
	if len(args) > 0 {
		want := strings.Join(args, " ")
		for _, s := range models.ReviewStatuses {
			if strings.EqualFold(string(s), want) {
				only = s
			}
		}
		if only == "" {
			return fmt.Errorf("unknown review status %q", want)
		}
	}

	cards := views.Deck(store.Read(a.disp.Store(), store.MarketIntel), only)
	if len(cards) == 0 {
		fmt.Fprintln(a.out, "No flashcards")
		return nil
	}

	for i, c := range cards {
		fmt.Fprintf(a.out, "[%d/%d] %s\n", i+1, len(cards), c.Question)
		if _, err := GetSimpleText(a.reader, "Press Enter to reveal", a.out); err != nil {
			return err
		}
		fmt.Fprintln(a.out, c.Answer)

		status, err := GetChoice(a.reader, "How well do you know it", models.ReviewStatuses, c.Status, a.out)
		if err != nil {
			return err
		}
		if status == c.Status {
			continue
		}
		if err := services.Update(ctx, a.disp, store.MarketIntel, c.IntelID, func(m *models.MarketIntel) {
			m.ReviewStatus = status
		}); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes a record: rm <kind> <id>.
func (a *App) Remove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rm firm|chat|mock|contact|event|deal|news|intel|question|resource <id>")
	}
	kind, id := args[0], args[1]

	var err error
	switch kind {
	case "firm":
		err = services.Delete(ctx, a.disp, store.Firms, id)
	case "chat":
		err = services.Delete(ctx, a.disp, store.CoffeeChats, id)
	case "mock":
		err = services.Delete(ctx, a.disp, store.MockInterviews, id)
	case "contact":
		err = services.Delete(ctx, a.disp, store.Contacts, id)
	case "event":
		err = services.Delete(ctx, a.disp, store.NetworkingEvents, id)
	case "deal":
		err = services.Delete(ctx, a.disp, store.DealExperiences, id)
	case "news":
		err = services.Delete(ctx, a.disp, store.NewsItems, id)
	case "intel":
		err = services.Delete(ctx, a.disp, store.MarketIntel, id)
	case "question":
		err = a.removeQuestion(ctx, id)
	case "resource":
		err = a.disp.DeleteResource(ctx, id)
	default:
		return fmt.Errorf("unknown record kind %q", kind)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted", kind, id)
	return nil
}

func (a *App) removeQuestion(ctx context.Context, id string) error {
	for _, kind := range models.QuestionKinds {
		for _, q := range store.Read(a.disp.Store(), store.Questions(kind)) {
			if q.ID == id {
				return a.disp.DeleteQuestion(ctx, kind, id)
			}
		}
	}
	return nil
}
