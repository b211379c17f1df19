package views

import "github.com/dmitrijs2005/recruitkeeper/internal/client/models"

// UnknownFirm labels a firm reference that no longer resolves.
const UnknownFirm = "Unknown"

// ResolveFirm looks a weak firm reference up. A dangling id is not an error.
func ResolveFirm(firms []models.Firm, id string) (models.Firm, bool) {
	if id == "" {
		return models.Firm{}, false
	}
	for _, f := range firms {
		if f.ID == id {
			return f, true
		}
	}
	return models.Firm{}, false
}

// FirmName returns the name of the referenced firm, or UnknownFirm.
func FirmName(firms []models.Firm, id string) string {
	if f, ok := ResolveFirm(firms, id); ok {
		return f.Name
	}
	return UnknownFirm
}

// CoffeeChatRow is a coffee chat joined with its firm.
type CoffeeChatRow struct {
	Chat     models.CoffeeChat
	FirmName string
	Resolved bool
}

func CoffeeChatRows(chats []models.CoffeeChat, firms []models.Firm) []CoffeeChatRow {
	byID := make(map[string]string, len(firms))
	for _, f := range firms {
		byID[f.ID] = f.Name
	}
	rows := make([]CoffeeChatRow, 0, len(chats))
	for _, c := range chats {
		name, ok := byID[c.FirmID]
		if !ok {
			name = UnknownFirm
		}
		rows = append(rows, CoffeeChatRow{Chat: c, FirmName: name, Resolved: ok})
	}
	return rows
}

// ChatsForFirm returns the coffee chats that reference firmID.
func ChatsForFirm(chats []models.CoffeeChat, firmID string) []models.CoffeeChat {
	var out []models.CoffeeChat
	for _, c := range chats {
		if c.FirmID == firmID {
			out = append(out, c)
		}
	}
	return out
}
