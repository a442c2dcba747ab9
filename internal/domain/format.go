package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const dateLayout = "02.01.2006"

// FormatAmount renders a currency value with two decimals.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func FormatUser(u User) string {
	return fmt.Sprintf("%d, %s, %s, %s, %s", u.ID, u.Name, u.Nickname, u.Email, u.Birthdate.Format(dateLayout))
}

func FormatEvent(e Event) string {
	return fmt.Sprintf("%d, %s, at %s, from %s, admin %d", e.ID, e.Name, e.Place, e.StartDate.Format(dateLayout), e.AdminID)
}

func FormatTransaction(t Transaction) string {
	return fmt.Sprintf("%d, %d -> %d, event %d, %s, %s, %s, %s",
		t.ID, t.GiverID, t.ReceiverID, t.EventID, FormatAmount(t.Amount), t.Date.Format(dateLayout), t.Place, t.Description)
}
