// Package settlement computes kitty balances, participant counts and pairwise
// net balances from a set of transactions. Every function is a pure fold over
// its input and never touches storage.
package settlement

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/cheapy/internal/domain"
)

// Summary holds every settlement figure of one event.
type Summary struct {
	EventID          int
	KittyBalance     domain.Amount
	KittyNetBalance  domain.Amount
	ParticipantCount int
	TransactionCount int
}

// Filter returns the transactions matching f, preserving order.
func Filter(txs []domain.Transaction, f domain.TransactionFilter) []domain.Transaction {
	var out []domain.Transaction
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// KittyBalance sums every payment the kitty received within the event.
// Payments made by the kitty are not subtracted; see KittyNetBalance.
func KittyBalance(eventID, kittyID int, txs []domain.Transaction) (domain.Amount, error) {
	if err := checkID("event", eventID); err != nil {
		return domain.Amount{}, err
	}
	if err := checkID("kitty", kittyID); err != nil {
		return domain.Amount{}, err
	}
	return sum(txs, domain.TransactionFilter{EventID: eventID, ReceiverID: kittyID}), nil
}

// KittyNetBalance is what the kitty actually holds: received minus paid out.
func KittyNetBalance(eventID, kittyID int, txs []domain.Transaction) (domain.Amount, error) {
	in, err := KittyBalance(eventID, kittyID, txs)
	if err != nil {
		return domain.Amount{}, err
	}
	out := sum(txs, domain.TransactionFilter{EventID: eventID, GiverID: kittyID})
	return subtract(in, out), nil
}

// ParticipantCount counts distinct users other than the kitty that gave or
// received money within the event.
func ParticipantCount(eventID, kittyID int, txs []domain.Transaction) (int, error) {
	if err := checkID("event", eventID); err != nil {
		return 0, err
	}
	if err := checkID("kitty", kittyID); err != nil {
		return 0, err
	}

	seen := make(map[int]struct{})
	for _, t := range txs {
		if t.EventID != eventID {
			continue
		}
		if t.GiverID != kittyID {
			seen[t.GiverID] = struct{}{}
		}
		if t.ReceiverID != kittyID {
			seen[t.ReceiverID] = struct{}{}
		}
	}
	return len(seen), nil
}

// NetBalance returns what giverID paid receiverID minus what receiverID paid
// giverID within the event. Positive means money flowed net from giverID to
// receiverID; a pair of the same user is always zero.
func NetBalance(eventID, giverID, receiverID int, txs []domain.Transaction) (domain.Amount, error) {
	if err := checkID("event", eventID); err != nil {
		return domain.Amount{}, err
	}
	if err := checkID("giver", giverID); err != nil {
		return domain.Amount{}, err
	}
	if err := checkID("receiver", receiverID); err != nil {
		return domain.Amount{}, err
	}
	if giverID == receiverID {
		return domain.Amount{}, nil
	}

	forward := sum(txs, domain.TransactionFilter{EventID: eventID, GiverID: giverID, ReceiverID: receiverID})
	backward := sum(txs, domain.TransactionFilter{EventID: eventID, GiverID: receiverID, ReceiverID: giverID})
	return subtract(forward, backward), nil
}

// TransactionCount counts transactions of userID (either side) and/or eventID.
// Non-positive ids are treated as absent. With both absent the result is 0,
// not the size of the ledger.
func TransactionCount(txs []domain.Transaction, userID, eventID int) int {
	f := domain.TransactionFilter{UserID: userID, EventID: eventID}
	if f.IsEmpty() {
		return 0
	}
	n := 0
	for _, t := range txs {
		if f.Matches(t) {
			n++
		}
	}
	return n
}

// Summarize computes every per-event figure in one call.
func Summarize(eventID, kittyID int, txs []domain.Transaction) (Summary, error) {
	gross, err := KittyBalance(eventID, kittyID, txs)
	if err != nil {
		return Summary{}, err
	}
	net, err := KittyNetBalance(eventID, kittyID, txs)
	if err != nil {
		return Summary{}, err
	}
	participants, err := ParticipantCount(eventID, kittyID, txs)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		EventID:          eventID,
		KittyBalance:     gross,
		KittyNetBalance:  net,
		ParticipantCount: participants,
		TransactionCount: TransactionCount(txs, 0, eventID),
	}, nil
}

// sum totals the amounts of the transactions matching f. Non-finite amounts
// carry no money and are skipped.
func sum(txs []domain.Transaction, f domain.TransactionFilter) domain.Amount {
	total := decimal.Zero
	found := false
	for _, t := range txs {
		if !f.Matches(t) || math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
			continue
		}
		total = total.Add(decimal.NewFromFloat(t.Amount))
		found = true
	}
	return domain.Amount{Value: total.InexactFloat64(), Found: found}
}

func subtract(a, b domain.Amount) domain.Amount {
	v := decimal.NewFromFloat(a.Value).Sub(decimal.NewFromFloat(b.Value))
	return domain.Amount{Value: v.InexactFloat64(), Found: a.Found || b.Found}
}

func checkID(field string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id %d", domain.ErrInvalidArgument, field, id)
	}
	return nil
}
