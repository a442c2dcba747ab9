package domain

// TransactionFilter selects transactions. A zero field matches anything.
// UserID matches a user on either side of the payment.
type TransactionFilter struct {
	EventID    int
	UserID     int
	GiverID    int
	ReceiverID int
}

func (f TransactionFilter) IsEmpty() bool {
	return f.EventID <= 0 && f.UserID <= 0 && f.GiverID <= 0 && f.ReceiverID <= 0
}

func (f TransactionFilter) Matches(t Transaction) bool {
	if f.EventID > 0 && t.EventID != f.EventID {
		return false
	}
	if f.UserID > 0 && t.GiverID != f.UserID && t.ReceiverID != f.UserID {
		return false
	}
	if f.GiverID > 0 && t.GiverID != f.GiverID {
		return false
	}
	if f.ReceiverID > 0 && t.ReceiverID != f.ReceiverID {
		return false
	}
	return true
}
