package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionFilter_Matches(t *testing.T) {
	tx := Transaction{ID: 1, GiverID: 2, ReceiverID: 3, EventID: 7, Amount: 10}

	tests := []struct {
		name   string
		filter TransactionFilter
		want   bool
	}{
		{name: "Empty filter matches", filter: TransactionFilter{}, want: true},
		{name: "Same event", filter: TransactionFilter{EventID: 7}, want: true},
		{name: "Other event", filter: TransactionFilter{EventID: 8}, want: false},
		{name: "User as giver", filter: TransactionFilter{UserID: 2}, want: true},
		{name: "User as receiver", filter: TransactionFilter{UserID: 3}, want: true},
		{name: "User not involved", filter: TransactionFilter{UserID: 4}, want: false},
		{name: "Giver and receiver", filter: TransactionFilter{GiverID: 2, ReceiverID: 3}, want: true},
		{name: "Reversed pair", filter: TransactionFilter{GiverID: 3, ReceiverID: 2}, want: false},
		{name: "Event and user", filter: TransactionFilter{EventID: 7, UserID: 3}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tx))
		})
	}
}

func TestTransactionFilter_IsEmpty(t *testing.T) {
	assert.True(t, TransactionFilter{}.IsEmpty())
	assert.True(t, TransactionFilter{EventID: -1, UserID: -1}.IsEmpty())
	assert.False(t, TransactionFilter{UserID: 1}.IsEmpty())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "118.00", FormatAmount(118))
	assert.Equal(t, "0.30", FormatAmount(0.1+0.2))
	assert.Equal(t, "-35.00", FormatAmount(-35))
}

func TestFormatTransaction(t *testing.T) {
	tx := Transaction{
		ID: 3, GiverID: 1, ReceiverID: 2, EventID: 9, Amount: 30,
		Date: time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC), Place: "Warsaw", Description: "Supermarket Friday",
	}
	assert.Equal(t, "3, 1 -> 2, event 9, 30.00, 01.09.2016, Warsaw, Supermarket Friday", FormatTransaction(tx))
}

type stubHasher struct {
	err error
}

func (s stubHasher) HashPassword(password string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	return "hash-of-" + password, "salt", nil
}

func TestNewUserWithPassword(t *testing.T) {
	birth := time.Date(1989, 2, 14, 0, 0, 0, 0, time.UTC)

	user, err := NewUserWithPassword(stubHasher{}, "Bruno", "Kowagunga", "bruno@example.com", "secret", birth)
	require.NoError(t, err)
	assert.Equal(t, 0, user.ID)
	assert.Equal(t, "hash-of-secret", user.PasswordHash)
	assert.Equal(t, "salt", user.PasswordSalt)

	_, err = NewUserWithPassword(stubHasher{err: errors.New("boom")}, "Bruno", "Kowagunga", "", "secret", birth)
	assert.Error(t, err)
}

func TestParseBalanceMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BalanceMode
		wantErr bool
	}{
		{in: "", want: BalanceGross},
		{in: "gross", want: BalanceGross},
		{in: "net", want: BalanceNet},
		{in: "NET", wantErr: true},
		{in: "average", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			mode, err := ParseBalanceMode(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}
