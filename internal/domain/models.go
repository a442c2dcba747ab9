package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Nickname     string    `db:"nickname"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	PasswordSalt string    `db:"password_salt"`
	Birthdate    time.Time `db:"birthdate"`
	IsKitty      bool      `db:"is_kitty"`
	CreatedAt    time.Time `db:"created_at"`
}

type Event struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	AdminID     int       `db:"admin_id"`
	Place       string    `db:"place"`
	Description string    `db:"description"`
	Finished    bool      `db:"finished"`
	CreatedAt   time.Time `db:"created_at"`
}

// Transaction is a single payment from GiverID to ReceiverID within EventID.
// Direction is carried by the roles; Amount is stored as entered.
type Transaction struct {
	ID          int       `db:"id"`
	GiverID     int       `db:"giver_id"`
	ReceiverID  int       `db:"receiver_id"`
	EventID     int       `db:"event_id"`
	Amount      float64   `db:"amount"`
	Date        time.Time `db:"transaction_date"`
	Place       string    `db:"place"`
	Description string    `db:"description"`
}

// Amount is a computed balance. Found is false when no transaction
// contributed to Value, which keeps "no data" apart from a real zero.
type Amount struct {
	Value float64
	Found bool
}

type PasswordHasher interface {
	HashPassword(password string) (hash string, salt string, err error)
}

// NewUser builds a user from an already computed hash and salt.
func NewUser(name, nickname, email, hash, salt string, birthdate time.Time) *User {
	return &User{
		Name:         name,
		Nickname:     nickname,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Birthdate:    birthdate,
	}
}

// NewUserWithPassword hashes password with a fresh salt before building the user.
func NewUserWithPassword(hasher PasswordHasher, name, nickname, email, password string, birthdate time.Time) (*User, error) {
	hash, salt, err := hasher.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return NewUser(name, nickname, email, hash, salt, birthdate), nil
}
