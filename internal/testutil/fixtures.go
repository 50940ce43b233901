package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mvdberg/huisportaal/internal/domain"
)

// AccountBuilder creates test accounts with a builder pattern.
type AccountBuilder struct {
	username string
	password string
}

// NewAccountBuilder creates a new AccountBuilder with default values.
func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		username: fmt.Sprintf("testuser_%s", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithUsername sets the username.
func (b *AccountBuilder) WithUsername(username string) *AccountBuilder {
	b.username = username
	return b
}

// WithPassword sets the password.
func (b *AccountBuilder) WithPassword(password string) *AccountBuilder {
	b.password = password
	return b
}

// Build creates the account in the database and returns it with the raw
// password.
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Account, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	account := &domain.Account{
		Username:     b.username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create account: %v", err)
	}

	return account, b.password
}

// BuildAndLogin creates the account and logs the client in through the form
// endpoints, leaving the session cookie in the client's jar.
func (b *AccountBuilder) BuildAndLogin(t *testing.T, ts *TestServer, client *http.Client) *domain.Account {
	t.Helper()

	account, password := b.Build(t, ts.DB.DB)

	resp := ts.PostForm(t, client, "/login", url.Values{
		"username": {account.Username},
		"password": {password},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login failed with status %d", resp.StatusCode)
	}

	return account
}

// ContactBuilder creates phone-book rows directly in the database.
type ContactBuilder struct {
	ownerID int64
	name    string
	phone   string
}

func NewContactBuilder(ownerID int64) *ContactBuilder {
	return &ContactBuilder{
		ownerID: ownerID,
		name:    "Test Contact",
		phone:   "0612345678",
	}
}

func (b *ContactBuilder) WithName(name string) *ContactBuilder {
	b.name = name
	return b
}

func (b *ContactBuilder) WithPhone(phone string) *ContactBuilder {
	b.phone = phone
	return b
}

func (b *ContactBuilder) Build(t *testing.T, db *gorm.DB) *domain.Contact {
	t.Helper()

	contact := &domain.Contact{
		OwnerID:     b.ownerID,
		Name:        b.name,
		PhoneNumber: b.phone,
	}
	if err := db.Create(contact).Error; err != nil {
		t.Fatalf("failed to create contact: %v", err)
	}
	return contact
}

// FilmBuilder creates film-log rows directly in the database.
type FilmBuilder struct {
	ownerID   int64
	title     string
	year      string
	watched   int
	timestamp string
}

func NewFilmBuilder(ownerID int64) *FilmBuilder {
	return &FilmBuilder{
		ownerID:   ownerID,
		title:     "Test Film",
		year:      "2001",
		watched:   0,
		timestamp: "2026-01-01 20:00",
	}
}

func (b *FilmBuilder) WithTitle(title string) *FilmBuilder {
	b.title = title
	return b
}

func (b *FilmBuilder) WithYear(year string) *FilmBuilder {
	b.year = year
	return b
}

func (b *FilmBuilder) WithWatched(watched int) *FilmBuilder {
	b.watched = watched
	return b
}

func (b *FilmBuilder) WithTimestamp(timestamp string) *FilmBuilder {
	b.timestamp = timestamp
	return b
}

func (b *FilmBuilder) Build(t *testing.T, db *gorm.DB) *domain.FilmEntry {
	t.Helper()

	film := &domain.FilmEntry{
		OwnerID:   b.ownerID,
		Title:     b.title,
		Year:      b.year,
		Watched:   b.watched,
		Timestamp: b.timestamp,
	}
	if err := db.Create(film).Error; err != nil {
		t.Fatalf("failed to create film entry: %v", err)
	}
	return film
}
