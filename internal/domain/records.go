package domain

// Contact is one phone-book row. Rows are only ever read or written together
// with their OwnerID, so one account can never reach another's contacts.
type Contact struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID     int64  `json:"ownerId" gorm:"index;not null"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// FilmEntry is one watched-films row. Watched is an integer (0/1) and
// Timestamp is an opaque string: both are supplied by the caller, never
// derived server-side.
type FilmEntry struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID   int64  `json:"ownerId" gorm:"index;not null"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	Watched   int    `json:"watched"`
	Timestamp string `json:"timestamp"`
}
