package sessions

import "time"

// Session is a class offering. Users holds the roster as user ids; the
// participants table keys on (session_id, user_id) so an id can appear at
// most once.
type Session struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Date        time.Time `db:"date" json:"date"`
	TeacherID   *int64    `db:"teacher_id" json:"teacher_id"`
	Description string    `db:"description" json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
