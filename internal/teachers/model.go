package teachers

import "time"

type Teacher struct {
	ID        int64     `db:"id" json:"id"`
	LastName  string    `db:"last_name" json:"lastName"`
	FirstName string    `db:"first_name" json:"firstName"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
