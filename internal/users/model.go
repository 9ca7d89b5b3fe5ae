package users

import "time"

type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	LastName  string    `db:"last_name" json:"lastName"`
	FirstName string    `db:"first_name" json:"firstName"`
	Password  string    `db:"password" json:"-"`
	Admin     bool      `db:"admin" json:"admin"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
