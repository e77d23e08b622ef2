package department

import "errors"

var ErrNameTaken = errors.New("Department already exists")

// Department is an organisational unit of the clinic. The base set is seeded
// by migration.
type Department struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
