package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleAdmin     = "admin"
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"

	AccountActive  = "active"
	AccountBlocked = "blocked"
)

var Roles = []string{RoleAdmin, RoleDonor, RoleVolunteer}

type User struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string        `bson:"name" json:"name"`
	Email      string        `bson:"email" json:"email"`
	Image      string        `bson:"image,omitempty" json:"image,omitempty"`
	BloodGroup string        `bson:"bloodGroup" json:"bloodGroup"`
	District   string        `bson:"district" json:"district"`
	Upazila    string        `bson:"upazila" json:"upazila"`
	Role       string        `bson:"role" json:"role"`
	Status     string        `bson:"status" json:"status"`

	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

func IsRole(s string) bool {
	for _, r := range Roles {
		if r == s {
			return true
		}
	}
	return false
}

func IsAccountStatus(s string) bool {
	return s == AccountActive || s == AccountBlocked
}
