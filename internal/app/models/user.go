package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an API account keyed by mobile number. Passwords are stored
// bcrypt-hashed; hashing is an explicit pre-persist transform applied by
// the user service, not a lifecycle hook on the type.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	MobileNumber int64              `json:"mobileNumber" bson:"mobileNumber"`
	Password     string             `json:"-" bson:"password"`
	Department   Department         `json:"department,omitempty" bson:"department,omitempty"`
	Role         Role               `json:"role" bson:"role"`
}
