package models

type User struct {
	ID        string   `bson:"_id,omitempty"`
	Email     string   `bson:"email"`
	FullName  string   `bson:"fullName"`
	Password  string   `bson:"password"`
	Role      UserRole `bson:"role"`
	IsActive  bool     `bson:"isActive"`
	TimeModel `bson:",inline"`
}
