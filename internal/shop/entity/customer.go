package entity

// Customer is a shop customer. Fields are immutable after creation; only
// the set of repair orders referencing a customer changes over time.
type Customer struct {
	ID          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName   string `json:"first_name" gorm:"size:100;not null"`
	LastName    string `json:"last_name" gorm:"size:100;not null"`
	PhoneNumber string `json:"phone_number" gorm:"size:20;not null"`
}

func (Customer) TableName() string {
	return "customers"
}

// DisplayName is "{first} {last}" as shown in order views.
func (c Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
