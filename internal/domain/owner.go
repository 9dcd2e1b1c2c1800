package domain

// Owner is a legacy pet-owner account. Owners carry no stored role.
type Owner struct {
	ID    int64
	Name  string
	Email string
	Phone *string
}
