// Package records adapts the external record store (DynamoDB) holding a
// denormalized copy of confirmed account profiles. A record is written once
// at confirmation time and never mutated by this system.
package records

import "context"

// AccountRecord is the profile copy kept in the record store. Attribute
// names match the table schema of the original deployment.
type AccountRecord struct {
	UserID    string `dynamodbav:"userId" json:"userId"`
	Username  string `dynamodbav:"username" json:"username"`
	Email     string `dynamodbav:"email" json:"email"`
	FirstName string `dynamodbav:"firstName" json:"firstName"`
	LastName  string `dynamodbav:"lastName" json:"lastName"`
	Phone     string `dynamodbav:"phone" json:"phone"`
	Role      string `dynamodbav:"role" json:"role"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Store is the boundary to the record store.
type Store interface {
	// Put inserts a record. Attempted exactly once; no retries.
	Put(ctx context.Context, rec *AccountRecord) error
}
