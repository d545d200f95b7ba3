package domain

import "time"

type UserRole string

const (
	RoleTourist       UserRole = "tourist"
	RoleBusinessOwner UserRole = "business_owner"
	RoleAdmin         UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     *string   `json:"full_name,omitempty" db:"full_name"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

// ClaimRequest - заявка пользователя на владение заведением
type ClaimRequest struct {
	ID          int64       `json:"id" db:"id"`
	BusinessID  int64       `json:"business_id" db:"business_id"`
	UserID      int64       `json:"user_id" db:"user_id"`
	Status      ClaimStatus `json:"status" db:"status"`
	DocumentURL *string     `json:"document_url,omitempty" db:"document_url"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	ResolvedAt  *time.Time  `json:"resolved_at,omitempty" db:"resolved_at"`
}

// CanResolveTo reports whether the claim may move to the target status.
// Only pending claims move, and only to approved or rejected.
func (c *ClaimRequest) CanResolveTo(target ClaimStatus) bool {
	if c.Status != ClaimPending {
		return false
	}
	return target == ClaimApproved || target == ClaimRejected
}
