// Package account holds the minimal identity model the generator needs:
// who the user is and how many pages their tier allows. Authentication
// mechanics live outside this program.
package account

import "math"

// User mirrors the identity record supplied by the auth collaborator.
type User struct {
	ID           string
	Email        string
	IsAdmin      bool
	IsSubscribed bool
}

// Page ceilings per tier.
const (
	MaxPagesFreeTier   = 1
	MaxPagesSubscribed = 5
)

// MaxPages returns the page-count ceiling for a user. A nil user is an
// anonymous visitor on the free tier.
func MaxPages(u *User) int {
	switch {
	case u == nil:
		return MaxPagesFreeTier
	case u.IsAdmin:
		return math.MaxInt
	case u.IsSubscribed:
		return MaxPagesSubscribed
	default:
		return MaxPagesFreeTier
	}
}
