// Package services holds the business rules between the HTTP layer
// and the repositories: credential checks, token issuance, ownership
// enforcement and snapshot archiving.
package services

import "github.com/dmitrijs2005/reportvault/internal/common"

// authorizeOwner is the single place a resource owner is compared to
// the acting identity. Every mutating path on owned resources goes
// through here.
func authorizeOwner(ownerID, actorID string) error {
	if ownerID != actorID {
		return common.ErrorForbidden
	}
	return nil
}
