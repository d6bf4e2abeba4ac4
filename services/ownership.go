package services

import (
	"contenthub-api/models"
)

// Identifiers shorter than this were not produced by the generator, so the
// services treat them as "caller did not supply a real id".
const minIDLength = 7

// CanMutate reports whether the acting identity may modify or delete a
// resource owned by ownerUserID: the owner themselves, or an admin.
func CanMutate(identity models.Identity, ownerUserID string) bool {
	return identity.UserID == ownerUserID || identity.Admin
}
