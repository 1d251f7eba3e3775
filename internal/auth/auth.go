package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/Gopalakrishna-Kondabolu/smart-health-chatbot/internal/models"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Verifier is the identity provider: it turns a bearer credential into
// a verified identity or fails with ErrUnauthenticated.
type Verifier interface {
	Verify(ctx context.Context, token string) (models.Identity, error)
}

// StaticVerifier resolves tokens from a fixed map, configured as
// token -> "userID:email". It stands in for an external identity
// provider in development and tests.
type StaticVerifier struct {
	identities map[string]models.Identity
}

func NewStaticVerifier(tokens map[string]string) *StaticVerifier {
	identities := make(map[string]models.Identity, len(tokens))
	for token, value := range tokens {
		userID, email, found := strings.Cut(value, ":")
		if !found {
			userID = value
		}
		identities[token] = models.Identity{UserID: userID, Email: email}
	}
	return &StaticVerifier{identities: identities}
}

func (v *StaticVerifier) Verify(ctx context.Context, token string) (models.Identity, error) {
	identity, exists := v.identities[token]
	if !exists {
		return models.Identity{}, ErrUnauthenticated
	}
	return identity, nil
}
