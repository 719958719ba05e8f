package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"taskmanager/model"

	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// ProviderTokenSource supplies the OAuth ID token used for federated
// sign-in. The default reads GOOGLE_PROVIDER_ID_TOKEN.
type ProviderTokenSource func(ctx context.Context) (string, error)

// FirebaseAuth implements AuthService against the Identity Toolkit API, the
// hosted counterpart of LocalAuth. The identity stream is driven by the
// sign-in/sign-out calls themselves.
type FirebaseAuth struct {
	identityHub

	rp            *identitytoolkit.RelyingpartyService
	providerToken ProviderTokenSource
}

func NewFirebaseAuth(ctx context.Context, apiKey string, providerToken ProviderTokenSource) (*FirebaseAuth, error) {
	if apiKey == "" {
		return nil, errors.New("firebase web api key is not set")
	}

	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("initializing identity toolkit service: %w", err)
	}

	if providerToken == nil {
		providerToken = func(ctx context.Context) (string, error) {
			token := os.Getenv("GOOGLE_PROVIDER_ID_TOKEN")
			if token == "" {
				return "", errors.New("environment variable GOOGLE_PROVIDER_ID_TOKEN is not set")
			}
			return token, nil
		}
	}

	return &FirebaseAuth{
		rp:            svc.Relyingparty,
		providerToken: providerToken,
	}, nil
}

func (a *FirebaseAuth) SignInEmail(ctx context.Context, email, password string) error {
	resp, err := a.rp.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("verifying password: %w", err)
	}

	a.publish(&model.Identity{UID: resp.LocalId, Email: resp.Email, IDToken: resp.IdToken})
	return nil
}

// SignUpEmail creates the account and signs it in, matching the collaborator's
// create-then-authenticate behavior.
func (a *FirebaseAuth) SignUpEmail(ctx context.Context, email, password string) error {
	resp, err := a.rp.SignupNewUser(&identitytoolkit.IdentitytoolkitRelyingpartySignupNewUserRequest{
		Email:    email,
		Password: password,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("signing up user: %w", err)
	}

	a.publish(&model.Identity{UID: resp.LocalId, Email: email, IDToken: resp.IdToken})
	return nil
}

func (a *FirebaseAuth) SignInFederated(ctx context.Context) error {
	providerToken, err := a.providerToken(ctx)
	if err != nil {
		return fmt.Errorf("obtaining provider token: %w", err)
	}

	resp, err := a.rp.VerifyAssertion(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyAssertionRequest{
		PostBody:          "id_token=" + providerToken + "&providerId=google.com",
		RequestUri:        "http://localhost",
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("verifying provider assertion: %w", err)
	}

	a.publish(&model.Identity{UID: resp.LocalId, Email: resp.Email, IDToken: resp.IdToken})
	return nil
}

func (a *FirebaseAuth) SignOut(ctx context.Context) error {
	a.publish(nil)
	return nil
}

var _ AuthService = (*FirebaseAuth)(nil)
