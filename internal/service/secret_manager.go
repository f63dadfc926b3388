package service

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"google.golang.org/api/option"
)

// SecretResolver fetches secret payloads by resource name.
type SecretResolver interface {
	ResolveSecret(ctx context.Context, name string) (string, error)
}

// SecretManagerResolver resolves secrets through Google Cloud Secret Manager.
type SecretManagerResolver struct {
	client *secretmanager.Client
}

// NewSecretManagerResolver creates a resolver backed by Google Cloud Secret
// Manager. Callers must Close it.
func NewSecretManagerResolver(ctx context.Context, opts ...option.ClientOption) (*SecretManagerResolver, error) {
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	return &SecretManagerResolver{client: client}, nil
}

// ResolveSecret accepts a full version name
// ("projects/p/secrets/s/versions/latest").
func (r *SecretManagerResolver) ResolveSecret(ctx context.Context, name string) (string, error) {
	result, err := r.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version: %w", err)
	}
	return string(result.Payload.Data), nil
}

func (r *SecretManagerResolver) Close() error {
	return r.client.Close()
}
