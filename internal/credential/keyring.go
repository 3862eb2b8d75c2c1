package credential

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/99designs/keyring"

	"github.com/nhle/smarttask/internal/model"
)

const serviceName = "smarttask"

// Keys of the secrets that may live in the keyring instead of the config
// file.
const (
	KeyCloudAPIKey = "ai.cloud_api_key"
	KeyJWTSecret   = "auth.jwt_secret"
)

// Keys lists every key the CLI accepts.
var Keys = []string{KeyCloudAPIKey, KeyJWTSecret}

// openKeyring returns a configured keyring instance. Tests replace it.
var openKeyring = func() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  filepath.Join(model.ConfigDir(), "credentials"),
		FilePasswordFunc:         keyring.FixedStringPrompt("smarttask-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

// Set stores a credential value by key in the system keyring.
func Set(key string, value string) error {
	if !known(key) {
		return fmt.Errorf("unknown credential key %q", key)
	}

	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: "SmartTask " + key,
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// Delete removes a credential by key from the system keyring.
func Delete(key string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Remove(key)
	if err != nil {
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}

	return nil
}

// FillSecrets copies keyring values into the secret fields of cfg that are
// still empty after loading the config file and environment. A missing
// keyring entry is not an error.
func FillSecrets(cfg *model.AppConfig) error {
	targets := map[string]*string{
		KeyCloudAPIKey: &cfg.AI.CloudAPIKey,
		KeyJWTSecret:   &cfg.Auth.JWTSecret,
	}

	for _, key := range Keys {
		field := targets[key]
		if *field != "" {
			continue
		}

		value, err := Get(key)
		if errors.Is(err, keyring.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		*field = value
	}

	return nil
}

func known(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
