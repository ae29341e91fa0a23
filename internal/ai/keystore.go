package ai

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"filippo.io/age"
	"filippo.io/age/armor"
	"github.com/rnwolfe/zenith/internal/config"
)

// Keystore keeps API keys in a single age-encrypted file. The passphrase is
// derived from the machine, so keys are unreadable if the file is copied
// elsewhere but no prompt is needed locally.
type Keystore struct {
	path       string
	passphrase string
	// workFactor is the scrypt log2 cost used when writing.
	workFactor int
}

type keystoreData struct {
	Keys map[string]string `json:"keys"`
}

const defaultWorkFactor = 15

// NewKeystore opens the keystore in the XDG data directory.
func NewKeystore() *Keystore {
	paths := config.GetPaths()
	hostname, _ := os.Hostname()
	seed := sha256.Sum256([]byte(hostname + ":" + paths.DataDir))
	return &Keystore{
		path:       filepath.Join(paths.DataDir, "keys.age"),
		passphrase: hex.EncodeToString(seed[:]),
		workFactor: defaultWorkFactor,
	}
}

// Path returns the keystore file location.
func (k *Keystore) Path() string { return k.path }

// Get returns the key for provider. The provider's environment variable wins
// over the stored key. A missing key is reported as ErrNoKey.
func (k *Keystore) Get(provider string) (string, error) {
	if env := EnvVar(provider); env != "" {
		if v := os.Getenv(env); v != "" {
			return v, nil
		}
	}

	data, err := k.load()
	if err != nil {
		return "", err
	}
	key, ok := data.Keys[provider]
	if !ok || key == "" {
		if env := EnvVar(provider); env != "" {
			return "", fmt.Errorf("%w for %s (set %s or run `zenith ai key set`)", ErrNoKey, provider, env)
		}
		return "", fmt.Errorf("%w for %s", ErrNoKey, provider)
	}
	return key, nil
}

// Set stores the key for provider.
func (k *Keystore) Set(provider, apiKey string) error {
	data, err := k.load()
	if err != nil {
		return err
	}
	data.Keys[provider] = apiKey
	return k.save(data)
}

// Delete removes the key for provider. Removing a missing key is not an error.
func (k *Keystore) Delete(provider string) error {
	data, err := k.load()
	if err != nil {
		return err
	}
	if _, ok := data.Keys[provider]; !ok {
		return nil
	}
	delete(data.Keys, provider)
	return k.save(data)
}

// List returns the providers with a stored key, sorted.
func (k *Keystore) List() ([]string, error) {
	data, err := k.load()
	if err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(data.Keys)), nil
}

func (k *Keystore) load() (*keystoreData, error) {
	data := &keystoreData{Keys: map[string]string{}}

	raw, err := os.ReadFile(k.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keystore: %w", err)
	}

	identity, err := age.NewScryptIdentity(k.passphrase)
	if err != nil {
		return nil, fmt.Errorf("creating age identity: %w", err)
	}
	r, err := age.Decrypt(armor.NewReader(bytes.NewReader(raw)), identity)
	if err != nil {
		return nil, fmt.Errorf("decrypting keystore %s: %w", k.path, err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading decrypted keystore: %w", err)
	}
	if err := json.Unmarshal(plaintext, data); err != nil {
		return nil, fmt.Errorf("parsing keystore: %w", err)
	}
	if data.Keys == nil {
		data.Keys = map[string]string{}
	}
	return data, nil
}

func (k *Keystore) save(data *keystoreData) error {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return err
	}

	recipient, err := age.NewScryptRecipient(k.passphrase)
	if err != nil {
		return fmt.Errorf("creating age recipient: %w", err)
	}
	recipient.SetWorkFactor(k.workFactor)

	var buf bytes.Buffer
	armorWriter := armor.NewWriter(&buf)
	w, err := age.Encrypt(armorWriter, recipient)
	if err != nil {
		return fmt.Errorf("initializing encryption: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return fmt.Errorf("encrypting keystore: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encryption: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return fmt.Errorf("finalizing armor: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(k.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(k.path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing keystore: %w", err)
	}
	return os.Chmod(k.path, 0o600)
}
