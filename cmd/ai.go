package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rnwolfe/zenith/internal/ai"
	"github.com/rnwolfe/zenith/internal/config"
	"github.com/rnwolfe/zenith/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var aiKeyProvider string

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Manage the AI coach",
	RunE:  runAIStatus,
}

var aiKeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage API keys for the coach",
	RunE:  runAIStatus,
}

var aiKeySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store an API key",
	Long: `Store an API key in the encrypted keystore.

The key is read without echo from the terminal, or from stdin when piped:

  echo "$KEY" | zenith ai key set`,
	Args: cobra.NoArgs,
	RunE: runAIKeySet,
}

var aiKeyClearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"rm"},
	Short:   "Remove a stored API key",
	Args:    cobra.NoArgs,
	RunE:    runAIKeyClear,
}

func init() {
	aiCmd.AddCommand(aiKeyCmd)
	aiKeyCmd.AddCommand(aiKeySetCmd)
	aiKeyCmd.AddCommand(aiKeyClearCmd)
	aiKeyCmd.PersistentFlags().StringVarP(&aiKeyProvider, "provider", "p", "", "Provider name (default from config)")
}

func keyProvider() string {
	if aiKeyProvider != "" {
		return aiKeyProvider
	}
	cfg, err := config.Load()
	if err != nil || cfg.AI.Provider == "" {
		return config.DefaultProvider
	}
	return cfg.AI.Provider
}

func runAIKeySet(cmd *cobra.Command, _ []string) error {
	provider := keyProvider()
	if !slices.Contains(ai.ListProviders(), provider) {
		return fmt.Errorf("unknown provider %q (available: %s)", provider, strings.Join(ai.ListProviders(), ", "))
	}

	key, err := readKey(cmd.InOrStdin(), provider)
	if err != nil {
		return err
	}
	if key == "" {
		return errors.New("no key given")
	}

	if err := ai.NewKeystore().Set(provider, key); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("API key stored for %s", ui.Accent.Render(provider)))
	if env := ai.EnvVar(provider); env != "" && os.Getenv(env) != "" {
		ui.Warn(fmt.Sprintf("%s is set and takes precedence over the stored key.", env))
	}
	return nil
}

func readKey(in io.Reader, provider string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(os.Stderr, "  %s API key: ", provider)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runAIKeyClear(_ *cobra.Command, _ []string) error {
	provider := keyProvider()
	if err := ai.NewKeystore().Delete(provider); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("API key removed for %s", ui.Accent.Render(provider)))
	return nil
}

func runAIStatus(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	provider := cfg.AI.Provider
	if provider == "" {
		provider = config.DefaultProvider
	}
	model := cfg.AI.Model
	if model == "" {
		model = config.DefaultModel
	}

	ks := ai.NewKeystore()
	stored, err := ks.List()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("  AI coach"))
	fmt.Println()
	ui.Kv("Provider", provider)
	ui.Kv("Model", model)

	haveKey := true
	switch env := ai.EnvVar(provider); {
	case env != "" && os.Getenv(env) != "":
		ui.Kv("Key", "environment ("+env+")")
	case slices.Contains(stored, provider):
		ui.Kv("Key", "keystore")
	default:
		haveKey = false
		ui.Kv("Key", ui.Muted.Render("none, using built-in suggestions"))
	}
	ui.Kv("Keystore", ks.Path())
	fmt.Println()
	if !haveKey {
		ui.Tip("`zenith ai key set` to enable AI suggestions and guides.")
		fmt.Println()
	}
	return nil
}
