package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"github.com/wendbv/pluvo-go/internal/logging"
	"github.com/wendbv/pluvo-go/pkg/pluvo"
	"github.com/wendbv/pluvo-go/pkg/pluvoclient"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"

	NotAvailable = "N/A"
)

// Static errors for err113 compliance.
var (
	errInvalidTokenType = errors.New("token type must be student or manager")
	errTitleRequired    = errors.New("a course title is required, via --title or --from-file")
)

// CreateClient builds a pluvo.Client from the effective CLI configuration.
func CreateClient(ctx context.Context) (pluvo.Client, error) {
	config := &pluvo.Config{
		APIURL:       viper.GetString("api"),
		Token:        viper.GetString("token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		PageSize:     viper.GetInt("page_size"),
	}

	if viper.GetBool("verbose") {
		logger := logging.Setup(logging.Config{
			Level:  logging.LevelDebug,
			Pretty: true,
			Output: os.Stderr,
		})
		config.Logger = logging.NewAdapter(logger)
		config.Debug = true
	}

	client, err := pluvoclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// encodeJSON writes v as indented JSON to w.
func encodeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

// encodeYAML writes v as YAML to w.
func encodeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}

	return encoder.Close()
}

// saveConfig persists the current viper settings to the config file.
func saveConfig() error {
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		cfgFile = filepath.Join(home, ".pluvo", "config.yml")
	}

	err := viper.WriteConfigAs(cfgFile)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// formatTimePtr renders an optional timestamp for table output.
func formatTimePtr(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(time.RFC3339)
}
