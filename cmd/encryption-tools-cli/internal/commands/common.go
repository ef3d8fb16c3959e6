package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MGTheTrain/encryption-tools/internal/app"
	"github.com/MGTheTrain/encryption-tools/internal/domain/crypto"
	"github.com/MGTheTrain/encryption-tools/internal/infrastructure/codec"
	"github.com/MGTheTrain/encryption-tools/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/config"
	"github.com/MGTheTrain/encryption-tools/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Flag names shared across commands
const (
	ConfigFlag = "config"

	flagInputFile     = "input-file"
	flagOutputFile    = "output-file"
	flagSignatureFile = "signature-file"
	flagSecret        = "secret"
	flagMethod        = "method"
	flagPublicKey     = "public-key"
	flagPrivateKey    = "private-key"
	flagKeyDir        = "key-dir"
)

// Helpers bundles the encryption helpers the commands run against
type Helpers struct {
	Config     *config.CLIConfig
	Logger     logger.Logger
	Symmetric  crypto.SymmetricHelper
	Asymmetric crypto.AsymmetricHelper
	LargeData  crypto.LargeDataHelper
}

// NewHelpers wires the helpers from cfg
func NewHelpers(cfg *config.CLIConfig) (*Helpers, error) {
	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	c, err := codec.NewCodec(cfg.Encryption.Codec)
	if err != nil {
		return nil, err
	}

	symmetricProcessor, err := cryptography.NewSymmetricProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric processor: %w", err)
	}
	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	symmetric, err := app.NewSymmetricEncryptionHelper(symmetricProcessor, c, cfg.Encryption.DefaultMethod, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric helper: %w", err)
	}
	asymmetric, err := app.NewAsymmetricEncryptionHelper(rsaProcessor, c, cfg.Encryption.KeySize, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create asymmetric helper: %w", err)
	}
	largeData, err := app.NewLargeDataEncryptionHelper(symmetric, asymmetric, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create large data helper: %w", err)
	}

	return &Helpers{
		Config:     cfg,
		Logger:     loggerInstance,
		Symmetric:  symmetric,
		Asymmetric: asymmetric,
		LargeData:  largeData,
	}, nil
}

// HelperProvider builds Helpers on first use, once the --config flag has been parsed
type HelperProvider struct {
	mu      sync.Mutex
	helpers *Helpers
}

// NewHelperProvider creates an empty HelperProvider
func NewHelperProvider() *HelperProvider {
	return &HelperProvider{}
}

// Get returns the helpers, loading the configuration named by the --config flag of cmd
func (p *HelperProvider) Get(cmd *cobra.Command) (*Helpers, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.helpers != nil {
		return p.helpers, nil
	}

	configPath := ""
	if flag := cmd.Flags().Lookup(ConfigFlag); flag != nil {
		configPath = flag.Value.String()
	}

	cfg, err := config.InitializeCLIConfig(configPath)
	if err != nil {
		return nil, err
	}

	helpers, err := NewHelpers(cfg)
	if err != nil {
		return nil, err
	}
	p.helpers = helpers
	return helpers, nil
}

// RegisterConfigFlag adds the global --config flag to rootCmd
func RegisterConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(ConfigFlag, "", "Path to a YAML configuration file")
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func readKey(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// stringFlags reads the string flags named in names, in order
func stringFlags(cmd *cobra.Command, names ...string) ([]string, error) {
	values := make([]string, 0, len(names))
	for _, name := range names {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", name, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func addInputOutputFlags(cmd *cobra.Command, inputUsage, outputUsage string) error {
	cmd.Flags().String(flagInputFile, "", inputUsage)
	cmd.Flags().String(flagOutputFile, "", outputUsage)
	if err := cmd.MarkFlagRequired(flagInputFile); err != nil {
		return err
	}
	return cmd.MarkFlagRequired(flagOutputFile)
}

// addKeyFlags adds --public-key and --private-key, exactly one of which must be set
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagPublicKey, "", "Path to a PEM encoded RSA public key")
	cmd.Flags().String(flagPrivateKey, "", "Path to a PEM encoded RSA private key")
	cmd.MarkFlagsMutuallyExclusive(flagPublicKey, flagPrivateKey)
	cmd.MarkFlagsOneRequired(flagPublicKey, flagPrivateKey)
}

// selectedKey returns the key file content and whether it is the private key
func selectedKey(cmd *cobra.Command) (string, bool, error) {
	values, err := stringFlags(cmd, flagPublicKey, flagPrivateKey)
	if err != nil {
		return "", false, err
	}

	if values[1] != "" {
		key, err := readKey(values[1])
		return key, true, err
	}
	key, err := readKey(values[0])
	return key, false, err
}
