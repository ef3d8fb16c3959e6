package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SymmetricCommandHandler encapsulates logic for shared-secret encryption via CLI.
type SymmetricCommandHandler struct {
	provider *HelperProvider
}

// NewSymmetricCommandHandler creates a SymmetricCommandHandler backed by provider
func NewSymmetricCommandHandler(provider *HelperProvider) *SymmetricCommandHandler {
	return &SymmetricCommandHandler{provider: provider}
}

// EncryptCmd encrypts the input file under --secret
func (h *SymmetricCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	helpers, err := h.provider.Get(cmd)
	if err != nil {
		return err
	}
	flags, err := stringFlags(cmd, flagInputFile, flagOutputFile, flagSecret, flagMethod)
	if err != nil {
		return err
	}
	inputFile, outputFile, secret, method := flags[0], flags[1], flags[2], flags[3]
	if method == "" {
		method = helpers.Config.Encryption.DefaultMethod
	}

	plainText, err := readFile(inputFile)
	if err != nil {
		return err
	}

	envelope, err := helpers.Symmetric.EncryptWithMethod(plainText, secret, method)
	if err != nil {
		return err
	}

	if err := writeFile(outputFile, envelope); err != nil {
		return err
	}

	helpers.Logger.Info("encrypted file", "method", method, "output", outputFile)
	return nil
}

// DecryptCmd decrypts an envelope file produced by EncryptCmd
func (h *SymmetricCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	helpers, err := h.provider.Get(cmd)
	if err != nil {
		return err
	}
	flags, err := stringFlags(cmd, flagInputFile, flagOutputFile, flagSecret, flagMethod)
	if err != nil {
		return err
	}
	inputFile, outputFile, secret, method := flags[0], flags[1], flags[2], flags[3]
	if method == "" {
		method = helpers.Config.Encryption.DefaultMethod
	}

	envelope, err := readFile(inputFile)
	if err != nil {
		return err
	}

	var plainText []byte
	if err := helpers.Symmetric.DecryptWithMethod(envelope, secret, method, &plainText); err != nil {
		return err
	}

	if err := writeFile(outputFile, plainText); err != nil {
		return err
	}

	helpers.Logger.Info("decrypted file", "method", method, "output", outputFile)
	return nil
}

// InitSymmetricCommands registers the shared-secret commands
func InitSymmetricCommands(rootCmd *cobra.Command, provider *HelperProvider) error {
	handler := NewSymmetricCommandHandler(provider)

	encryptCmd := &cobra.Command{
		Use:   "encrypt-symmetric",
		Short: "Encrypt a file with a shared secret",
		RunE:  handler.EncryptCmd,
	}
	if err := addInputOutputFlags(encryptCmd, "Path to input file which needs to be encrypted", "Path to encrypted output file"); err != nil {
		return fmt.Errorf("failed to set up encrypt-symmetric flags: %w", err)
	}
	encryptCmd.Flags().String(flagSecret, "", "Shared secret the file is encrypted under")
	encryptCmd.Flags().String(flagMethod, "", "Cipher method, e.g. aes-256-cbc (defaults to the configured method)")
	if err := encryptCmd.MarkFlagRequired(flagSecret); err != nil {
		return err
	}
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt-symmetric",
		Short: "Decrypt a file with a shared secret",
		RunE:  handler.DecryptCmd,
	}
	if err := addInputOutputFlags(decryptCmd, "Path to encrypted file", "Path to decrypted output file"); err != nil {
		return fmt.Errorf("failed to set up decrypt-symmetric flags: %w", err)
	}
	decryptCmd.Flags().String(flagSecret, "", "Shared secret the file was encrypted under")
	decryptCmd.Flags().String(flagMethod, "", "Cipher method used for encryption")
	if err := decryptCmd.MarkFlagRequired(flagSecret); err != nil {
		return err
	}
	rootCmd.AddCommand(decryptCmd)

	return nil
}
