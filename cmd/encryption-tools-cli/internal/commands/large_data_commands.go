package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// LargeDataCommandHandler encapsulates logic for encrypting files of any size with RSA keys via CLI.
type LargeDataCommandHandler struct {
	provider *HelperProvider
}

// NewLargeDataCommandHandler creates a LargeDataCommandHandler backed by provider
func NewLargeDataCommandHandler(provider *HelperProvider) *LargeDataCommandHandler {
	return &LargeDataCommandHandler{provider: provider}
}

// EncryptCmd encrypts the input file under a one-time secret protected by the given key
func (h *LargeDataCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	helpers, err := h.provider.Get(cmd)
	if err != nil {
		return err
	}
	flags, err := stringFlags(cmd, flagInputFile, flagOutputFile)
	if err != nil {
		return err
	}
	key, isPrivate, err := selectedKey(cmd)
	if err != nil {
		return err
	}

	plainText, err := readFile(flags[0])
	if err != nil {
		return err
	}

	var envelope []byte
	if isPrivate {
		envelope, err = helpers.LargeData.EncryptByPrivateKey(plainText, key)
	} else {
		envelope, err = helpers.LargeData.EncryptByPublicKey(plainText, key)
	}
	if err != nil {
		return err
	}

	if err := writeFile(flags[1], envelope); err != nil {
		return err
	}

	helpers.Logger.Info("encrypted file", "output", flags[1], "size", len(envelope))
	return nil
}

// DecryptCmd decrypts a file produced by EncryptCmd with the complementary key
func (h *LargeDataCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	helpers, err := h.provider.Get(cmd)
	if err != nil {
		return err
	}
	flags, err := stringFlags(cmd, flagInputFile, flagOutputFile)
	if err != nil {
		return err
	}
	key, isPrivate, err := selectedKey(cmd)
	if err != nil {
		return err
	}

	envelope, err := readFile(flags[0])
	if err != nil {
		return err
	}

	var plainText []byte
	if isPrivate {
		err = helpers.LargeData.DecryptByPrivateKey(envelope, key, &plainText)
	} else {
		err = helpers.LargeData.DecryptByPublicKey(envelope, key, &plainText)
	}
	if err != nil {
		return err
	}

	if err := writeFile(flags[1], plainText); err != nil {
		return err
	}

	helpers.Logger.Info("decrypted file", "output", flags[1])
	return nil
}

// InitLargeDataCommands registers the large-data commands
func InitLargeDataCommands(rootCmd *cobra.Command, provider *HelperProvider) error {
	handler := NewLargeDataCommandHandler(provider)

	encryptCmd := &cobra.Command{
		Use:   "encrypt-large",
		Short: "Encrypt a file of any size with an RSA public or private key",
		RunE:  handler.EncryptCmd,
	}
	if err := addInputOutputFlags(encryptCmd, "Path to input file which needs to be encrypted", "Path to encrypted output file"); err != nil {
		return fmt.Errorf("failed to set up encrypt-large flags: %w", err)
	}
	addKeyFlags(encryptCmd)
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt-large",
		Short: "Decrypt a file produced by encrypt-large with the complementary RSA key",
		RunE:  handler.DecryptCmd,
	}
	if err := addInputOutputFlags(decryptCmd, "Path to encrypted file", "Path to decrypted output file"); err != nil {
		return fmt.Errorf("failed to set up decrypt-large flags: %w", err)
	}
	addKeyFlags(decryptCmd)
	rootCmd.AddCommand(decryptCmd)

	return nil
}
