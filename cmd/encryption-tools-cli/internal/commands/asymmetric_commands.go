package commands

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// AsymmetricCommandHandler encapsulates logic for RSA key pair operations via CLI.
type AsymmetricCommandHandler struct {
	provider *HelperProvider
}

// NewAsymmetricCommandHandler creates an AsymmetricCommandHandler backed by provider
func NewAsymmetricCommandHandler(provider *HelperProvider) *AsymmetricCommandHandler {
	return &AsymmetricCommandHandler{provider: provider}
}

// GenerateKeyPairCmd generates an RSA key pair and persists it in --key-dir
func (h *AsymmetricCommandHandler) GenerateKeyPairCmd(cmd *cobra.Command, _ []string) error {
	helpers, err := h.provider.Get(cmd)
	if err != nil {
		return err
	}
	keyDir, err := cmd.Flags().GetString(flagKeyDir)
	if err != nil {
		return fmt.Errorf("invalid %s flag: %w", flagKeyDir, err)
	}

	keyPair, err := helpers.Asymmetric.GenerateKeyPair()
	if err != nil {
		return err
	}

	uniqueID := uuid.New().String()
	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID))
	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID))

	if err := writeFile(privateKeyFilePath, []byte(keyPair.PrivateKey)); err != nil {
		return err
	}
	if err := writeFile(publicKeyFilePath, []byte(keyPair.PublicKey)); err != nil {
		return err
	}

	helpers.Logger.Info("generated key pair", "private_key", privateKeyFilePath, "public_key", publicKeyFilePath)
	return nil
}

// EncryptCmd encrypts a small input file with whichever key is given
func (h *AsymmetricCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
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

	var ciphertext []byte
	if isPrivate {
		ciphertext, err = helpers.Asymmetric.EncryptByPrivateKey(plainText, key)
	} else {
		ciphertext, err = helpers.Asymmetric.EncryptByPublicKey(plainText, key)
	}
	if err != nil {
		return err
	}

	if err := writeFile(flags[1], ciphertext); err != nil {
		return err
	}

	helpers.Logger.Info("encrypted file", "output", flags[1])
	return nil
}

// DecryptCmd decrypts a file produced by EncryptCmd with the complementary key
func (h *AsymmetricCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
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

	ciphertext, err := readFile(flags[0])
	if err != nil {
		return err
	}

	var plainText []byte
	if isPrivate {
		err = helpers.Asymmetric.DecryptByPrivateKey(ciphertext, key, &plainText)
	} else {
		err = helpers.Asymmetric.DecryptByPublicKey(ciphertext, key, &plainText)
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

// SignCmd signs a file and saves the signature
func (h *AsymmetricCommandHandler) SignCmd(cmd *cobra.Command, _ []string) error {
	helpers, err := h.provider.Get(cmd)
	if err != nil {
		return err
	}
	flags, err := stringFlags(cmd, flagInputFile, flagOutputFile, flagPrivateKey)
	if err != nil {
		return err
	}

	privateKey, err := readKey(flags[2])
	if err != nil {
		return err
	}
	data, err := readFile(flags[0])
	if err != nil {
		return err
	}

	signature, err := helpers.Asymmetric.Sign(data, privateKey)
	if err != nil {
		return err
	}

	if err := writeFile(flags[1], signature); err != nil {
		return err
	}

	helpers.Logger.Info("signature saved", "output", flags[1])
	return nil
}

// VerifyCmd verifies a signature file against the input file
func (h *AsymmetricCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) error {
	helpers, err := h.provider.Get(cmd)
	if err != nil {
		return err
	}
	flags, err := stringFlags(cmd, flagInputFile, flagSignatureFile, flagPublicKey)
	if err != nil {
		return err
	}

	publicKey, err := readKey(flags[2])
	if err != nil {
		return err
	}
	data, err := readFile(flags[0])
	if err != nil {
		return err
	}
	signature, err := readFile(flags[1])
	if err != nil {
		return err
	}

	if err := helpers.Asymmetric.Verify(data, signature, publicKey); err != nil {
		helpers.Logger.Error("signature is invalid", "input", flags[0])
		return err
	}

	helpers.Logger.Info("signature is valid", "input", flags[0])
	return nil
}

// InitAsymmetricCommands registers the key pair, RSA encryption and signature commands
func InitAsymmetricCommands(rootCmd *cobra.Command, provider *HelperProvider) error {
	handler := NewAsymmetricCommandHandler(provider)

	generateKeyPairCmd := &cobra.Command{
		Use:   "generate-key-pair",
		Short: "Generate an RSA key pair",
		RunE:  handler.GenerateKeyPairCmd,
	}
	generateKeyPairCmd.Flags().String(flagKeyDir, ".", "Directory to store the key pair")
	rootCmd.AddCommand(generateKeyPairCmd)

	encryptCmd := &cobra.Command{
		Use:   "encrypt-asymmetric",
		Short: "Encrypt a small file with an RSA public or private key",
		RunE:  handler.EncryptCmd,
	}
	if err := addInputOutputFlags(encryptCmd, "Path to input file which needs to be encrypted", "Path to encrypted output file"); err != nil {
		return fmt.Errorf("failed to set up encrypt-asymmetric flags: %w", err)
	}
	addKeyFlags(encryptCmd)
	rootCmd.AddCommand(encryptCmd)

	decryptCmd := &cobra.Command{
		Use:   "decrypt-asymmetric",
		Short: "Decrypt a file with the complementary RSA key",
		RunE:  handler.DecryptCmd,
	}
	if err := addInputOutputFlags(decryptCmd, "Path to encrypted file", "Path to decrypted output file"); err != nil {
		return fmt.Errorf("failed to set up decrypt-asymmetric flags: %w", err)
	}
	addKeyFlags(decryptCmd)
	rootCmd.AddCommand(decryptCmd)

	signCmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a file with an RSA private key",
		RunE:  handler.SignCmd,
	}
	if err := addInputOutputFlags(signCmd, "Path to file which needs to be signed", "Path to signature output file"); err != nil {
		return fmt.Errorf("failed to set up sign flags: %w", err)
	}
	signCmd.Flags().String(flagPrivateKey, "", "Path to RSA private key")
	if err := signCmd.MarkFlagRequired(flagPrivateKey); err != nil {
		return err
	}
	rootCmd.AddCommand(signCmd)

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature with an RSA public key",
		RunE:  handler.VerifyCmd,
	}
	verifyCmd.Flags().String(flagInputFile, "", "Path to file which needs to be validated")
	verifyCmd.Flags().String(flagSignatureFile, "", "Path to signature input file")
	verifyCmd.Flags().String(flagPublicKey, "", "Path to RSA public key")
	for _, name := range []string{flagInputFile, flagSignatureFile, flagPublicKey} {
		if err := verifyCmd.MarkFlagRequired(name); err != nil {
			return err
		}
	}
	rootCmd.AddCommand(verifyCmd)

	return nil
}
