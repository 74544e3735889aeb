package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/nyunja/fity-cli/internal/api"
	"github.com/nyunja/fity-cli/internal/common"
	"github.com/nyunja/fity-cli/internal/session"
)

// newClient builds an authenticated client from the saved session.
func newClient() (*api.Client, error) {
	sess, err := session.Load()
	if err != nil {
		return nil, common.NewUserError("Please log in first with `fity login`", err)
	}
	return api.New(viper.GetString("api.base_url"), sess), nil
}

// newAnonClient builds a client without credentials, for register/login.
func newAnonClient() *api.Client {
	return api.New(viper.GetString("api.base_url"), nil)
}

// promptLine asks on stdout and reads one trimmed line from stdin, used
// when a flag was not supplied.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// flagOrPrompt returns the flag value, prompting when empty.
func flagOrPrompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	return promptLine(label)
}
