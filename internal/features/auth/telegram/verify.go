// Package telegram validates the Telegram Web-App handshake. The check string
// and keyed derivation follow Telegram's documented scheme exactly so the
// result matches what Telegram's servers signed.
package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"

	initdata "github.com/telegram-mini-apps/init-data-golang"

	"bot-admin-panel/internal/features/auth/models"
)

// Verify checks the init-data signature against the bot token. Without a
// configured token it fails closed. Any parse error yields false.
func Verify(initData, botToken string) bool {
	if initData == "" || botToken == "" {
		return false
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return false
	}

	receivedHash := values.Get("hash")
	if receivedHash == "" || values.Get("user") == "" {
		return false
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if key != "hash" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		for _, value := range values[key] {
			lines = append(lines, key+"="+value)
		}
	}
	checkString := strings.Join(lines, "\n")

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(checkString))
	computed := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(computed), []byte(receivedHash))
}

// ParseUser extracts the user profile from init data. Any decode failure
// yields an empty profile, never an error.
func ParseUser(initData string) models.Profile {
	parsed, err := initdata.Parse(initData)
	if err != nil {
		return models.Profile{}
	}
	return models.Profile{
		ID:        parsed.User.ID,
		FirstName: parsed.User.FirstName,
		LastName:  parsed.User.LastName,
		Username:  parsed.User.Username,
	}
}
