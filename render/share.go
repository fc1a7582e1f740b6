package render

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"reticle/crosshair"
)

// shareCodePrefix versions the share-code format.
const shareCodePrefix = "XH1:"

// ShareCode encodes a bare configuration as a compact copy-pasteable string.
func ShareCode(cfg crosshair.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return shareCodePrefix + base64.RawURLEncoding.EncodeToString(data), nil
}

// ParseShareCode decodes and validates a share code.
func ParseShareCode(code string) (crosshair.Config, error) {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, shareCodePrefix) {
		return crosshair.Config{}, fmt.Errorf("not a crosshair share code")
	}
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(code, shareCodePrefix))
	if err != nil {
		return crosshair.Config{}, fmt.Errorf("share code: %w", err)
	}
	var cfg crosshair.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return crosshair.Config{}, fmt.Errorf("share code: %w", err)
	}
	if cfg.Lines == nil {
		cfg.Lines = []crosshair.Line{}
	}
	if err := cfg.Validate(); err != nil {
		return crosshair.Config{}, err
	}
	return cfg, nil
}

// ShareQR writes the configuration's share code as a QR image.
func ShareQR(cfg crosshair.Config, size int, filename string) error {
	code, err := ShareCode(cfg)
	if err != nil {
		return err
	}
	return qrcode.WriteFile(code, qrcode.Medium, size, filename)
}
