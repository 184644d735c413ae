package handout

import (
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize - pixel size of the rendered login code
const qrSize = 220

// LoginPayload - the URI the mobile and desktop clients understand for
// one-tap login: nc://login/user:<login>&password:<pass>&server:<url>
func LoginPayload(login, password, serverURL string) string {
	return "nc://login/user:" + login + "&password:" + password + "&server:" + serverURL
}

// writeQRImage - renders the login code to a transient PNG under dir
// and returns its path
func writeQRImage(dir, login, payload string) (string, error) {
	path := filepath.Join(dir, login+".png")
	if err := qrcode.WriteFile(payload, qrcode.Medium, qrSize, path); err != nil {
		return "", err
	}
	return path, nil
}
