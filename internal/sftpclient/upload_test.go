package sftpclient

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"enrollment-dashboard/internal/export"
)

var _ export.Sink = Sink{}

func TestWithDefaults(t *testing.T) {
	cfg, err := Config{Host: "test-host", User: "test-user", Pass: "test-pass"}.withDefaults()
	assert.NoError(t, err)
	assert.Equal(t, 22, cfg.Port)
	assert.Equal(t, "/", cfg.RemoteDir)

	_, err = Config{Host: "test-host"}.withDefaults()
	assert.EqualError(t, err, "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS")
}

func TestUploadValidation(t *testing.T) {
	ctx := context.Background()

	const (
		testUser = "test-user"
		testPass = "test-pass"
		testFile = "report.xlsx"
	)

	testCases := []struct {
		name          string
		cfg           Config
		errorContains string
	}{
		{
			name:          "Missing credentials",
			cfg:           Config{},
			errorContains: "sftp: missing env SFTP_HOST / SFTP_USER / SFTP_PASS",
		},
		{
			name: "Missing known_hosts file",
			cfg: Config{
				Host:           "127.0.0.1",
				User:           testUser,
				Pass:           testPass,
				KnownHostsPath: filepath.Join(t.TempDir(), "known_hosts"),
			},
			errorContains: "sftp: known_hosts",
		},
		{
			name: "Nothing listening",
			cfg: Config{
				Host:                  "127.0.0.1",
				Port:                  1,
				User:                  testUser,
				Pass:                  testPass,
				InsecureIgnoreHostKey: true,
			},
			errorContains: "sftp: dial error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Sink{Config: tc.cfg}.Save(ctx, testFile, strings.NewReader("data"))
			assert.ErrorContains(t, err, tc.errorContains)
		})
	}
}

func TestUploadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Upload(ctx, Config{Host: "127.0.0.1", Port: 2222, User: "u", Pass: "p", InsecureIgnoreHostKey: true}, strings.NewReader(""), "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDescribe(t *testing.T) {
	s := Sink{Config: Config{Host: "drop.example.com", RemoteDir: "/inbound"}}
	assert.Equal(t, "sftp://drop.example.com:22/inbound/report.xlsx", s.Describe("report.xlsx"))
}
