package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Report
	ReportName string `yaml:"report_name"`
	OutDir     string `yaml:"out_dir"`
	Creator    string `yaml:"creator"`
	LogLevel   string `yaml:"log_level"`

	Limits Limits `yaml:"limits"`

	// SFTP drop
	SFTPHost                  string `yaml:"sftp_host"`
	SFTPPort                  int    `yaml:"sftp_port"`
	SFTPUser                  string `yaml:"sftp_user"`
	SFTPPass                  string `yaml:"sftp_pass"`
	SFTPDir                   string `yaml:"sftp_dir"`
	SFTPKnownHosts            string `yaml:"sftp_known_hosts"`
	SFTPInsecureIgnoreHostKey bool   `yaml:"sftp_insecure_ignore_hostkey"`
}

// Limits caps how many entries each ranked view shows.
type Limits struct {
	TopCourses       int `yaml:"top_courses"`
	TopSources       int `yaml:"top_sources"`
	TopCourseSources int `yaml:"top_course_sources"`
	TopStaffCourses  int `yaml:"top_staff_courses"`
}

func Defaults() Config {
	return Config{
		ReportName: "student-enrollment-report",
		OutDir:     ".",
		Creator:    "enrollment-dashboard",
		LogLevel:   "info",
		Limits: Limits{
			TopCourses:       10,
			TopSources:       8,
			TopCourseSources: 15,
			TopStaffCourses:  8,
		},
		SFTPPort: 22,
		SFTPDir:  "/inbound",
	}
}

// Load layers configuration: defaults, then the YAML file named by
// DASHBOARD_CONFIG (dashboard.yaml if unset, skipped when missing), then
// environment variables. A .env file (DASHBOARD_ENV_FILE, default .env) is
// read into the environment first without overriding what is already set.
func Load() (Config, error) {
	envFile := getenv("DASHBOARD_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: %s: %w", envFile, err)
	}

	cfg := Defaults()

	path := getenv("DASHBOARD_CONFIG", "dashboard.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("config: %w", err)
	}

	// Report
	cfg.ReportName = getenv("DASHBOARD_REPORT_NAME", cfg.ReportName)
	cfg.OutDir = getenv("DASHBOARD_OUT_DIR", cfg.OutDir)
	cfg.Creator = getenv("DASHBOARD_CREATOR", cfg.Creator)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)

	cfg.Limits.TopCourses = getenvInt("DASHBOARD_TOP_COURSES", cfg.Limits.TopCourses)
	cfg.Limits.TopSources = getenvInt("DASHBOARD_TOP_SOURCES", cfg.Limits.TopSources)
	cfg.Limits.TopCourseSources = getenvInt("DASHBOARD_TOP_COURSE_SOURCES", cfg.Limits.TopCourseSources)
	cfg.Limits.TopStaffCourses = getenvInt("DASHBOARD_TOP_STAFF_COURSES", cfg.Limits.TopStaffCourses)

	// SFTP
	cfg.SFTPHost = getenv("SFTP_HOST", cfg.SFTPHost)
	cfg.SFTPPort = getenvInt("SFTP_PORT", cfg.SFTPPort)
	cfg.SFTPUser = getenv("SFTP_USER", cfg.SFTPUser)
	cfg.SFTPPass = getenv("SFTP_PASS", cfg.SFTPPass)
	cfg.SFTPDir = getenv("SFTP_DIR", cfg.SFTPDir)
	cfg.SFTPKnownHosts = getenv("SFTP_KNOWN_HOSTS", cfg.SFTPKnownHosts)
	cfg.SFTPInsecureIgnoreHostKey = getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", cfg.SFTPInsecureIgnoreHostKey)

	return cfg, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}

func getenvBool(k string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return v
}
