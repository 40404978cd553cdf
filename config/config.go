package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	SQLITE_FILE     = "database.sqlite" // SQLite is used unless MYSQL_DSN is configured
	MYSQL_DSN       = ""                // MySQL will be used if this is set
	BIND_ADDRESS    = "0.0.0.0:8080"
	TLS_DOMAINS     = "" // e.g. "example.com,example2.com"
	UPLOAD_DIR      = "public/uploads"
	MAX_UPLOAD_SIZE = 10 * 1024 * 1024 // Per uploaded file, in bytes
	MAX_PHOTOS      = 7
	STORAGE_TYPE    = "disk" // "disk" or "s3"
	S3_BUCKET       = ""
	S3_REGION       = "us-east-1"
	S3_ACCESS_KEY   = ""
	S3_SECRET_KEY   = ""
	S3_ENDPOINT     = "" // For S3-compatible storage (e.g. MinIO)
	TMP_DIR         = "/tmp" // Used as a local scratch area by the S3 backend
	DEBUG_MODE      = true
)

func init() {
	// Values exported in the environment win over a local .env file
	_ = godotenv.Load()

	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("UPLOAD_DIR", &UPLOAD_DIR)
	readEnvInt("MAX_UPLOAD_SIZE", &MAX_UPLOAD_SIZE)
	readEnvInt("MAX_PHOTOS", &MAX_PHOTOS)
	readEnvString("STORAGE_TYPE", &STORAGE_TYPE)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_ACCESS_KEY", &S3_ACCESS_KEY)
	readEnvString("S3_SECRET_KEY", &S3_SECRET_KEY)
	readEnvString("S3_ENDPOINT", &S3_ENDPOINT)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
