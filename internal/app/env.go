package app

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variables that override secrets and endpoints from the config file.
const (
	EnvHttpPort               = "NOTES_HTTP_PORT"
	EnvAuthTokenKey           = "NOTES_AUTH_TOKEN_KEY"
	EnvGraphQLEndpoint        = "NOTES_GRAPHQL_ENDPOINT"
	EnvGraphQLAPIKey          = "NOTES_GRAPHQL_API_KEY"
	EnvGraphQLAuthToken       = "NOTES_GRAPHQL_AUTH_TOKEN"
	EnvStorageType            = "NOTES_STORAGE_TYPE"
	EnvStorageAccessKeyID     = "NOTES_STORAGE_ACCESS_KEY_ID"
	EnvStorageAccessKeySecret = "NOTES_STORAGE_ACCESS_KEY_SECRET"
	EnvStoragePassword        = "NOTES_STORAGE_PASSWORD"
	EnvMockAPIKey             = "NOTES_MOCK_API_KEY"
)

// LoadDotEnv 加载存在的 .env 文件，已存在的环境变量不会被覆盖
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load env file %s failed", f)
		}
	}
	return nil
}

// ApplyEnv 使用环境变量覆盖配置
func (c *AppConfig) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	set(EnvHttpPort, &c.Server.HttpPort)
	set(EnvAuthTokenKey, &c.Security.AuthTokenKey)
	set(EnvGraphQLEndpoint, &c.GraphQL.Endpoint)
	set(EnvGraphQLAPIKey, &c.GraphQL.APIKey)
	set(EnvGraphQLAuthToken, &c.GraphQL.AuthToken)
	set(EnvStorageType, &c.Storage.Type)
	set(EnvStorageAccessKeyID, &c.Storage.AccessKeyID)
	set(EnvStorageAccessKeySecret, &c.Storage.AccessKeySecret)
	set(EnvStoragePassword, &c.Storage.Password)
	set(EnvMockAPIKey, &c.MockAPI.APIKey)
}
