package env

import (
	"strings"

	"github.com/spf13/viper"
)

func init() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// PodName example: nftdash-api-6868d88fbd-bz8zv
func PodName() string {
	return viper.GetString("PODNAME")
}

// EnvName example: staging, falls back to env_name in the config file
func EnvName() string {
	if v := viper.GetString("ENV_NAME"); v != "" {
		return v
	}
	return viper.GetString("env_name")
}

// AppName example: api, falls back to app_name in the config file
func AppName() string {
	if v := viper.GetString("APP_NAME"); v != "" {
		return v
	}
	return viper.GetString("app_name")
}
