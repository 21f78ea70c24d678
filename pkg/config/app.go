package config

var AppVersion = "DEVELOPMENT"

const (
	AppName = "vidcue"
	LogFile = "core.log"
	LogsDir = "logs"
	CfgFile = "config.toml"
)
