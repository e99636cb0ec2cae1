package main

import (
	"runtime"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xoui/pkg/config/xconf"
)

// DefaultSource IEEE 发布的 MA-L 注册表
const DefaultSource = "https://standards-oui.ieee.org/oui/oui.csv"

const (
	defaultTimeout   = 60 * time.Second
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

type logConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// cliConfig 配置文件结构，键名与全局选项对应（log-level → log.level）。
type cliConfig struct {
	Source     string        `koanf:"source"`
	Workers    int           `koanf:"workers"`
	Timeout    time.Duration `koanf:"timeout"`
	Retry      uint          `koanf:"retry"`
	RetryDelay time.Duration `koanf:"retry_delay"`
	Log        logConfig     `koanf:"log"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Source:     DefaultSource,
		Workers:    runtime.GOMAXPROCS(0),
		Timeout:    defaultTimeout,
		Retry:      1,
		RetryDelay: time.Second,
		Log: logConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// flagKeys 全局选项到配置键的映射
var flagKeys = map[string]string{
	"source":     "source",
	"workers":    "workers",
	"timeout":    "timeout",
	"retry":      "retry",
	"log-level":  "log.level",
	"log-format": "log.format",
	"log-file":   "log.file",
}

// loadConfig 依次叠加默认值、配置文件与显式设置的命令行参数。
func loadConfig(cmd *cli.Command) (cliConfig, error) {
	var (
		conf *xconf.Config
		err  error
	)
	if path := cmd.String("config"); path != "" {
		conf, err = xconf.New(path, xconf.WithStrict(true))
	} else {
		conf, err = xconf.NewFromBytes(nil, xconf.FormatYAML, xconf.WithStrict(true))
	}
	if err != nil {
		return cliConfig{}, newUsageError("%v", err)
	}

	for flag, key := range flagKeys {
		if !cmd.IsSet(flag) {
			continue
		}
		var v any
		switch flag {
		case "workers":
			v = cmd.Int(flag)
		case "timeout":
			v = cmd.Duration(flag)
		case "retry":
			v = cmd.Uint(flag)
		default:
			v = cmd.String(flag)
		}
		if err := conf.Set(key, v); err != nil {
			return cliConfig{}, err
		}
	}

	cfg := defaultConfig()
	if err := conf.Unmarshal("", &cfg); err != nil {
		return cliConfig{}, newUsageError("%v", err)
	}
	return cfg, cfg.validate()
}

func (c *cliConfig) validate() error {
	c.Source = strings.TrimSpace(c.Source)
	switch {
	case c.Source == "":
		return newUsageError("source 不能为空")
	case c.Workers < 1:
		return newUsageError("workers 必须 >= 1，当前 %d", c.Workers)
	case c.Timeout <= 0:
		return newUsageError("timeout 必须为正数，当前 %s", c.Timeout)
	case c.Retry < 1:
		return newUsageError("retry 必须 >= 1，当前 %d", c.Retry)
	}
	return nil
}
