package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 配置格式
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf 根据文件扩展名识别格式。
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

func (f Format) parser() (koanf.Parser, error) {
	switch f {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Config 已加载的配置。Set 与 Unmarshal 不应并发调用。
type Config struct {
	k      *koanf.Koanf
	path   string
	format Format
	opts   options
}

// New 读取并解析配置文件，格式由扩展名决定。空文件得到空配置。
func New(path string, opts ...Option) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	c, err := NewFromBytes(data, format, opts...)
	if err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}

// NewFromBytes 从内存数据创建配置。
func NewFromBytes(data []byte, format Format, opts ...Option) (*Config, error) {
	parser, err := format.parser()
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	k := koanf.New(o.delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	return &Config{k: k, format: format, opts: o}, nil
}

// Client 返回底层 koanf 实例。
func (c *Config) Client() *koanf.Koanf { return c.k }

// Path 返回配置文件路径；NewFromBytes 创建的配置为空。
func (c *Config) Path() string { return c.path }

// Format 返回配置格式。
func (c *Config) Format() Format { return c.format }

// Set 覆盖单个键的值，用于命令行参数覆盖配置文件。
func (c *Config) Set(key string, value any) error {
	if err := c.k.Set(key, value); err != nil {
		return fmt.Errorf("xconf: set %q: %w", key, err)
	}
	return nil
}

// Unmarshal 把 path 下的配置解到 target；path 为空时解整个配置。
func (c *Config) Unmarshal(path string, target any) error {
	dc := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		ErrorUnused:      c.opts.strict,
		WeaklyTypedInput: true,
		Result:           target,
	}
	if err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag:           c.opts.tag,
		DecoderConfig: dc,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}
