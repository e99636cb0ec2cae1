package xconf

type options struct {
	delim  string
	tag    string
	strict bool
}

// Option 配置选项函数
type Option func(*options)

func defaultOptions() options {
	return options{delim: ".", tag: "koanf"}
}

// WithDelim 设置键路径分隔符，默认 "."。
func WithDelim(delim string) Option {
	return func(o *options) {
		if delim != "" {
			o.delim = delim
		}
	}
}

// WithTag 设置 Unmarshal 使用的结构体标签，默认 "koanf"。
func WithTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.tag = tag
		}
	}
}

// WithStrict 开启后 Unmarshal 遇到目标结构体中不存在的键返回错误。
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}
