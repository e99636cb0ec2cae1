// Package xconf 提供基于 koanf 的配置加载。
//
// 支持 YAML（.yaml/.yml）与 JSON（.json）两种格式，按扩展名识别；
// 数据来自内存时用 [NewFromBytes] 显式指定格式。
//
// 基本用法：
//
//	cfg, err := xconf.New("xouictl.yaml", xconf.WithStrict(true))
//	if err != nil {
//	    return err
//	}
//	var c cliConfig
//	if err := cfg.Unmarshal("", &c); err != nil {
//	    return err
//	}
//
// 命令行参数覆盖配置文件时使用 [Config.Set]，之后再 Unmarshal。
//
// 设计决策: Unmarshal 使用 mapstructure 弱类型解码，"30s" 之类的字符串
// 可以直接解到 time.Duration；严格模式下未知字段视为错误，避免拼写错误被静默忽略。
package xconf
