// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、源码位置、轮转）
//   - 所有日志方法强制 context 参数
//   - 动态级别调整（运行时热更新）
//   - [Nop] 丢弃一切输出，作为库代码未注入 Logger 时的默认值
//
// # 创建 Logger
//
// Builder 采用 first-error-wins：遇到第一个配置错误后，Build 返回该错误。
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation("/var/log/xouictl.log").
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "registry loaded", xlog.Source(src), xlog.Count(reg.Len()))
//
// # 属性
//
// 方法签名只接受 slog.Attr。常用字段名见 Key* 常量，
// 注册表领域字段（source、line、oui）提供了构造函数。
package xlog
