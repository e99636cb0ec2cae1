// Package xsource 负责获取注册表数据源并维护可热更新的注册表。
//
// 数据源是本地文件路径或 http/https URL：
//
//	loader := xsource.NewLoader(
//	    xsource.WithRetry(3, time.Second),
//	    xsource.WithCache(4, 10*time.Minute),
//	    xsource.WithBreaker(5, time.Minute),
//	)
//	defer loader.Close()
//	reg, err := loader.Load(ctx, "https://standards-oui.ieee.org/oui/oui.csv")
//
// 获取失败（文件不存在、网络错误、非 2xx 响应、读取中断）统一包装为 [ErrUnavailable]。
// 默认只尝试一次；是否重试由调用方通过 [WithRetry] 决定，且只重试 ErrUnavailable。
// 启用 [WithBreaker] 后每个数据源独立熔断，熔断期间返回 [ErrCircuitOpen] 且不再重试。
//
// # 热更新
//
// [Holder] 持有当前注册表并实现 xresolve.Table。Reload 总是绕过缓存重新获取，
// 只有指纹变化时才替换；替换是单次原子指针交换，查询方始终看到完整的快照。
//
//	h, err := xsource.NewHolder(loader, "oui.csv",
//	    xsource.WithWatch(200*time.Millisecond),
//	    xsource.WithSchedule("@daily"),
//	)
//	if err := h.Start(ctx); err != nil {
//	    return err
//	}
//	defer h.Stop()
//
// 文件监听只对本地文件生效；定时刷新使用标准 5 段 cron 表达式或 @daily 等描述符。
package xsource
