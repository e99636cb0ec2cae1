// Package xlru 提供带 TTL 的泛型 LRU 缓存，基于 hashicorp/golang-lru/v2/expirable。
//
//	c, err := xlru.New[string, *xregistry.Registry](xlru.Config{Size: 4, TTL: 10 * time.Minute})
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
// TTL 从 Set 时刻开始计算，Get 不刷新 TTL；Size 是条目数而非内存大小。
//
// TTL > 0 时底层库会启动一个过期清理 goroutine 且没有公开的停止方法，
// [Cache.Close] 通过 reflect 关闭其内部 done 通道使其退出。升级 golang-lru 时需要验证
// 内部字段仍然存在（TestStopCleanupGoroutine 会捕获变化）。
package xlru
