// Package xresolve 把各种形式的 OUI 地址解析为注册表中的组织名。
//
// 查询分两步：先用 xoui 把输入规范化为 6 位大写十六进制键，再到 [Table] 中精确查找。
// 以下情况统一返回 ("", false)，从不返回错误：
//
//   - Table 为 nil
//   - 文本地址为空或不匹配三组十六进制前缀
//   - 字节地址为 nil 或少于 3 字节
//   - 键不在注册表中
//
// 包级函数 [Name] 与 [NameBytes] 无状态；[Resolver] 在此基础上绑定一个 Table，
// 并可选地上报查询计数指标。
//
//	r, err := xresolve.New(reg, xresolve.WithMeterProvider(mp))
//	if err != nil {
//	    return err
//	}
//	org, ok := r.Name("48:50:73:aa:bb:cc")
//
// Table 在 Resolver 生命周期内只读，因此 Resolver 可被任意多个 goroutine 并发使用。
package xresolve
