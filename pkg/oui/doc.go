// Package oui 提供 IEEE OUI 注册表相关的子包。
//
// 子包列表：
//   - xoui: OUI 前缀类型，地址文本/字节解析与格式化
//   - xregistry: 不可变注册表（键 → 组织名），指纹与 properties 导出
//   - xouicsv: 注册表 CSV 逐行提取与解析，支持并行
//   - xresolve: 地址到组织名的查询
//   - xsource: 数据源获取（文件/HTTP）、重试、缓存、熔断与热更新
//
// 数据流：
//
//	xsource.Open → xouicsv.Parse → xregistry.Registry → xresolve.Resolver
//
// 设计原则：
//   - 注册表构建完成后不可变，查询无锁
//   - 解析失败不返回部分结果
//   - 查不到与输入非法都表现为未命中，不返回错误
package oui
