// Package xregistry 提供 OUI 注册表：规范键（6 位大写十六进制）到组织名称的只读映射。
//
// 生命周期分两个阶段：
//
//   - 构建阶段：[Builder] 单次遍历写入，重复键后写覆盖前写（last write wins）
//   - 查询阶段：[Builder.Build] 产出不可变的 [Registry]，可被任意多个 goroutine 并发读取，无需加锁
//
// Registry 的枚举顺序（[Registry.All]、[Registry.Keys]）按键升序，
// 与 IEEE 注册表习惯的排序一致。
//
// # 指纹与摘要
//
//   - [Registry.Fingerprint]：基于 xxhash 的 64 位指纹，用于快速判断两份注册表内容是否相同
//   - [Registry.Digest]：SHA-1 十六进制摘要，写入 .properties 文件头，
//     与历史 oui.properties 产物保持一致
//
// # .properties 导出
//
// [WriteProperties] 把注册表写成 Java properties 格式，非 ASCII 字符转义为 \uXXXX，
// [ReadProperties] 读回同一格式。
package xregistry
