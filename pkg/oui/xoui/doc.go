// Package xoui 提供 OUI（Organizationally Unique Identifier）的解析与规范化。
//
// OUI 是 MAC 地址的前 24 位，由 IEEE 分配给组织。xoui 负责把各种输入形式
// 统一为注册表使用的规范键（6 位大写十六进制，如 "00CDFE"）：
//
//   - 纯十六进制："00CDFE"、"3c5ab4"（大小写不敏感）
//   - 分组分隔："48:50:73"、"F0-D2-F1"、"00:03-47"（分隔符可混用、可省略）
//   - 完整地址："48:57:dd:01:02:03"（只取前三组）
//   - 带尾随内容："0010e0#XYZ"、"00:03-47@XYZ"（第三组之后的内容忽略）
//   - 字节序列：前 3 字节即 OUI
//
// # 快速示例
//
//	o, err := xoui.ParsePrefix("48:50:73:aa:bb:cc")
//	fmt.Println(o.Key())    // 485073
//	fmt.Println(o.String()) // 48:50:73
//
// # 设计决策
//
//   - 使用 [3]byte 固定数组：值语义、可比较、可作为 map key
//   - ParsePrefix 只校验前缀形状，不是 MAC 地址校验器；
//     第三组之后的任何内容（包括换行）都被忽略
//   - 与 MAC 地址不同，全零 OUI 00:00:00 是 IEEE 已分配的合法值（XEROX），
//     因此零值 OUI 同样是有效 OUI
//
// # 错误处理
//
//	_, err := xoui.ParsePrefix("xyz")
//	if errors.Is(err, xoui.ErrInvalidFormat) {
//	    // 前缀形状不匹配
//	}
package xoui
