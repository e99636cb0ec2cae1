// Package xouicsv 解析 IEEE OUI 注册表的 CSV 分发文件。
//
// 注册表文件每行一条记录，只有形如
//
//	MA-L,XXXXXX,<organization>,...
//
// 的行是数据记录：XXXXXX 为 6 位大写十六进制键，organization 字段遵循
// 简化的 CSV 引号规则。其余行（表头、空行、其他注册类型如 MA-M/MA-S、格式错误的行）
// 被静默跳过，不视为错误。
//
// # 字段引号规则
//
//   - 字段以奇数个 '"' 开头：带引号字段。跳过第一个引号，之后 `""` 还原为 `"`，
//     单个 `"` 结束字段（其后内容丢弃），逗号原样保留；引号始终未闭合时复制到行尾
//   - 字段以偶数个 '"' 开头（包括 0 个）：无引号字段。开头的引号只用于判定，
//     不进入结果；遇到第一个逗号结束，其他字符（包括引号）原样复制
//   - 结果去除首尾空白；字段仅为 `""` 时得到空组织名（仍是一条记录）
//
// # 解析
//
//	reg, err := xouicsv.ParseFile(ctx, "oui.csv")
//	if err != nil {
//	    return err
//	}
//	org, ok := reg.Lookup("00CDFE")
//
// 键重复时后出现的记录覆盖先出现的（last write wins），并行解析同样保证这一点。
//
// # 错误
//
//   - [ErrNilSource]: 传入 nil io.Reader，属于调用方编程错误
//   - [ErrRead]: 读取失败，不返回部分结果
//
// 行以 "\n"、"\r\n" 或单独的 "\r" 结束。超过 [MaxLineSize] 的行按非记录行跳过，
// 不影响其余行。组织名字段含 CR、LF、NEL（U+0085）、LS（U+2028）或 PS（U+2029）时
// 该行不是数据记录。
//   - ctx 取消时返回 ctx.Err()
package xouicsv
