package xoui

import "net"

// Size 是 OUI 的字节长度。
const Size = 3

// KeyLen 是规范键的字符长度。
const KeyLen = 2 * Size

// OUI 表示 24 位组织唯一标识符。
//
// OUI 是不可变值类型，可直接比较（==）和用作 map key，并发安全。
type OUI struct {
	bytes [Size]byte
}

// From3 从 3 字节数组创建 OUI。
func From3(b [Size]byte) OUI {
	return OUI{bytes: b}
}

// FromBytes 取字节序列的前 3 字节作为 OUI。
// 少于 3 字节返回 [ErrInvalidLength]，多余字节忽略（可直接传入完整 MAC 地址）。
func FromBytes(b []byte) (OUI, error) {
	if len(b) < Size {
		return OUI{}, ErrInvalidLength
	}
	return OUI{bytes: [Size]byte{b[0], b[1], b[2]}}, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 提取 OUI。
// EUI-48 与 EUI-64 地址的前 3 字节都是 OUI。
func FromHardwareAddr(hw net.HardwareAddr) (OUI, error) {
	return FromBytes(hw)
}

// Bytes 返回 OUI 的字节表示。
func (o OUI) Bytes() [Size]byte {
	return o.bytes
}

// Uint32 返回 OUI 的 24 位整数值（大端）。
func (o OUI) Uint32() uint32 {
	return uint32(o.bytes[0])<<16 | uint32(o.bytes[1])<<8 | uint32(o.bytes[2])
}

// Compare 按字节顺序比较两个 OUI。
// 返回值：-1 (o < p), 0 (o == p), 1 (o > p)。
func (o OUI) Compare(p OUI) int {
	a, b := o.Uint32(), p.Uint32()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsMulticast 报告 OUI 的组播位（首字节 bit 0）是否置位。
func (o OUI) IsMulticast() bool {
	return o.bytes[0]&0x01 == 0x01
}

// IsLocallyAdministered 报告 OUI 的本地管理位（首字节 bit 1）是否置位。
// 本地管理地址不会出现在 IEEE 注册表中。
func (o OUI) IsLocallyAdministered() bool {
	return o.bytes[0]&0x02 == 0x02
}
