// Package xrotate 提供按大小轮转的日志文件输出，基于 gopkg.in/natefinch/lumberjack.v2。
//
// [Rotator] 实现 io.WriteCloser，可直接作为 xlog 的输出目标：
//
//	r, err := xrotate.NewLumberjack("/var/log/xouictl.log", xrotate.WithMaxSize(50))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
// 父目录不存在时自动创建（权限 0750）。
package xrotate
