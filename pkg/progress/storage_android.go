//go:build android

package progress

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// prepareStorage 在 Android 上预先创建 gdata 使用的 saves 目录
//
// gdata 把数据放在 /data/data/<包名>/ 下但不会创建子目录；
// 包名取自 /proc/self/cmdline。
func prepareStorage() error {
	cmdline, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return fmt.Errorf("failed to detect package name: %w", err)
	}
	name, _, _ := bytes.Cut(cmdline, []byte{0})
	name = bytes.TrimSpace(name)
	if len(name) == 0 {
		return fmt.Errorf("failed to detect package name: empty cmdline")
	}
	dir := filepath.Join("/data/data", string(name), "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
